package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhereBuilder(t *testing.T) {
	var w whereBuilder
	assert.Equal(t, "", w.sql())

	w.add("l.status = ?", "in_market")
	w.add("l.created_at BETWEEN ? AND ?", 1, 2)
	w.add("l.is_archived = FALSE")

	assert.Equal(t, "WHERE l.status = $1 AND l.created_at BETWEEN $2 AND $3 AND l.is_archived = FALSE", w.sql())
	assert.Equal(t, []any{"in_market", 1, 2}, w.args)
	assert.Equal(t, "$4", w.arg(10))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%окна%", likePattern("окна"))
	assert.Equal(t, `%50\%\_off%`, likePattern("50%_off"))
}
