package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_BurstThenThrottle(t *testing.T) {
	l := NewLimiter(1, 2)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("alice"))
	assert.True(t, l.Allow("alice"))
	assert.False(t, l.Allow("alice"))

	// other identities have their own bucket
	assert.True(t, l.Allow("bob"))

	now = now.Add(time.Second)
	assert.True(t, l.Allow("alice"))
}

func TestLimiter_EvictsIdleKeys(t *testing.T) {
	l := NewLimiter(1, 1)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	l.Allow("alice")
	l.Allow("bob")
	assert.Equal(t, 2, l.Len())

	now = now.Add(11 * time.Minute)
	l.Allow("carol")
	assert.Equal(t, 1, l.Len())
}
