package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/leadexchange/leadmarket/internal/models"
	"github.com/leadexchange/leadmarket/internal/service"
	servicemocks "github.com/leadexchange/leadmarket/internal/service/mocks"
)

func TestUploadService_CheckQuota(t *testing.T) {
	uploader := &models.Account{ID: uuid.New()}
	ctx := context.Background()

	t.Run("no quota configured", func(t *testing.T) {
		assert.NoError(t, service.NewTestUploadService(nil).CheckQuota(ctx, uploader))
	})

	t.Run("within quota", func(t *testing.T) {
		quota := servicemocks.NewMockUploadQuota(t)
		quota.On("Allow", ctx, uploader.ID.String()).Return(true, nil)
		assert.NoError(t, service.NewTestUploadService(quota).CheckQuota(ctx, uploader))
	})

	t.Run("quota exceeded", func(t *testing.T) {
		quota := servicemocks.NewMockUploadQuota(t)
		quota.On("Allow", ctx, uploader.ID.String()).Return(false, nil)
		err := service.NewTestUploadService(quota).CheckQuota(ctx, uploader)
		assert.Equal(t, service.ErrCodeRateLimited, service.ErrorCode(err))
	})

	t.Run("backend down fails open", func(t *testing.T) {
		quota := servicemocks.NewMockUploadQuota(t)
		quota.On("Allow", ctx, uploader.ID.String()).Return(false, errors.New("dial tcp: refused"))
		assert.NoError(t, service.NewTestUploadService(quota).CheckQuota(ctx, uploader))
	})
}
