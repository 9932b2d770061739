package service

import (
	"context"

	"github.com/leadexchange/leadmarket/internal/models"
)

// Test-only hooks for the external service_test package, which cannot
// import service/mocks from inside package service without a cycle.

func NewTestUploadService(quota UploadQuota) *UploadService { return newTestUploadService(quota) }

func (s *UploadService) CheckQuota(ctx context.Context, uploader *models.Account) error {
	return s.checkQuota(ctx, uploader)
}
