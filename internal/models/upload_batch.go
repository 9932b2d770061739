package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UploadBatchStatus is the outcome of an upload submission.
type UploadBatchStatus string

const (
	UploadBatchStatusApproved UploadBatchStatus = "approved"
)

// UploadBatch is one upload submission. PointsCredited is always zero:
// uploaders are paid when their leads are resold, never at upload time.
type UploadBatch struct {
	CreatedAt      time.Time         `db:"created_at"`
	Niche          *string           `db:"niche"`
	Region         *string           `db:"region"`
	Description    *string           `db:"description"`
	RawText        string            `db:"raw_text"`
	Status         UploadBatchStatus `db:"status"`
	PointsCredited decimal.Decimal   `db:"points_credited"`
	TotalUploaded  int               `db:"total_uploaded"`
	TotalValid     int               `db:"total_valid"`
	ID             uuid.UUID         `db:"id"`
	UploaderID     uuid.UUID         `db:"uploader_id"`
}

// DuplicatesRejected is the number of de-duplicated candidates that were blocked.
func (b *UploadBatch) DuplicatesRejected() int {
	return b.TotalUploaded - b.TotalValid
}

// ExistingPhone is the subset of a stored lead consulted by the upload anti-fraud check.
type ExistingPhone struct {
	CreatedAt     time.Time `db:"created_at"`
	Phone         string    `db:"phone"`
	PurchaseCount int       `db:"purchase_count"`
	IsArchived    bool      `db:"is_archived"`
}
