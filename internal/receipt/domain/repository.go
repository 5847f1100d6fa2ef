package domain

import (
	"context"

	"gorm.io/gorm"
)

// Repository persists the single draft record. Load returns nil when no
// usable draft exists; callers fall back to defaults.
type Repository interface {
	Load(ctx context.Context, db *gorm.DB) (*ReceiptDraft, error)
	Save(ctx context.Context, db *gorm.DB, draft ReceiptDraft) error
	Clear(ctx context.Context, db *gorm.DB) error
}
