package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rasidhq/rasid/internal/receipt/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StorageKey is the well-known key the single draft record lives under. The
// record is overwritten wholesale on every change; there is no versioning.
const StorageKey = "invoice-form-data"

type draftRecord struct {
	StorageKey string         `gorm:"column:storage_key;primaryKey"`
	Payload    datatypes.JSON `gorm:"not null"`
	UpdatedAt  time.Time      `gorm:"not null"`
}

func (draftRecord) TableName() string { return "receipt_drafts" }

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

// Migrate creates the drafts table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&draftRecord{})
}

func (r *repo) Load(ctx context.Context, db *gorm.DB) (*domain.ReceiptDraft, error) {
	var record draftRecord
	err := db.WithContext(ctx).First(&record, "storage_key = ?", StorageKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var draft domain.ReceiptDraft
	if err := json.Unmarshal(record.Payload, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (r *repo) Save(ctx context.Context, db *gorm.DB, draft domain.ReceiptDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	record := draftRecord{
		StorageKey: StorageKey,
		Payload:    payload,
		UpdatedAt:  time.Now().UTC(),
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "storage_key"}},
			UpdateAll: true,
		}).
		Create(&record).Error
}

func (r *repo) Clear(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).
		Delete(&draftRecord{}, "storage_key = ?", StorageKey).Error
}
