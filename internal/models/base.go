package models

import (
	"time"

	"budgetcast/internal/uuid"

	"gorm.io/gorm"
)

// Base contains the ID, timestamps and soft-delete marker shared by every
// editable record.
type Base struct {
	ID        string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	assignID(&b.ID)
	return nil
}

// assignID sets a time-ordered ID unless the caller chose one.
func assignID(id *string) {
	if *id == "" {
		*id = uuid.New()
	}
}
