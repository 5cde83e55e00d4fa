package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Priority ranks wishlist items.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank orders priorities from most to least important.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// DefaultWishlistCategory is assigned to items created without a category.
const DefaultWishlistCategory = "Other"

// DefaultCategoryIcon is used for custom categories created without an icon.
const DefaultCategoryIcon = "ri-bookmark-line"

// WishlistItem is something the user wants to buy.
type WishlistItem struct {
	Base
	Name          string          `gorm:"size:200;not null" json:"name"`
	Cost          decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"cost"`
	Category      string          `gorm:"size:100;not null" json:"category"`
	Priority      Priority        `gorm:"size:16;not null" json:"priority"`
	TargetDate    *Date           `gorm:"type:date" json:"target_date,omitempty"`
	URL           string          `gorm:"column:url;size:2048" json:"url,omitempty"`
	Purchased     bool            `gorm:"not null" json:"purchased"`
	PurchasedDate *Date           `gorm:"type:date" json:"purchased_date,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// WishlistCategory groups wishlist items. Presets are built in and never
// stored; custom categories are rows. Deleting a category removes the row
// outright so its name can be reused.
type WishlistCategory struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Icon      string    `gorm:"size:64;not null" json:"icon"`
	Preset    bool      `gorm:"-" json:"preset"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (c *WishlistCategory) BeforeCreate(tx *gorm.DB) error {
	assignID(&c.ID)
	return nil
}

// PresetWishlistCategories are available without being created.
var PresetWishlistCategories = []WishlistCategory{
	{Name: "Electronics", Icon: "ri-computer-line", Preset: true},
	{Name: "Furniture", Icon: "ri-sofa-line", Preset: true},
	{Name: "Travel", Icon: "ri-plane-line", Preset: true},
	{Name: "Vehicle", Icon: "ri-car-line", Preset: true},
	{Name: "Education", Icon: "ri-book-open-line", Preset: true},
	{Name: "Health", Icon: "ri-heart-pulse-line", Preset: true},
	{Name: "Entertainment", Icon: "ri-gamepad-line", Preset: true},
	{Name: DefaultWishlistCategory, Icon: DefaultCategoryIcon, Preset: true},
}
