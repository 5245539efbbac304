package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	// Image URLs and available variant colors, stored as JSON arrays.
	Images     []string   `gorm:"serializer:json" json:"images"`
	Colors     []string   `gorm:"serializer:json" json:"colors"`
	Categories []Category `gorm:"many2many:product_categories;" json:"categories"`
	// Rating is the running average over reviews, maintained on review writes.
	Rating      float64        `json:"rating"`
	ReviewCount int            `json:"review_count"`
	Stock       int            `json:"stock"`
	InStock     bool           `gorm:"default:true" json:"in_stock"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
