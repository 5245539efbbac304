package models

import "time"

// CartLine is one pending (user, product, color) selection. Color is part
// of the identity key; the empty string is the distinct "no color" key, so
// the same product with and without a color makes two lines.
type CartLine struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    string `gorm:"not null;uniqueIndex:idx_cart_line_key" json:"user_id"`
	ProductID uint   `gorm:"not null;uniqueIndex:idx_cart_line_key" json:"product_id"`
	Color     string `gorm:"not null;default:'';uniqueIndex:idx_cart_line_key" json:"color"`
	Quantity  int    `gorm:"not null" json:"quantity"`
	// Joined at read time. Nil when the product has been removed from the
	// catalog; catalog deletions are not cascaded into carts.
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product"`
	CreatedAt time.Time `json:"created_at"`
}
