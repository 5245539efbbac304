// Package cart maintains the authoritative per-user set of pending
// selections. A line is keyed by (user, product, color); adding the same
// key again increments the existing line instead of creating a second one.
package cart

import (
	"errors"
	"time"

	"github.com/TroyMoses/walker-furniture-sub000/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AddItem records a selection for userID and returns the cart line id.
// An existing (user, product, color) line is incremented by quantity; a
// missing one is inserted. The product id is not validated here — the
// catalog does not cascade into carts, so reads must tolerate dangling
// references anyway.
func AddItem(db *gorm.DB, userID string, productID uint, quantity int, color string) (uint, error) {
	if userID == "" {
		return 0, models.ErrUnauthenticated
	}
	if quantity < 1 {
		return 0, models.NewDomainError("VALIDATION_ERROR", "quantity must be a positive integer")
	}

	var lineID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		var line models.CartLine
		err := tx.Where("user_id = ? AND product_id = ? AND color = ?", userID, productID, color).
			First(&line).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			line = models.CartLine{
				UserID:    userID,
				ProductID: productID,
				Color:     color,
				Quantity:  quantity,
				CreatedAt: time.Now(),
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
			lineID = line.ID
			return nil
		}
		if err != nil {
			return err
		}

		// Atomic in-database increment so concurrent adds for the same
		// key cannot lose updates.
		if err := tx.Model(&line).
			UpdateColumn("quantity", gorm.Expr("quantity + ?", quantity)).Error; err != nil {
			return err
		}
		lineID = line.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return lineID, nil
}

// SetQuantity replaces a line's quantity with the exact given value. This
// is the update-from-UI path: unlike AddItem it does not increment, and a
// quantity of zero or below deletes the line.
func SetQuantity(db *gorm.DB, userID string, lineID uint, quantity int) error {
	if userID == "" {
		return models.ErrUnauthenticated
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var line models.CartLine
		err := tx.Where("id = ? AND user_id = ?", lineID, userID).First(&line).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotAuthorized
		}
		if err != nil {
			return err
		}

		if quantity <= 0 {
			return tx.Delete(&line).Error
		}
		return tx.Model(&line).UpdateColumn("quantity", quantity).Error
	})
}

// RemoveItem deletes a single line owned by userID.
func RemoveItem(db *gorm.DB, userID string, lineID uint) error {
	if userID == "" {
		return models.ErrUnauthenticated
	}

	result := db.Where("id = ? AND user_id = ?", lineID, userID).Delete(&models.CartLine{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrNotAuthorized
	}
	return nil
}

// Clear deletes every line owned by userID. No-op on an empty cart.
func Clear(db *gorm.DB, userID string) error {
	if userID == "" {
		return models.ErrUnauthenticated
	}
	return db.Where("user_id = ?", userID).Delete(&models.CartLine{}).Error
}

// ListItems returns the user's lines with the current product joined in.
// A line whose product has been removed from the catalog comes back with a
// nil Product rather than an error.
func ListItems(db *gorm.DB, userID string) ([]models.CartLine, error) {
	if userID == "" {
		return nil, models.ErrUnauthenticated
	}

	var lines []models.CartLine
	if err := db.Preload("Product").Where("user_id = ?", userID).Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// Summary is the read-side aggregate over a cart listing.
type Summary struct {
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// Summarize computes the aggregate the storefront header displays. Lines
// whose product no longer resolves contribute zero to the price, so a
// dangling reference silently lowers the displayed total.
func Summarize(lines []models.CartLine) Summary {
	s := Summary{TotalPrice: decimal.Zero}
	for _, line := range lines {
		s.TotalItems += line.Quantity
		if line.Product != nil {
			s.TotalPrice = s.TotalPrice.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
	}
	return s
}
