// Package order converts cart snapshots into durable orders and owns the
// order status lifecycle.
package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/TroyMoses/walker-furniture-sub000/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ItemInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Color     string `json:"color"`
}

type PlaceOrderInput struct {
	Items    []ItemInput         `json:"items" binding:"required"`
	Customer models.CustomerInfo `json:"customer" binding:"required"`
	Notes    string              `json:"notes"`
}

// generateOrderRef returns a unique human-quotable order reference.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// PlaceOrder creates an order from the submitted items and clears the
// caller's cart, both inside one database transaction: a failure anywhere
// leaves neither a stray order nor a half-cleared cart.
//
// Item prices are deliberately NOT taken from the client. Each product is
// re-read inside the transaction and the stored snapshot price is the
// catalog price at commit time, so a tampered cart view cannot buy at an
// arbitrary price.
func PlaceOrder(db *gorm.DB, userID string, in PlaceOrderInput) (*models.Order, error) {
	if userID == "" {
		return nil, models.ErrUnauthenticated
	}
	if len(in.Items) == 0 {
		return nil, models.NewDomainError("VALIDATION_ERROR", "order must contain at least one item")
	}
	if in.Customer.Name == "" || in.Customer.Email == "" {
		return nil, models.NewDomainError("VALIDATION_ERROR", "customer name and email are required")
	}
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return nil, models.NewDomainError("VALIDATION_ERROR", "item quantity must be a positive integer")
		}
	}

	now := time.Now()
	ord := models.Order{
		Ref:       generateOrderRef(),
		UserID:    userID,
		Status:    models.OrderStatusPending,
		Customer:  in.Customer,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(in.Items))

		for _, item := range in.Items {
			var product models.Product
			if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return models.NewDomainError("VALIDATION_ERROR",
						fmt.Sprintf("product %d is no longer available", item.ProductID))
				}
				return err
			}

			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			items = append(items, models.OrderItem{
				ProductID: product.ID,
				Name:      product.Name,
				Price:     product.Price,
				Quantity:  item.Quantity,
				Color:     item.Color,
			})
		}

		ord.Items = items
		ord.TotalAmount = total

		if err := tx.Create(&ord).Error; err != nil {
			return err
		}

		// Clear the cart inside the same transaction.
		return tx.Where("user_id = ?", userID).Delete(&models.CartLine{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &ord, nil
}

// UpdateStatus moves an order along the fulfilment path. Only admins may
// call it, and only transitions allowed by OrderStatus.CanTransitionTo
// are accepted.
func UpdateStatus(db *gorm.DB, orderID uint, newStatus models.OrderStatus, actorIsAdmin bool) error {
	if !actorIsAdmin {
		return models.ErrNotAuthorized
	}
	if !newStatus.IsValid() {
		return models.NewDomainError("VALIDATION_ERROR", "invalid order status: "+newStatus.String())
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var ord models.Order
		if err := tx.First(&ord, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return err
		}

		if !ord.Status.CanTransitionTo(newStatus) {
			return models.NewDomainError("INVALID_TRANSITION",
				fmt.Sprintf("cannot move order from %s to %s", ord.Status, newStatus))
		}

		return tx.Model(&ord).Updates(map[string]any{
			"status":     newStatus,
			"updated_at": time.Now(),
		}).Error
	})
}

// GetByID returns one order. Non-admin callers only see their own orders;
// a foreign or unknown id fails with NotAuthorized either way.
func GetByID(db *gorm.DB, orderID uint, userID string, actorIsAdmin bool) (*models.Order, error) {
	var ord models.Order
	err := db.Preload("Items").Preload("Items.Product").First(&ord, "id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotAuthorized
	}
	if err != nil {
		return nil, err
	}
	if !actorIsAdmin && ord.UserID != userID {
		return nil, models.ErrNotAuthorized
	}
	return &ord, nil
}

// ListForUser returns the caller's orders, newest first. Items carry the
// stored snapshot price; the joined product is only for display and may be
// nil if the catalog record is gone.
func ListForUser(db *gorm.DB, userID string) ([]models.Order, error) {
	if userID == "" {
		return nil, models.ErrUnauthenticated
	}

	var orders []models.Order
	err := db.
		Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ListAll returns every order for the back office, optionally filtered by
// status and capped by limit. Admin only.
func ListAll(db *gorm.DB, status models.OrderStatus, limit int, actorIsAdmin bool) ([]models.Order, error) {
	if !actorIsAdmin {
		return nil, models.ErrNotAuthorized
	}
	if status != "" && !status.IsValid() {
		return nil, models.NewDomainError("VALIDATION_ERROR", "invalid order status: "+status.String())
	}

	query := db.
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
