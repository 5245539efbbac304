package order

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/TroyMoses/walker-furniture-sub000/models"
	cartService "github.com/TroyMoses/walker-furniture-sub000/services/cart"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{}, &models.CartLine{}, &models.Order{}, &models.OrderItem{},
	))
	return db
}

func createProduct(t *testing.T, db *gorm.DB, name string, price int64) models.Product {
	t.Helper()
	product := models.Product{
		Name:    name,
		Price:   decimal.NewFromInt(price),
		InStock: true,
		Stock:   10,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

var testCustomer = models.CustomerInfo{
	Name:  "Ada Walker",
	Email: "ada@example.com",
}

func TestPlaceOrder_ComputesTotalFromCatalogPrices(t *testing.T) {
	db := setupTestDB(t)
	chair := createProduct(t, db, "Walnut Chair", 100)
	lamp := createProduct(t, db, "Brass Lamp", 50)

	ord, err := PlaceOrder(db, "user-a", PlaceOrderInput{
		Items: []ItemInput{
			{ProductID: chair.ID, Quantity: 2},
			{ProductID: lamp.ID, Quantity: 1},
		},
		Customer: testCustomer,
	})
	require.NoError(t, err)

	assert.True(t, ord.TotalAmount.Equal(decimal.NewFromInt(250)),
		"expected 250, got %s", ord.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, ord.Status)
	assert.NotEmpty(t, ord.Ref)
	require.Len(t, ord.Items, 2)
	assert.True(t, ord.Items[0].Price.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "Walnut Chair", ord.Items[0].Name)
}

func TestPlaceOrder_SnapshotSurvivesCatalogPriceChange(t *testing.T) {
	db := setupTestDB(t)
	chair := createProduct(t, db, "Walnut Chair", 100)

	ord, err := PlaceOrder(db, "user-a", PlaceOrderInput{
		Items:    []ItemInput{{ProductID: chair.ID, Quantity: 1}},
		Customer: testCustomer,
	})
	require.NoError(t, err)

	// Reprice the product after checkout; the stored order must not move.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", chair.ID).
		Update("price", decimal.NewFromInt(999)).Error)

	orders, err := ListForUser(db, "user-a")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)
	assert.True(t, orders[0].Items[0].Price.Equal(decimal.NewFromInt(100)))
	assert.True(t, orders[0].TotalAmount.Equal(ord.TotalAmount))
	// The joined product shows the new catalog price for display only.
	require.NotNil(t, orders[0].Items[0].Product)
	assert.True(t, orders[0].Items[0].Product.Price.Equal(decimal.NewFromInt(999)))
}

func TestPlaceOrder_ClearsCart(t *testing.T) {
	db := setupTestDB(t)
	sofa := createProduct(t, db, "Oak Sofa", 1299000)
	lamp := createProduct(t, db, "Brass Lamp", 150000)

	_, err := cartService.AddItem(db, "user-a", sofa.ID, 1, "Beige")
	require.NoError(t, err)
	_, err = cartService.AddItem(db, "user-a", sofa.ID, 2, "Beige")
	require.NoError(t, err)
	_, err = cartService.AddItem(db, "user-a", lamp.ID, 1, "")
	require.NoError(t, err)

	lines, err := cartService.ListItems(db, "user-a")
	require.NoError(t, err)
	require.Len(t, lines, 2) // repeated Beige sofa collapsed into one line

	items := make([]ItemInput, 0, len(lines))
	for _, line := range lines {
		items = append(items, ItemInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Color:     line.Color,
		})
	}

	ord, err := PlaceOrder(db, "user-a", PlaceOrderInput{Items: items, Customer: testCustomer})
	require.NoError(t, err)
	assert.True(t, ord.TotalAmount.Equal(decimal.NewFromInt(4047000)),
		"expected 4047000, got %s", ord.TotalAmount)

	lines, err = cartService.ListItems(db, "user-a")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestPlaceOrder_FailureLeavesNoTrace(t *testing.T) {
	db := setupTestDB(t)
	chair := createProduct(t, db, "Walnut Chair", 100)

	_, err := cartService.AddItem(db, "user-a", chair.ID, 2, "")
	require.NoError(t, err)

	// The second item references a product the catalog no longer has, so
	// the transaction must roll back after the first item was processed.
	_, err = PlaceOrder(db, "user-a", PlaceOrderInput{
		Items: []ItemInput{
			{ProductID: chair.ID, Quantity: 2},
			{ProductID: 9999, Quantity: 1},
		},
		Customer: testCustomer,
	})
	require.Error(t, err)
	var domainErr *models.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)

	lines, err := cartService.ListItems(db, "user-a")
	require.NoError(t, err)
	assert.Len(t, lines, 1, "cart must be untouched after a failed checkout")
}

func TestPlaceOrder_EmptyItemsRejected(t *testing.T) {
	db := setupTestDB(t)

	_, err := PlaceOrder(db, "user-a", PlaceOrderInput{Customer: testCustomer})
	require.Error(t, err)
	var domainErr *models.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)
}

func TestPlaceOrder_RequiresCustomerInfo(t *testing.T) {
	db := setupTestDB(t)
	chair := createProduct(t, db, "Walnut Chair", 100)

	_, err := PlaceOrder(db, "user-a", PlaceOrderInput{
		Items:    []ItemInput{{ProductID: chair.ID, Quantity: 1}},
		Customer: models.CustomerInfo{Name: "Ada Walker"}, // missing email
	})
	assert.Error(t, err)

	_, err = PlaceOrder(db, "", PlaceOrderInput{
		Items:    []ItemInput{{ProductID: chair.ID, Quantity: 1}},
		Customer: testCustomer,
	})
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
}

func placeTestOrder(t *testing.T, db *gorm.DB, userID string) *models.Order {
	t.Helper()
	chair := createProduct(t, db, "Walnut Chair", 100)
	ord, err := PlaceOrder(db, userID, PlaceOrderInput{
		Items:    []ItemInput{{ProductID: chair.ID, Quantity: 1}},
		Customer: testCustomer,
	})
	require.NoError(t, err)
	return ord
}

func TestUpdateStatus_AdminOnly(t *testing.T) {
	db := setupTestDB(t)
	ord := placeTestOrder(t, db, "user-a")

	err := UpdateStatus(db, ord.ID, models.OrderStatusProcessing, false)
	assert.ErrorIs(t, err, models.ErrNotAuthorized)

	require.NoError(t, UpdateStatus(db, ord.ID, models.OrderStatusProcessing, true))

	updated, err := GetByID(db, ord.ID, "", true)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusProcessing, updated.Status)
}

func TestUpdateStatus_FollowsTransitionTable(t *testing.T) {
	db := setupTestDB(t)
	ord := placeTestOrder(t, db, "user-a")

	// Skipping straight to shipped is not allowed.
	err := UpdateStatus(db, ord.ID, models.OrderStatusShipped, true)
	require.Error(t, err)
	var domainErr *models.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_TRANSITION", domainErr.Code)

	require.NoError(t, UpdateStatus(db, ord.ID, models.OrderStatusProcessing, true))
	require.NoError(t, UpdateStatus(db, ord.ID, models.OrderStatusShipped, true))
	require.NoError(t, UpdateStatus(db, ord.ID, models.OrderStatusDelivered, true))

	// Delivered is terminal.
	err = UpdateStatus(db, ord.ID, models.OrderStatusCancelled, true)
	assert.Error(t, err)
}

func TestUpdateStatus_CancelFromNonTerminal(t *testing.T) {
	db := setupTestDB(t)
	ord := placeTestOrder(t, db, "user-a")

	require.NoError(t, UpdateStatus(db, ord.ID, models.OrderStatusProcessing, true))
	require.NoError(t, UpdateStatus(db, ord.ID, models.OrderStatusCancelled, true))

	err := UpdateStatus(db, ord.ID, models.OrderStatusProcessing, true)
	assert.Error(t, err, "cancelled is terminal")
}

func TestUpdateStatus_UnknownOrder(t *testing.T) {
	db := setupTestDB(t)
	err := UpdateStatus(db, 9999, models.OrderStatusProcessing, true)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGetByID_Ownership(t *testing.T) {
	db := setupTestDB(t)
	ord := placeTestOrder(t, db, "user-a")

	_, err := GetByID(db, ord.ID, "user-b", false)
	assert.ErrorIs(t, err, models.ErrNotAuthorized)

	// Unknown id is indistinguishable from a foreign one.
	_, err = GetByID(db, 9999, "user-a", false)
	assert.ErrorIs(t, err, models.ErrNotAuthorized)

	got, err := GetByID(db, ord.ID, "user-a", false)
	require.NoError(t, err)
	assert.Equal(t, ord.ID, got.ID)

	got, err = GetByID(db, ord.ID, "someone-else", true)
	require.NoError(t, err)
	assert.Equal(t, ord.ID, got.ID)
}

func TestListAll_AdminOnlyWithFilterAndLimit(t *testing.T) {
	db := setupTestDB(t)
	first := placeTestOrder(t, db, "user-a")
	placeTestOrder(t, db, "user-b")
	placeTestOrder(t, db, "user-c")

	_, err := ListAll(db, "", 0, false)
	assert.ErrorIs(t, err, models.ErrNotAuthorized)

	orders, err := ListAll(db, "", 0, true)
	require.NoError(t, err)
	assert.Len(t, orders, 3)

	orders, err = ListAll(db, "", 2, true)
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	require.NoError(t, UpdateStatus(db, first.ID, models.OrderStatusProcessing, true))
	orders, err = ListAll(db, models.OrderStatusProcessing, 0, true)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, first.ID, orders[0].ID)

	_, err = ListAll(db, models.OrderStatus("bogus"), 0, true)
	assert.Error(t, err)
}

func TestListForUser_ScopedAndOrdered(t *testing.T) {
	db := setupTestDB(t)
	placeTestOrder(t, db, "user-a")
	placeTestOrder(t, db, "user-a")
	placeTestOrder(t, db, "user-b")

	orders, err := ListForUser(db, "user-a")
	require.NoError(t, err)
	assert.Len(t, orders, 2)
	for _, ord := range orders {
		assert.Equal(t, "user-a", ord.UserID)
	}

	_, err = ListForUser(db, "")
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
}
