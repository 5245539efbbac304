package cart

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/TroyMoses/walker-furniture-sub000/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Category{}, &models.CartLine{}))
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

func TestAddItem_SameKeyAccumulates(t *testing.T) {
	db := setupTestDB(t)
	sofa := createProduct(t, db, "Oak Sofa", 1000)

	firstID, err := AddItem(db, "user-a", sofa.ID, 1, "")
	require.NoError(t, err)
	secondID, err := AddItem(db, "user-a", sofa.ID, 2, "")
	require.NoError(t, err)
	thirdID, err := AddItem(db, "user-a", sofa.ID, 4, "")
	require.NoError(t, err)

	assert.Equal(t, firstID, secondID)
	assert.Equal(t, firstID, thirdID)

	lines, err := ListItems(db, "user-a")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Quantity)
}

func TestAddItem_ColorsMakeDistinctLines(t *testing.T) {
	db := setupTestDB(t)
	sofa := createProduct(t, db, "Oak Sofa", 1000)

	redID, err := AddItem(db, "user-a", sofa.ID, 1, "red")
	require.NoError(t, err)
	blueID, err := AddItem(db, "user-a", sofa.ID, 1, "blue")
	require.NoError(t, err)
	noColorID, err := AddItem(db, "user-a", sofa.ID, 1, "")
	require.NoError(t, err)

	assert.NotEqual(t, redID, blueID)
	assert.NotEqual(t, redID, noColorID)

	lines, err := ListItems(db, "user-a")
	require.NoError(t, err)
	assert.Len(t, lines, 3)
}

func TestAddItem_Validation(t *testing.T) {
	db := setupTestDB(t)
	sofa := createProduct(t, db, "Oak Sofa", 1000)

	_, err := AddItem(db, "user-a", sofa.ID, 0, "")
	require.Error(t, err)
	var domainErr *models.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)

	_, err = AddItem(db, "user-a", sofa.ID, -3, "")
	assert.Error(t, err)

	_, err = AddItem(db, "", sofa.ID, 1, "")
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
}

func TestAddItem_UnknownProductTolerated(t *testing.T) {
	db := setupTestDB(t)

	// Add-time never validates the product id; the line just joins to a
	// nil product at read time.
	lineID, err := AddItem(db, "user-a", 9999, 2, "")
	require.NoError(t, err)
	assert.NotZero(t, lineID)

	lines, err := ListItems(db, "user-a")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Nil(t, lines[0].Product)
}

func TestSetQuantity_ReplacesExactValue(t *testing.T) {
	db := setupTestDB(t)
	sofa := createProduct(t, db, "Oak Sofa", 1000)

	lineID, err := AddItem(db, "user-a", sofa.ID, 5, "")
	require.NoError(t, err)

	require.NoError(t, SetQuantity(db, "user-a", lineID, 2))

	lines, err := ListItems(db, "user-a")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)

	// Same input again is a no-op, not an error.
	require.NoError(t, SetQuantity(db, "user-a", lineID, 2))
}

func TestSetQuantity_ZeroOrNegativeDeletes(t *testing.T) {
	for _, quantity := range []int{0, -1, -100} {
		t.Run(fmt.Sprintf("quantity_%d", quantity), func(t *testing.T) {
			db := setupTestDB(t)
			sofa := createProduct(t, db, "Oak Sofa", 1000)

			lineID, err := AddItem(db, "user-a", sofa.ID, 3, "")
			require.NoError(t, err)

			require.NoError(t, SetQuantity(db, "user-a", lineID, quantity))

			lines, err := ListItems(db, "user-a")
			require.NoError(t, err)
			assert.Empty(t, lines)
		})
	}
}

func TestSetQuantity_ForeignLineNotAuthorized(t *testing.T) {
	db := setupTestDB(t)
	sofa := createProduct(t, db, "Oak Sofa", 1000)

	lineID, err := AddItem(db, "user-a", sofa.ID, 1, "")
	require.NoError(t, err)

	err = SetQuantity(db, "user-b", lineID, 5)
	assert.ErrorIs(t, err, models.ErrNotAuthorized)

	// Unknown line looks exactly like a foreign one.
	err = SetQuantity(db, "user-a", 9999, 5)
	assert.ErrorIs(t, err, models.ErrNotAuthorized)
}

func TestRemoveItem(t *testing.T) {
	db := setupTestDB(t)
	sofa := createProduct(t, db, "Oak Sofa", 1000)

	lineID, err := AddItem(db, "user-a", sofa.ID, 1, "")
	require.NoError(t, err)

	err = RemoveItem(db, "user-b", lineID)
	assert.ErrorIs(t, err, models.ErrNotAuthorized)

	require.NoError(t, RemoveItem(db, "user-a", lineID))
	assert.ErrorIs(t, RemoveItem(db, "user-a", lineID), models.ErrNotAuthorized)

	lines, err := ListItems(db, "user-a")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestClear_IdempotentAndScoped(t *testing.T) {
	db := setupTestDB(t)
	sofa := createProduct(t, db, "Oak Sofa", 1000)
	lamp := createProduct(t, db, "Brass Lamp", 150)

	_, err := AddItem(db, "user-a", sofa.ID, 1, "")
	require.NoError(t, err)
	_, err = AddItem(db, "user-a", lamp.ID, 2, "")
	require.NoError(t, err)
	_, err = AddItem(db, "user-b", lamp.ID, 1, "")
	require.NoError(t, err)

	require.NoError(t, Clear(db, "user-a"))
	require.NoError(t, Clear(db, "user-a")) // empty cart is fine

	aLines, err := ListItems(db, "user-a")
	require.NoError(t, err)
	assert.Empty(t, aLines)

	bLines, err := ListItems(db, "user-b")
	require.NoError(t, err)
	assert.Len(t, bLines, 1)
}

func TestListItems_JoinsCurrentProduct(t *testing.T) {
	db := setupTestDB(t)
	sofa := createProduct(t, db, "Oak Sofa", 1000)

	_, err := AddItem(db, "user-a", sofa.ID, 2, "Beige")
	require.NoError(t, err)

	lines, err := ListItems(db, "user-a")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.NotNil(t, lines[0].Product)
	assert.Equal(t, "Oak Sofa", lines[0].Product.Name)
	assert.Equal(t, "Beige", lines[0].Color)
}

func TestSummarize_SkipsDanglingProducts(t *testing.T) {
	db := setupTestDB(t)
	sofa := createProduct(t, db, "Oak Sofa", 1000)
	lamp := createProduct(t, db, "Brass Lamp", 150)

	_, err := AddItem(db, "user-a", sofa.ID, 2, "")
	require.NoError(t, err)
	_, err = AddItem(db, "user-a", lamp.ID, 3, "")
	require.NoError(t, err)

	// Remove the lamp from the catalog; its line stays but contributes
	// zero to the total.
	require.NoError(t, db.Delete(&models.Product{}, lamp.ID).Error)

	lines, err := ListItems(db, "user-a")
	require.NoError(t, err)
	require.Len(t, lines, 2)

	summary := Summarize(lines)
	assert.Equal(t, 5, summary.TotalItems)
	assert.True(t, summary.TotalPrice.Equal(decimal.NewFromInt(2000)),
		"expected 2000, got %s", summary.TotalPrice)
}
