package cartControllers

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Jayant71/shopscale/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{FullName: "Test User", Email: email, HashedPassword: "x", Role: models.RoleClient, IsActive: true}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) models.Product {
	t.Helper()
	category := models.Category{Name: "cat-" + name}
	require.NoError(t, db.Create(&category).Error)
	product := models.Product{Name: name, Description: "test product", Price: price, StockQuantity: stock, CategoryID: category.ID}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func productStock(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var product models.Product
	require.NoError(t, db.First(&product, id).Error)
	return product.StockQuantity
}

func cartItemCount(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()
	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0
	}
	require.NoError(t, err)
	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count).Error)
	return count
}

func TestAddItemReservesStock(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "add@example.com")
	product := createProduct(t, db, "Widget", 10, 10)

	view, err := AddItem(db, user.ID, product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, view.Quantity)
	assert.Equal(t, product.ID, view.Product.ID)
	assert.Equal(t, product.Price, view.Product.Price)
	assert.Equal(t, 7, productStock(t, db, product.ID))
}

func TestAddItemCreatesCartLazily(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "lazy@example.com")
	product := createProduct(t, db, "Widget", 10, 5)

	var count int64
	require.NoError(t, db.Model(&models.Cart{}).Where("user_id = ?", user.ID).Count(&count).Error)
	require.Zero(t, count)

	_, err := AddItem(db, user.ID, product.ID, 1)
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Cart{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAddItemMergesDuplicateLines(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "merge@example.com")
	product := createProduct(t, db, "Widget", 10, 10)

	_, err := AddItem(db, user.ID, product.ID, 1)
	require.NoError(t, err)
	view, err := AddItem(db, user.ID, product.ID, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, view.Quantity)
	assert.Equal(t, int64(1), cartItemCount(t, db, user.ID))
	assert.Equal(t, 8, productStock(t, db, product.ID))
}

func TestAddItemOutOfStock(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "oos@example.com")
	product := createProduct(t, db, "Widget", 10, 2)

	_, err := AddItem(db, user.ID, product.ID, 3)
	require.ErrorIs(t, err, models.ErrOutOfStock)

	assert.Equal(t, 2, productStock(t, db, product.ID))
	assert.Equal(t, int64(0), cartItemCount(t, db, user.ID))
}

func TestAddItemUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "missing@example.com")

	_, err := AddItem(db, user.ID, 9999, 1)
	require.ErrorIs(t, err, models.ErrProductNotFound)
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "qty@example.com")
	product := createProduct(t, db, "Widget", 10, 5)

	_, err := AddItem(db, user.ID, product.ID, 0)
	require.ErrorIs(t, err, models.ErrInvalidQuantity)
	_, err = AddItem(db, user.ID, product.ID, -2)
	require.ErrorIs(t, err, models.ErrInvalidQuantity)
	assert.Equal(t, 5, productStock(t, db, product.ID))
}

func TestAddThenRemoveRestoresStock(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "roundtrip@example.com")
	product := createProduct(t, db, "Widget", 10, 9)

	_, err := AddItem(db, user.ID, product.ID, 4)
	require.NoError(t, err)
	require.Equal(t, 5, productStock(t, db, product.ID))

	require.NoError(t, RemoveItem(db, user.ID, product.ID, 4))

	assert.Equal(t, 9, productStock(t, db, product.ID))
	// quantity zero means the line is deleted, not kept at zero
	assert.Equal(t, int64(0), cartItemCount(t, db, user.ID))
}

func TestRemoveItemPartial(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "partial@example.com")
	product := createProduct(t, db, "Widget", 10, 10)

	_, err := AddItem(db, user.ID, product.ID, 5)
	require.NoError(t, err)

	require.NoError(t, RemoveItem(db, user.ID, product.ID, 2))

	views, err := ListItems(db, user.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, 3, views[0].Quantity)
	assert.Equal(t, 7, productStock(t, db, product.ID))
}

func TestRemoveItemExceedingHeldQuantity(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "exceed@example.com")
	product := createProduct(t, db, "Widget", 10, 10)

	_, err := AddItem(db, user.ID, product.ID, 2)
	require.NoError(t, err)

	err = RemoveItem(db, user.ID, product.ID, 5)
	require.ErrorIs(t, err, models.ErrInvalidQuantity)

	views, err := ListItems(db, user.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, 2, views[0].Quantity)
	assert.Equal(t, 8, productStock(t, db, product.ID))
}

func TestRemoveItemWithoutCart(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "nocart@example.com")
	product := createProduct(t, db, "Widget", 10, 10)

	err := RemoveItem(db, user.ID, product.ID, 1)
	require.ErrorIs(t, err, models.ErrCartNotFound)
}

func TestRemoveItemNotInCart(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "notincart@example.com")
	held := createProduct(t, db, "Held", 10, 10)
	other := createProduct(t, db, "Other", 10, 10)

	_, err := AddItem(db, user.ID, held.ID, 1)
	require.NoError(t, err)

	err = RemoveItem(db, user.ID, other.ID, 1)
	require.ErrorIs(t, err, models.ErrItemNotInCart)
}

func TestListItemsWithoutCart(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "empty@example.com")

	views, err := ListItems(db, user.ID)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestListItemsProjectsProduct(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "list@example.com")
	product := createProduct(t, db, "Widget", 42.5, 10)

	_, err := AddItem(db, user.ID, product.ID, 2)
	require.NoError(t, err)

	views, err := ListItems(db, user.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, product.ID, views[0].Product.ID)
	assert.Equal(t, "Widget", views[0].Product.Name)
	assert.Equal(t, "test product", views[0].Product.Description)
	assert.Equal(t, 42.5, views[0].Product.Price)
	assert.Equal(t, product.CategoryID, views[0].Product.CategoryID)
	assert.Equal(t, 2, views[0].Quantity)
}
