package cartControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jayant71/shopscale/middleware"
	"github.com/Jayant71/shopscale/models"
	"github.com/Jayant71/shopscale/web"
)

// ProductInfo is the read-time projection of a product embedded in cart
// responses. It is assembled from the products table on every read, not
// stored with the cart line.
type ProductInfo struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CategoryID  uint    `json:"category_id"`
}

// ItemView is a cart line joined with its product projection.
type ItemView struct {
	ID       uint        `json:"id"`
	Product  ProductInfo `json:"product"`
	Quantity int         `json:"quantity"`
}

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"omitempty,min=1"`
}

func productInfo(p models.Product) ProductInfo {
	return ProductInfo{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
	}
}

// getOrCreateCart returns the user's cart, creating it on first use.
func getOrCreateCart(tx *gorm.DB, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := tx.Where("user_id = ?", userID).First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	cart = models.Cart{UserID: userID}
	if err := tx.Create(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost the creation race against another request for the same user
			if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
				return nil, err
			}
			return &cart, nil
		}
		return nil, err
	}
	return &cart, nil
}

// touchCart writes the cart row so concurrent mutations of the same cart
// serialize behind its row lock for the rest of the transaction.
func touchCart(tx *gorm.DB, cartID uint) error {
	return tx.Model(&models.Cart{}).
		Where("id = ?", cartID).
		UpdateColumn("updated_at", time.Now()).Error
}

// AddItem reserves qty units of stock and adds them to the user's cart in a
// single transaction. Repeat adds of the same product increment the existing
// line instead of creating a second one.
func AddItem(db *gorm.DB, userID, productID uint, qty int) (*ItemView, error) {
	if qty < 1 {
		return nil, models.ErrInvalidQuantity
	}

	var view *ItemView
	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrProductNotFound
			}
			return err
		}
		if product.StockQuantity < qty {
			return models.ErrOutOfStock
		}

		cart, err := getOrCreateCart(tx, userID)
		if err != nil {
			return err
		}
		if err := touchCart(tx, cart.ID); err != nil {
			return err
		}

		if err := models.ReserveStock(tx, productID, qty); err != nil {
			return err
		}

		// Increment an existing line; fall back to inserting a new one.
		res := tx.Model(&models.CartItem{}).
			Where("cart_id = ? AND product_id = ?", cart.ID, productID).
			UpdateColumn("quantity", gorm.Expr("quantity + ?", qty))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			item := models.CartItem{CartID: cart.ID, ProductID: productID, Quantity: qty}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}

		var item models.CartItem
		if err := tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error; err != nil {
			return err
		}
		view = &ItemView{ID: item.ID, Product: productInfo(product), Quantity: item.Quantity}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// RemoveItem hands qty units back to stock and decrements the cart line,
// deleting the line when it reaches zero.
func RemoveItem(db *gorm.DB, userID, productID uint, qty int) error {
	if qty < 1 {
		return models.ErrInvalidQuantity
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrCartNotFound
			}
			return err
		}
		if err := touchCart(tx, cart.ID); err != nil {
			return err
		}

		var item models.CartItem
		if err := tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrItemNotInCart
			}
			return err
		}
		if qty > item.Quantity {
			return models.ErrInvalidQuantity
		}

		if err := models.ReleaseStock(tx, productID, qty); err != nil {
			return err
		}

		item.Quantity -= qty
		if item.Quantity == 0 {
			return tx.Delete(&models.CartItem{}, item.ID).Error
		}
		return tx.Model(&models.CartItem{}).
			Where("id = ?", item.ID).
			UpdateColumn("quantity", item.Quantity).Error
	})
}

// ListItems returns the user's cart lines with their product projections.
// A user without a cart gets an empty list, not an error.
func ListItems(db *gorm.DB, userID uint) ([]ItemView, error) {
	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []ItemView{}, nil
		}
		return nil, err
	}

	var items []models.CartItem
	if err := db.Where("cart_id = ?", cart.ID).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []ItemView{}, nil
	}

	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	var products []models.Product
	if err := db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		views = append(views, ItemView{ID: item.ID, Product: productInfo(product), Quantity: item.Quantity})
	}
	return views, nil
}

// GET /cart
func GetCartItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "error": "Unauthorized"})
			return
		}
		items, err := ListItems(db, userID)
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /cart/add
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "error": "Unauthorized"})
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Invalid input: " + err.Error()})
			return
		}
		qty := input.Quantity
		if qty == 0 {
			qty = 1
		}

		item, err := AddItem(db, userID, input.ProductID, qty)
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// DELETE /cart/:product_id
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "error": "Unauthorized"})
			return
		}

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Invalid product ID"})
			return
		}
		qty, err := strconv.Atoi(c.DefaultQuery("quantity", "1"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Invalid quantity"})
			return
		}

		if err := RemoveItem(db, userID, uint(productID), qty); err != nil {
			web.Error(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
