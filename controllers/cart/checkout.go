package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jayant71/shopscale/middleware"
	"github.com/Jayant71/shopscale/models"
	"github.com/Jayant71/shopscale/web"
)

func newOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// Checkout converts the user's cart into an immutable order in one
// transaction: load the cart, refuse if empty, freeze the current price into
// each order item, drain the cart lines, and create the order with the final
// total. Stock is not touched here; it was already debited when each item
// entered the cart. Any failure rolls the whole transaction back, leaving
// cart, stock, and orders exactly as they were.
func Checkout(db *gorm.DB, userID uint) (*models.Order, error) {
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrCartNotFound
			}
			return err
		}
		// Serialize concurrent checkouts of the same cart: whoever gets the
		// cart row lock second reloads the lines and finds them gone.
		if err := touchCart(tx, cart.ID); err != nil {
			return err
		}

		var items []models.CartItem
		if err := tx.Where("cart_id = ?", cart.ID).Order("id").Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return models.ErrEmptyCart
		}

		var total float64
		orderItems := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			var product models.Product
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					// a referenced product vanished between add and checkout
					return models.ErrProductNotFound
				}
				return err
			}

			orderItems = append(orderItems, models.OrderItem{
				ProductID:       product.ID,
				Quantity:        item.Quantity,
				PriceAtPurchase: product.Price,
			})
			total += product.Price * float64(item.Quantity)

			res := tx.Delete(&models.CartItem{}, item.ID)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// the line was consumed by a checkout that committed first
				return models.ErrEmptyCart
			}
		}

		order = models.Order{
			UserID:      userID,
			Reference:   newOrderRef(),
			TotalAmount: total,
			Items:       orderItems,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// POST /cart/checkout
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "error": "Unauthorized"})
			return
		}
		order, err := Checkout(db, userID)
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
