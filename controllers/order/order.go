package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jayant71/shopscale/middleware"
	"github.com/Jayant71/shopscale/models"
	"github.com/Jayant71/shopscale/web"
)

// ListUserOrders returns a user's orders with their items, newest first.
func ListUserOrders(db *gorm.DB, userID uint) ([]models.Order, error) {
	orders := []models.Order{}
	err := db.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

// GET /orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "error": "Unauthorized"})
			return
		}
		orders, err := ListUserOrders(db, userID)
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
