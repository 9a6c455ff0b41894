package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Jayant71/shopscale/controllers/order"
	"github.com/Jayant71/shopscale/middleware"
)

// SetupOrderRoutes registers all "/orders/*" endpoints.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	orders.Use(middleware.RequireAuth)
	{
		orders.GET("", orderControllers.GetUserOrdersHandler(db))
	}
}
