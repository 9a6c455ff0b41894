package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Jayant71/shopscale/controllers/cart"
	"github.com/Jayant71/shopscale/middleware"
)

// SetupCartRoutes registers all "/cart/*" endpoints. Requires a bearer token.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.RequireAuth)
	{
		cartGroup.GET("", cartControllers.GetCartItems(db))
		cartGroup.POST("/add", cartControllers.AddCartItem(db))
		cartGroup.POST("/checkout", cartControllers.CheckoutHandler(db))
		cartGroup.DELETE("/:product_id", cartControllers.RemoveCartItem(db))
	}
}
