package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authControllers "github.com/Jayant71/shopscale/controllers/auth"
	"github.com/Jayant71/shopscale/middleware"
	"github.com/Jayant71/shopscale/models"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(db))
		authGroup.POST("/login", authControllers.Login(db))
		authGroup.GET("/users",
			middleware.RequireAuth,
			middleware.RequireRole(models.RoleAdmin),
			authControllers.GetAllUsers(db))
	}
}
