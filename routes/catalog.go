package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/Jayant71/shopscale/controllers/product"
	"github.com/Jayant71/shopscale/middleware"
	"github.com/Jayant71/shopscale/models"
)

// SetupCatalogRoutes registers product and category endpoints.
// Reads are public; writes require the admin role.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	requireAdmin := middleware.RequireRole(models.RoleAdmin)

	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/export", middleware.RequireAuth, requireAdmin, productcontroller.ExportProductsToExcel(db))
		products.GET("/:id", productcontroller.GetProductByID(db))
		products.POST("", middleware.RequireAuth, requireAdmin, productcontroller.CreateProduct(db))
		products.PUT("/:id", middleware.RequireAuth, requireAdmin, productcontroller.UpdateProduct(db))
		products.DELETE("/:id", middleware.RequireAuth, requireAdmin, productcontroller.DeleteProduct(db))
	}

	categories := r.Group("/categories")
	{
		categories.GET("", productcontroller.GetCategories(db))
		categories.GET("/:id", productcontroller.GetCategoryByID(db))
		categories.POST("", middleware.RequireAuth, requireAdmin, productcontroller.CreateCategory(db))
		categories.PUT("/:id", middleware.RequireAuth, requireAdmin, productcontroller.UpdateCategory(db))
	}
}
