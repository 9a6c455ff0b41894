package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jayant71/shopscale/models"
	"github.com/Jayant71/shopscale/web"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ProductInput struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Price         *float64 `json:"price" binding:"required"`
	StockQuantity int      `json:"stock_quantity" binding:"omitempty,min=0"`
	CategoryID    uint     `json:"category_id" binding:"required"`
}

type ProductUpdateInput struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	StockQuantity *int     `json:"stock_quantity"`
	CategoryID    *uint    `json:"category_id"`
}

func categoryExists(db *gorm.DB, id uint) error {
	var count int64
	if err := db.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return models.ErrCategoryNotFound
	}
	return nil
}

// GET /products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
		if err != nil || limit < 1 {
			limit = defaultPageSize
		}
		if limit > maxPageSize {
			limit = maxPageSize
		}
		offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if err != nil || offset < 0 {
			offset = 0
		}

		products := []models.Product{}
		if err := db.Order("id").Limit(limit).Offset(offset).Find(&products).Error; err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				web.Error(c, models.ErrProductNotFound)
				return
			}
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// POST /products (admin)
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Invalid input: " + err.Error()})
			return
		}
		if *input.Price < 0 {
			web.Error(c, models.ErrNegativePrice)
			return
		}

		var product models.Product
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := categoryExists(tx, input.CategoryID); err != nil {
				return err
			}
			product = models.Product{
				Name:          input.Name,
				Description:   input.Description,
				Price:         *input.Price,
				StockQuantity: input.StockQuantity,
				CategoryID:    input.CategoryID,
			}
			return tx.Create(&product).Error
		})
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /products/:id (admin)
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Invalid product ID"})
			return
		}

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Invalid input: " + err.Error()})
			return
		}
		if input.Price != nil && *input.Price < 0 {
			web.Error(c, models.ErrNegativePrice)
			return
		}
		if input.StockQuantity != nil && *input.StockQuantity < 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"code": "VALIDATION_ERROR", "error": "stock_quantity must be non-negative"})
			return
		}

		var product models.Product
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.First(&product, id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return models.ErrProductNotFound
				}
				return err
			}

			if input.Name != nil {
				product.Name = *input.Name
			}
			if input.Description != nil {
				product.Description = *input.Description
			}
			if input.Price != nil {
				product.Price = *input.Price
			}
			if input.StockQuantity != nil {
				product.StockQuantity = *input.StockQuantity
			}
			if input.CategoryID != nil {
				if err := categoryExists(tx, *input.CategoryID); err != nil {
					return err
				}
				product.CategoryID = *input.CategoryID
			}
			return tx.Save(&product).Error
		})
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /products/:id (admin)
// A product still referenced by cart or order lines cannot be deleted.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Invalid product ID"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&models.CartItem{}).Where("product_id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return models.ErrProductInUse
			}
			if err := tx.Model(&models.OrderItem{}).Where("product_id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return models.ErrProductInUse
			}

			res := tx.Delete(&models.Product{}, id)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return models.ErrProductNotFound
			}
			return nil
		})
		if err != nil {
			web.Error(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
