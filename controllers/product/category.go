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

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// GET /categories
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories := []models.Category{}
		if err := db.Order("id").Find(&categories).Error; err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GET /categories/:id
func GetCategoryByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Invalid category ID"})
			return
		}

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				web.Error(c, models.ErrCategoryNotFound)
				return
			}
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// POST /categories (admin)
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Invalid input: " + err.Error()})
			return
		}

		var category models.Category
		err := db.Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&models.Category{}).Where("name = ?", input.Name).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return models.ErrDuplicateCategory
			}
			category = models.Category{Name: input.Name, Description: input.Description}
			if err := tx.Create(&category).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return models.ErrDuplicateCategory
				}
				return err
			}
			return nil
		})
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// PUT /categories/:id (admin)
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Invalid category ID"})
			return
		}

		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Invalid input: " + err.Error()})
			return
		}

		var category models.Category
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.First(&category, id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return models.ErrCategoryNotFound
				}
				return err
			}
			// renaming onto another category's name is a conflict
			var count int64
			if err := tx.Model(&models.Category{}).Where("name = ? AND id <> ?", input.Name, category.ID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return models.ErrDuplicateCategory
			}

			category.Name = input.Name
			category.Description = input.Description
			if err := tx.Save(&category).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return models.ErrDuplicateCategory
				}
				return err
			}
			return nil
		})
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}
