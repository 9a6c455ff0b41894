package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/Jayant71/shopscale/models"
	"github.com/Jayant71/shopscale/web"
)

// GET /products/export (admin)
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("id").Find(&products).Error; err != nil {
			web.Error(c, err)
			return
		}
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			web.Error(c, err)
			return
		}
		categoryNames := make(map[uint]string, len(categories))
		for _, cat := range categories {
			categoryNames[cat.ID] = cat.Name
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Name", "Description", "Price", "StockQuantity", "CategoryID", "CategoryName", "CreatedAt"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.StockQuantity)
			row.AddCell().SetValue(p.CategoryID)
			row.AddCell().SetValue(categoryNames[p.CategoryID])
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": "Failed to write Excel file"})
			return
		}
	}
}
