package main

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Jayant71/shopscale/auth"
	"github.com/Jayant71/shopscale/models"
)

// seedData loads demo categories, products and an admin account.
// Idempotent: existing rows are left alone.
func seedData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		categories := []models.Category{
			{Name: "Electronics", Description: "Gadgets, devices, and more"},
			{Name: "Clothing", Description: "Fashionable wear for everyone"},
			{Name: "Home & Kitchen", Description: "Essentials for your living space"},
			{Name: "Books", Description: "Knowledge and stories"},
			{Name: "Sports", Description: "Gear for the active life"},
		}
		byName := make(map[string]uint, len(categories))
		for i := range categories {
			cat := &categories[i]
			var existing models.Category
			err := tx.Where("name = ?", cat.Name).First(&existing).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := tx.Create(cat).Error; err != nil {
					return err
				}
				byName[cat.Name] = cat.ID
				continue
			}
			if err != nil {
				return err
			}
			byName[cat.Name] = existing.ID
		}

		products := []models.Product{
			{Name: "Smartphone X", Description: "Latest generation smartphone", Price: 799, StockQuantity: 50, CategoryID: byName["Electronics"]},
			{Name: "Laptop Pro", Description: "High-performance laptop", Price: 1299, StockQuantity: 25, CategoryID: byName["Electronics"]},
			{Name: "Wireless Earbuds", Description: "Noise-cancelling earbuds", Price: 149, StockQuantity: 80, CategoryID: byName["Electronics"]},
			{Name: "Cotton T-Shirt", Description: "Comfortable 100% cotton", Price: 25, StockQuantity: 100, CategoryID: byName["Clothing"]},
			{Name: "Denim Jeans", Description: "Classic blue denim", Price: 55, StockQuantity: 70, CategoryID: byName["Clothing"]},
			{Name: "Coffee Maker", Description: "Automatic drip coffee maker", Price: 60, StockQuantity: 30, CategoryID: byName["Home & Kitchen"]},
			{Name: "Knife Set", Description: "Professional 12-piece set", Price: 110, StockQuantity: 15, CategoryID: byName["Home & Kitchen"]},
			{Name: "The Great Gatsby", Description: "Classic American literature", Price: 12, StockQuantity: 50, CategoryID: byName["Books"]},
			{Name: "Yoga Mat", Description: "Non-slip exercise mat", Price: 20, StockQuantity: 60, CategoryID: byName["Sports"]},
			{Name: "Running Shoes", Description: "Lightweight road runners", Price: 90, StockQuantity: 40, CategoryID: byName["Sports"]},
		}
		for i := range products {
			p := &products[i]
			var count int64
			if err := tx.Model(&models.Product{}).Where("name = ?", p.Name).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			if err := tx.Create(p).Error; err != nil {
				return err
			}
		}

		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", "admin@shopscale.com").Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			hashed, err := auth.HashPassword("admin123")
			if err != nil {
				return err
			}
			admin := models.User{
				FullName:       "ShopScale Admin",
				Email:          "admin@shopscale.com",
				HashedPassword: hashed,
				Role:           models.RoleAdmin,
				IsActive:       true,
			}
			if err := tx.Create(&admin).Error; err != nil {
				return err
			}
			if err := tx.Create(&models.Cart{UserID: admin.ID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
