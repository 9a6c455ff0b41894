package models

import "gorm.io/gorm"

// ReserveStock debits qty units from a product's stock inside the caller's
// transaction. The guarded UPDATE keeps stock_quantity from ever going
// negative, even under concurrent reservations of the same product row.
func ReserveStock(tx *gorm.DB, productID uint, qty int) error {
	res := tx.Model(&Product{}).
		Where("id = ? AND stock_quantity >= ?", productID, qty).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Either the product is gone or there is not enough stock left.
		var count int64
		if err := tx.Model(&Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrProductNotFound
		}
		return ErrOutOfStock
	}
	return nil
}

// ReleaseStock returns qty units to a product's stock inside the caller's
// transaction. Used when a cart removal hands a reservation back.
func ReleaseStock(tx *gorm.DB, productID uint, qty int) error {
	res := tx.Model(&Product{}).
		Where("id = ?", productID).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
