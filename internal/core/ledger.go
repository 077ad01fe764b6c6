package core

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"retail_system/internal/domain"
)

// GetQuantity returns the current quantity for a (product, store) pair.
// A pair with no row is implicitly 0.
func (s *Service) GetQuantity(productID, storeID string) (int, error) {
	var row domain.Stock
	err := s.db.Where("product_id = ? AND store_id = ?", productID, storeID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return row.Quantity, nil
}

// SetQuantity sets the absolute quantity for a pair as a single upsert.
// The sign is not validated; negative quantities model backorders.
func (s *Service) SetQuantity(productID, storeID string, quantity int) error {
	if err := s.guardWrite("SetQuantity"); err != nil {
		return err
	}
	return setQuantityTx(s.db, productID, storeID, quantity)
}

// AdjustQuantity applies a relative delta to a pair. Negative deltas
// deduct (sale creation), positive deltas restore (cancellation).
func (s *Service) AdjustQuantity(productID, storeID string, delta int) error {
	if err := s.guardWrite("AdjustQuantity"); err != nil {
		return err
	}
	return adjustQuantityTx(s.db, productID, storeID, delta)
}

// setQuantityTx performs the absolute upsert on the given handle so it can
// run inside a caller's transaction.
func setQuantityTx(tx *gorm.DB, productID, storeID string, quantity int) error {
	row := domain.Stock{ProductID: productID, StoreID: storeID, Quantity: quantity}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "store_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"quantity": quantity}),
	}).Create(&row).Error
}

// adjustQuantityTx applies a relative delta as one atomic upsert: an absent
// row starts from the implicit 0, an existing row is updated in place with
// a relational expression so no read-modify-write window exists.
func adjustQuantityTx(tx *gorm.DB, productID, storeID string, delta int) error {
	row := domain.Stock{ProductID: productID, StoreID: storeID, Quantity: delta}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "store_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"quantity": gorm.Expr("quantity + ?", delta)}),
	}).Create(&row).Error
}
