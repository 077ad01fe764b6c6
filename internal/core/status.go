package core

import (
	"gorm.io/gorm"

	"retail_system/internal/domain"
)

// UpdateSaleStatus moves a sale to newStatus and applies the compensating
// stock adjustment the transition requires:
//
//	into CANCELLED:   restore every item (+quantity)
//	out of CANCELLED: re-deduct every item (-quantity)
//	anything else:    no stock effect (stock was reserved at creation)
//
// The guard on the current status makes the operation idempotent: a sale
// already CANCELLED is never restored twice, and CANCELLED→CANCELLED is a
// no-op. Status write and deltas share one transaction.
func (s *Service) UpdateSaleStatus(saleID, newStatus string) (*domain.Sale, error) {
	if err := s.guardWrite("UpdateSaleStatus"); err != nil {
		return nil, err
	}
	if !domain.ValidStatus(newStatus) {
		return nil, &ValidationError{Reason: "unknown sale status " + newStatus}
	}

	sale, err := s.GetSale(saleID)
	if err != nil {
		return nil, err
	}

	// Per-item delta sign for this transition, 0 when stock is untouched.
	direction := 0
	switch {
	case sale.Status != domain.StatusCancelled && newStatus == domain.StatusCancelled:
		direction = +1 // Restore reserved/sold stock
	case sale.Status == domain.StatusCancelled && newStatus != domain.StatusCancelled:
		direction = -1 // Un-cancel: take the stock back
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if direction != 0 {
			for _, item := range sale.Items {
				if err := adjustQuantityTx(tx, item.ProductID, sale.StoreID, direction*item.Quantity); err != nil {
					return err
				}
			}
		}
		return tx.Model(&domain.Sale{}).Where("id = ?", sale.ID).Update("status", newStatus).Error
	})
	if err != nil {
		return nil, err
	}
	sale.Status = newStatus
	return sale, nil
}
