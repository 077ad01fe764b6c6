package core

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"retail_system/internal/domain"
)

// CartLine is a caller-supplied request line: which product, how many.
// Name and price snapshots are taken from the catalog by ProcessSale, not
// trusted from the caller.
type CartLine struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// ProcessSale creates a sale from a cart and reserves stock for it.
//
// Stock is deducted at creation time regardless of status: a PENDING sale
// already holds its units, it is not merely a request. Availability is
// checked per line first and the whole operation (sale insert plus one
// deduction per line) runs in a single transaction, so a partial failure
// can never leave stock decremented without a matching sale record.
func (s *Service) ProcessSale(storeID, sellerID, sellerName string, lines []CartLine, customerName, initialStatus string) (*domain.Sale, error) {
	if err := s.guardWrite("ProcessSale"); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, &ValidationError{Reason: "cart is empty"}
	}
	if initialStatus == "" {
		initialStatus = domain.StatusCompleted // Direct POS sales complete immediately
	}
	if !domain.ValidStatus(initialStatus) {
		return nil, &ValidationError{Reason: "unknown sale status " + initialStatus}
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, &ValidationError{Reason: "item quantity must be positive"}
		}
	}

	var store domain.Store
	if err := s.db.First(&store, "id = ?", storeID).Error; err != nil {
		return nil, notFound(err, "store", storeID)
	}

	// Build snapshot items from the current catalog and check availability.
	// The check runs against a remaining balance per product so duplicate
	// cart lines for the same product are counted in aggregate.
	items := make([]domain.SaleItem, 0, len(lines))
	remaining := make(map[string]int, len(lines))
	total := 0.0
	for _, line := range lines {
		var product domain.Product
		if err := s.db.First(&product, "id = ?", line.ProductID).Error; err != nil {
			return nil, notFound(err, "product", line.ProductID)
		}
		available, ok := remaining[line.ProductID]
		if !ok {
			var err error
			available, err = s.GetQuantity(line.ProductID, storeID)
			if err != nil {
				return nil, err
			}
		}
		if available < line.Quantity {
			return nil, &InsufficientStockError{
				ProductID: line.ProductID,
				StoreID:   storeID,
				Requested: line.Quantity,
				Available: available,
			}
		}
		remaining[line.ProductID] = available - line.Quantity
		item := domain.SaleItem{
			ProductID:   product.ID,
			ProductName: product.Name, // Snapshot, survives later renames
			Quantity:    line.Quantity,
			UnitPrice:   product.Price, // Snapshot, survives later price edits
			Total:       float64(line.Quantity) * product.Price,
		}
		total += item.Total
		items = append(items, item)
	}

	sale := &domain.Sale{
		ID:           uuid.NewString(),
		StoreID:      storeID,
		SellerID:     sellerID,
		SellerName:   sellerName,
		Items:        items,
		TotalAmount:  total,
		CustomerName: customerName,
		Status:       initialStatus,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sale).Error; err != nil {
			return err
		}
		for _, item := range items {
			if err := adjustQuantityTx(tx, item.ProductID, storeID, -item.Quantity); err != nil {
				return err // Rolls back the sale and every prior deduction
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}
