package core

import (
	"sort"

	"retail_system/internal/domain"
)

// Read-only derived views consumed by dashboards and the client catalog.
// All of them recompute from a fresh snapshot on every call; none mutate
// state, and their only failure modes are storage errors.

// stockMap loads the full ledger as a (product, store) → quantity map.
func (s *Service) stockMap() (map[[2]string]int, error) {
	rows, err := s.ListStock()
	if err != nil {
		return nil, err
	}
	m := make(map[[2]string]int, len(rows))
	for _, r := range rows {
		m[[2]string{r.ProductID, r.StoreID}] = r.Quantity
	}
	return m, nil
}

// MaxAvailableAcrossStores returns the largest quantity any single store
// holds for a product. Used to bound a client cart so no single pickup
// store needs to satisfy more than it has. Never below 0.
func (s *Service) MaxAvailableAcrossStores(productID string) (int, error) {
	stores, err := s.ListStores()
	if err != nil {
		return 0, err
	}
	stock, err := s.stockMap()
	if err != nil {
		return 0, err
	}
	max := 0
	for _, store := range stores {
		if qty := stock[[2]string{productID, store.ID}]; qty > max {
			max = qty
		}
	}
	return max, nil
}

// StoresSatisfyingCart returns the stores able to fulfil every cart line
// from their own stock. An empty cart is satisfied by every store.
func (s *Service) StoresSatisfyingCart(lines []CartLine) ([]domain.Store, error) {
	stores, err := s.ListStores()
	if err != nil {
		return nil, err
	}
	stock, err := s.stockMap()
	if err != nil {
		return nil, err
	}
	valid := make([]domain.Store, 0, len(stores))
	for _, store := range stores {
		ok := true
		for _, line := range lines {
			if stock[[2]string{line.ProductID, store.ID}] < line.Quantity {
				ok = false
				break
			}
		}
		if ok {
			valid = append(valid, store)
		}
	}
	return valid, nil
}

// StockAlert is one (product, store) pair sitting below the alert
// threshold. Pairs with no ledger row count as 0 and are included.
type StockAlert struct {
	Product  domain.Product `json:"product"`
	Store    domain.Store   `json:"store"`
	Quantity int            `json:"quantity"`
}

// LowStockAlerts returns every (product, store) pair whose quantity is
// below threshold, over the full product × store cross product.
func (s *Service) LowStockAlerts(threshold int) ([]StockAlert, error) {
	products, err := s.ListProducts()
	if err != nil {
		return nil, err
	}
	stores, err := s.ListStores()
	if err != nil {
		return nil, err
	}
	stock, err := s.stockMap()
	if err != nil {
		return nil, err
	}
	var alerts []StockAlert
	for _, p := range products {
		for _, st := range stores {
			qty := stock[[2]string{p.ID, st.ID}]
			if qty < threshold {
				alerts = append(alerts, StockAlert{Product: p, Store: st, Quantity: qty})
			}
		}
	}
	return alerts, nil
}

// StoreRevenue is the revenue aggregate for one store.
type StoreRevenue struct {
	StoreID   string  `json:"store_id"`
	StoreName string  `json:"store_name"`
	Revenue   float64 `json:"revenue"`
}

// RevenueByStore sums sale totals per store over all persisted sales.
func (s *Service) RevenueByStore() ([]StoreRevenue, error) {
	stores, err := s.ListStores()
	if err != nil {
		return nil, err
	}
	sales, err := s.ListSales()
	if err != nil {
		return nil, err
	}
	byStore := make(map[string]float64, len(stores))
	for _, sale := range sales {
		byStore[sale.StoreID] += sale.TotalAmount
	}
	out := make([]StoreRevenue, 0, len(stores))
	for _, store := range stores {
		out = append(out, StoreRevenue{StoreID: store.ID, StoreName: store.Name, Revenue: byStore[store.ID]})
	}
	return out, nil
}

// ProductSales is the units-sold aggregate for one product name snapshot.
type ProductSales struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// TopProductsByQuantitySold folds item quantities over all sales and
// returns the top products, most units first. Keyed by the denormalized
// productName snapshot, as the sales history is.
func (s *Service) TopProductsByQuantitySold(limit int) ([]ProductSales, error) {
	sales, err := s.ListSales()
	if err != nil {
		return nil, err
	}
	byName := make(map[string]int)
	for _, sale := range sales {
		for _, item := range sale.Items {
			byName[item.ProductName] += item.Quantity
		}
	}
	out := make([]ProductSales, 0, len(byName))
	for name, qty := range byName {
		out = append(out, ProductSales{ProductName: name, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		return out[i].ProductName < out[j].ProductName
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
