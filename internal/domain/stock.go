package domain

// Stock Model: one row per (product, store) pair.
// Quantity may go negative; a backorder is tolerated, not an error.
type Stock struct {
	ProductID string `gorm:"primaryKey" json:"product_id"` // Composite primary key part
	StoreID   string `gorm:"primaryKey" json:"store_id"`   // Composite primary key part
	Quantity  int    `gorm:"not null;default:0" json:"quantity"`
}
