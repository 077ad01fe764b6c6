package domain

// Sale statuses
const (
	StatusPending   = "PENDING"   // Requested by a client, awaiting pickup
	StatusCompleted = "COMPLETED" // Delivered / finalized
	StatusCancelled = "CANCELLED" // Cancelled, stock restored
)

// ValidStatus reports whether status is one of the known sale statuses
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// SaleItem is a line of a sale. ProductName and UnitPrice are snapshots
// taken at sale time; later product edits do not touch them.
type SaleItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"` // Quantity × UnitPrice
}

// Sale Model. Items and TotalAmount are immutable after creation;
// only Status changes afterwards.
type Sale struct {
	ID           string     `gorm:"primaryKey" json:"id"`                                 // Primary key (uuid)
	StoreID      string     `gorm:"index;not null" json:"store_id"`                       // Store the sale belongs to
	SellerID     string     `gorm:"column:seller_id" json:"seller_id"`                    // Acting staff member, or a synthetic identity
	SellerName   string     `gorm:"column:seller_name" json:"seller_name"`                // Denormalized seller display name
	Timestamp    int64      `gorm:"autoCreateTime:milli" json:"timestamp"`                // Creation instant in milliseconds
	Items        []SaleItem `gorm:"serializer:json;column:items_json" json:"items"`       // Line items, stored as a JSON blob
	TotalAmount  float64    `gorm:"column:total_amount" json:"total_amount"`              // Sum of item totals, computed once
	CustomerName string     `gorm:"column:customer_name" json:"customer_name,omitempty"`  // Optional walk-in / pickup customer
	Status       string     `gorm:"not null;index" json:"status"`                         // PENDING, COMPLETED or CANCELLED
}
