package domain

// Product categories
const (
	CategoryHerb      = "HERB"      // Loose herbs sold by weight
	CategoryPill      = "PILL"      // Capsules and supplements
	CategoryPowder    = "POWDER"    // Powders and cosmetics
	CategoryAccessory = "ACCESSORY" // Non-consumable accessories
)

// ValidCategory reports whether category is one of the known categories
func ValidCategory(category string) bool {
	switch category {
	case CategoryHerb, CategoryPill, CategoryPowder, CategoryAccessory:
		return true
	}
	return false
}

// Product Model
type Product struct {
	ID          string  `gorm:"primaryKey" json:"id"`               // Primary key (uuid)
	Name        string  `gorm:"not null;index" json:"name"`         // Product name
	Category    string  `gorm:"not null" json:"category"`           // Category: HERB, PILL, POWDER, ACCESSORY
	WeightUnit  string  `gorm:"column:weight_unit" json:"weight_unit"` // Unit label, e.g. "50g", "60 caps"
	Price       float64 `gorm:"not null;default:0" json:"price"`    // Unit price, non-negative
	Description string  `json:"description"`                        // Free-form description
	Active      bool    `gorm:"not null;default:true" json:"active"` // Hidden from the client catalog when false
	ImageURL    string  `gorm:"column:image_url" json:"image_url,omitempty"` // Optional image reference
}
