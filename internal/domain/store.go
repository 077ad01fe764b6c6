package domain

// Store Model
type Store struct {
	ID       string `gorm:"primaryKey" json:"id"`        // Primary key (uuid)
	Name     string `gorm:"not null" json:"name"`        // Store name
	Location string `gorm:"not null" json:"location"`    // Street address / location string
}
