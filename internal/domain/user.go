package domain

// User roles
const (
	RoleAdmin  = "ADMIN"  // Manages catalog, stores and staff
	RoleSeller = "SELLER" // Operates the POS terminal of one store
	RoleClient = "CLIENT" // Browses the catalog and places pickup orders
)

// ValidRole reports whether role is one of the known roles
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSeller, RoleClient:
		return true
	}
	return false
}

// User Model
type User struct {
	ID       string  `gorm:"primaryKey" json:"id"`                // Primary key (uuid)
	Username string  `gorm:"unique;not null" json:"username"`     // Unique login name
	Name     string  `gorm:"not null" json:"name"`                // Display name
	Role     string  `gorm:"not null;default:CLIENT" json:"role"` // Role: ADMIN, SELLER or CLIENT
	StoreID  *string `gorm:"index" json:"store_id,omitempty"`     // Assigned store, meaningful only for sellers
	Password string  `gorm:"not null" json:"-"`                   // Bcrypt hash, never serialized
}
