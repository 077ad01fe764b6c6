package core

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"retail_system/internal/domain"
)

// --- PRODUCTS ---

// ListProducts returns the full catalog snapshot.
func (s *Service) ListProducts() ([]domain.Product, error) {
	var products []domain.Product
	err := s.db.Find(&products).Error
	return products, err
}

func validateProduct(p *domain.Product) error {
	if p.Name == "" {
		return &ValidationError{Reason: "product name is required"}
	}
	if !domain.ValidCategory(p.Category) {
		return &ValidationError{Reason: "unknown product category " + p.Category}
	}
	if p.Price < 0 {
		return &ValidationError{Reason: "product price must not be negative"}
	}
	return nil
}

// CreateProduct validates and persists a new product, assigning an id when
// the caller did not provide one.
func (s *Service) CreateProduct(p *domain.Product) error {
	if err := s.guardWrite("CreateProduct"); err != nil {
		return err
	}
	if err := validateProduct(p); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return s.db.Create(p).Error
}

// UpdateProduct replaces an existing product's fields. Existing sale items
// keep their name/price snapshots untouched.
func (s *Service) UpdateProduct(p *domain.Product) error {
	if err := s.guardWrite("UpdateProduct"); err != nil {
		return err
	}
	if err := validateProduct(p); err != nil {
		return err
	}
	var existing domain.Product
	if err := s.db.First(&existing, "id = ?", p.ID).Error; err != nil {
		return notFound(err, "product", p.ID)
	}
	// Save with Select("*") so zero values (Active=false, Price=0) persist.
	return s.db.Model(&existing).Select("*").Omit("id").Updates(p).Error
}

// DeleteProduct removes a product and cascades over its stock rows in one
// transaction, so no orphaned stock row can survive a partial failure.
func (s *Service) DeleteProduct(id string) error {
	if err := s.guardWrite("DeleteProduct"); err != nil {
		return err
	}
	var product domain.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		return notFound(err, "product", id)
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&domain.Stock{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
}

// --- STORES ---

// ListStores returns the full store snapshot.
func (s *Service) ListStores() ([]domain.Store, error) {
	var stores []domain.Store
	err := s.db.Find(&stores).Error
	return stores, err
}

// CreateStore validates and persists a new store.
func (s *Service) CreateStore(store *domain.Store) error {
	if err := s.guardWrite("CreateStore"); err != nil {
		return err
	}
	if store.Name == "" {
		return &ValidationError{Reason: "store name is required"}
	}
	if store.ID == "" {
		store.ID = uuid.NewString()
	}
	return s.db.Create(store).Error
}

// DeleteStore removes a store, its stock rows, and unlinks any seller
// assigned to it (the user record itself is preserved), all in one
// transaction.
func (s *Service) DeleteStore(id string) error {
	if err := s.guardWrite("DeleteStore"); err != nil {
		return err
	}
	var store domain.Store
	if err := s.db.First(&store, "id = ?", id).Error; err != nil {
		return notFound(err, "store", id)
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("store_id = ?", id).Delete(&domain.Stock{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.User{}).Where("store_id = ?", id).Update("store_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&store).Error
	})
}

// --- USERS ---

// ListUsers returns the full user snapshot. Password hashes are excluded
// from serialization at the model level.
func (s *Service) ListUsers() ([]domain.User, error) {
	var users []domain.User
	err := s.db.Find(&users).Error
	return users, err
}

// CreateUser validates a new account, hashes its password and persists it.
// Sellers must carry a store assignment.
func (s *Service) CreateUser(u *domain.User, password string) error {
	if err := s.guardWrite("CreateUser"); err != nil {
		return err
	}
	if u.Username == "" || u.Name == "" {
		return &ValidationError{Reason: "username and name are required"}
	}
	if !domain.ValidRole(u.Role) {
		return &ValidationError{Reason: "unknown role " + u.Role}
	}
	if u.Role == domain.RoleSeller && (u.StoreID == nil || *u.StoreID == "") {
		return &ValidationError{Reason: "a seller must be assigned to a store"}
	}
	if password == "" {
		return &ValidationError{Reason: "password is required"}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return s.db.Create(u).Error
}

// DeleteUser removes an account. Protection of the seed admin account is
// the caller layer's responsibility.
func (s *Service) DeleteUser(id string) error {
	if err := s.guardWrite("DeleteUser"); err != nil {
		return err
	}
	var user domain.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return notFound(err, "user", id)
	}
	return s.db.Delete(&user).Error
}

// Authenticate looks a user up by username and verifies the password
// against its bcrypt hash. Returns NotFoundError for both an unknown user
// and a wrong password so callers cannot enumerate usernames.
func (s *Service) Authenticate(username, password string) (*domain.User, error) {
	var user domain.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, notFound(err, "user", username)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, &NotFoundError{Entity: "user", ID: username}
	}
	return &user, nil
}

// --- SNAPSHOT READS ---

// ListStock returns every stock row.
func (s *Service) ListStock() ([]domain.Stock, error) {
	var stock []domain.Stock
	err := s.db.Find(&stock).Error
	return stock, err
}

// GetSale returns a single sale by id.
func (s *Service) GetSale(id string) (*domain.Sale, error) {
	var sale domain.Sale
	if err := s.db.First(&sale, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "sale", id)
	}
	return &sale, nil
}

// ListSales returns every sale, newest first.
func (s *Service) ListSales() ([]domain.Sale, error) {
	var sales []domain.Sale
	err := s.db.Order("timestamp desc").Find(&sales).Error
	return sales, err
}

// ListSalesByStore returns a store's sales, newest first.
func (s *Service) ListSalesByStore(storeID string) ([]domain.Sale, error) {
	var sales []domain.Sale
	err := s.db.Where("store_id = ?", storeID).Order("timestamp desc").Find(&sales).Error
	return sales, err
}
