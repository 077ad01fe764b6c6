package db

import (
	"retail_system/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// strPtr returns a pointer to s, for optional string columns
func strPtr(s string) *string { return &s }

// seedStores is the initial store set
func seedStores() []domain.Store {
	return []domain.Store{
		{ID: "store_1", Name: "Matriz - Centro", Location: "Rua das Ervas, 123"},
		{ID: "store_2", Name: "Filial - Shopping", Location: "Av. Comercial, 500"},
	}
}

// seedUsers is the initial account set. Passwords are hashed at seed time.
func seedUsers() []domain.User {
	return []domain.User{
		{ID: "admin_1", Username: "admin", Name: "João Admin", Role: domain.RoleAdmin, Password: "admin"},
		{ID: "seller_1", Username: "vendedor", Name: "Maria Vendedora", Role: domain.RoleSeller, StoreID: strPtr("store_1"), Password: "123"},
		{ID: "client_1", Username: "cliente", Name: "Carlos Cliente", Role: domain.RoleClient, Password: "123"},
	}
}

// seedProducts is the initial catalog
func seedProducts() []domain.Product {
	return []domain.Product{
		{ID: "prod_1", Name: "Camomila Premium", Category: domain.CategoryHerb, WeightUnit: "50g", Price: 15.00, Description: "Camomila selecionada para chás relaxantes.", Active: true},
		{ID: "prod_2", Name: "Ginkgo Biloba", Category: domain.CategoryPill, WeightUnit: "60 caps", Price: 45.90, Description: "Suplemento natural para memória e circulação.", Active: true},
		{ID: "prod_3", Name: "Argila Verde", Category: domain.CategoryPowder, WeightUnit: "200g", Price: 22.50, Description: "Argila pura para máscaras faciais detox.", Active: true},
		{ID: "prod_4", Name: "Hortelã Seca", Category: domain.CategoryHerb, WeightUnit: "30g", Price: 8.00, Description: "Folhas de hortelã secas naturalmente.", Active: true},
	}
}

// seedStock is the initial per-store stock
func seedStock() []domain.Stock {
	return []domain.Stock{
		{ProductID: "prod_1", StoreID: "store_1", Quantity: 50},
		{ProductID: "prod_1", StoreID: "store_2", Quantity: 20},
		{ProductID: "prod_2", StoreID: "store_1", Quantity: 15},
		{ProductID: "prod_3", StoreID: "store_1", Quantity: 10},
		{ProductID: "prod_3", StoreID: "store_2", Quantity: 5},
		{ProductID: "prod_4", StoreID: "store_2", Quantity: 100},
	}
}

// Seed loads the initial dataset if the user table is empty.
// Safe to call on every startup.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // Already seeded
	}
	logrus.Info("Seeding database...")
	return db.Transaction(func(tx *gorm.DB) error {
		users := seedUsers()
		for i := range users {
			// Hash the seed password before storing
			hash, err := bcrypt.GenerateFromPassword([]byte(users[i].Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			users[i].Password = string(hash)
			if err := tx.Create(&users[i]).Error; err != nil {
				return err
			}
		}
		for _, s := range seedStores() {
			if err := tx.Create(&s).Error; err != nil {
				return err
			}
		}
		for _, p := range seedProducts() {
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
		}
		for _, st := range seedStock() {
			if err := tx.Create(&st).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
