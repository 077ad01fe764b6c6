package core

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"retail_system/internal/domain"
)

// testService opens a private in-memory database with the full schema.
func testService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Store{},
		&domain.Product{},
		&domain.Stock{},
		&domain.Sale{},
	))
	return New(db)
}

// seedCatalog inserts one store and two products and returns their ids.
func seedCatalog(t *testing.T, s *Service) (storeID string, prodA, prodB string) {
	t.Helper()
	store := domain.Store{Name: "Downtown", Location: "Main St 1"}
	require.NoError(t, s.CreateStore(&store))
	a := domain.Product{Name: "Chamomile", Category: domain.CategoryHerb, WeightUnit: "50g", Price: 15.00, Active: true}
	b := domain.Product{Name: "Green Clay", Category: domain.CategoryPowder, WeightUnit: "200g", Price: 22.50, Active: true}
	require.NoError(t, s.CreateProduct(&a))
	require.NoError(t, s.CreateProduct(&b))
	return store.ID, a.ID, b.ID
}
