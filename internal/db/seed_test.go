package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"retail_system/internal/domain"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func TestSeedLoadsInitialDataset(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Seed(db))

	var users []domain.User
	require.NoError(t, db.Find(&users).Error)
	assert.Len(t, users, 3)

	// Seed passwords are stored hashed, never plaintext
	var admin domain.User
	require.NoError(t, db.First(&admin, "username = ?", "admin").Error)
	assert.NotEqual(t, "admin", admin.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin")))

	var storeCount, productCount, stockCount int64
	require.NoError(t, db.Model(&domain.Store{}).Count(&storeCount).Error)
	require.NoError(t, db.Model(&domain.Product{}).Count(&productCount).Error)
	require.NoError(t, db.Model(&domain.Stock{}).Count(&stockCount).Error)
	assert.EqualValues(t, 2, storeCount)
	assert.EqualValues(t, 4, productCount)
	assert.EqualValues(t, 6, stockCount)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db)) // No duplicate rows on a second run

	var userCount int64
	require.NoError(t, db.Model(&domain.User{}).Count(&userCount).Error)
	assert.EqualValues(t, 3, userCount)
}
