package db

import (
	"time" // Fixed delay between connection attempts

	"github.com/sirupsen/logrus" // Structured logging
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/driver/sqlite"      // In-memory fallback store
	"gorm.io/gorm"               // GORM ORM library
)

const (
	connectAttempts = 3               // Bounded retry before giving up on MySQL
	connectDelay    = 2 * time.Second // Fixed delay between attempts
)

// Connect opens the MySQL backend, retrying a bounded number of times
// with a fixed delay before surfacing a hard failure.
func Connect(dsn string) (*gorm.DB, error) {
	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err == nil {
			return db, nil // Connected
		}
		lastErr = err
		logrus.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Database connection failed")
		if attempt < connectAttempts {
			time.Sleep(connectDelay) // Wait before retrying
		}
	}
	return nil, lastErr
}

// OpenFallback opens an in-memory sqlite store, migrates it and loads the
// seed dataset. Used as the read-only fallback when MySQL is unreachable
// after all retries.
func OpenFallback() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	if err := Seed(db); err != nil {
		return nil, err
	}
	return db, nil
}
