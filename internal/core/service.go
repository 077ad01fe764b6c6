// Package core implements the inventory-and-sale consistency layer:
// the stock ledger, the sale processor, the sale status machine, entity
// CRUD with cascades and the read-only aggregation helpers. UI callers
// (POS terminal, client catalog, admin screens) talk to it through the
// HTTP layer; nothing in here depends on gin.
package core

import (
	"gorm.io/gorm"
)

// Service is the single entry point to the data layer. It is constructed
// once at process start and injected into every caller; there is no
// ambient global instance.
type Service struct {
	db       *gorm.DB
	readOnly bool // Set when running on the seed fallback store
}

// New builds a Service on top of an open gorm connection.
func New(db *gorm.DB) *Service {
	return &Service{db: db}
}

// NewReadOnly builds a Service whose mutating operations fail with
// StorageUnavailableError. Used when the primary store is unreachable
// after retries and the process falls back to seed data.
func NewReadOnly(db *gorm.DB) *Service {
	s := New(db)
	s.readOnly = true
	return s
}

// ReadOnly reports whether the service is running on the fallback store.
func (s *Service) ReadOnly() bool { return s.readOnly }

// guardWrite rejects mutations while in read-only fallback mode.
func (s *Service) guardWrite(op string) error {
	if s.readOnly {
		return &StorageUnavailableError{Op: op, Err: errReadOnly}
	}
	return nil
}
