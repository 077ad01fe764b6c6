package core

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// NotFoundError reports a missing referenced entity.
type NotFoundError struct {
	Entity string // product, store, sale, user
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

// ValidationError reports a rejected input: empty cart, non-positive
// quantity, missing required fields, unknown enum values.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

// InsufficientStockError reports that a sale asked for more units than a
// store holds. The ledger itself still tolerates negative quantities for
// direct stock edits; only sale processing enforces availability.
type InsufficientStockError struct {
	ProductID string
	StoreID   string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %q at store %q: requested %d, available %d",
		e.ProductID, e.StoreID, e.Requested, e.Available)
}

// StorageUnavailableError reports that the backing store is unreachable or
// that the service is running on the read-only seed fallback.
type StorageUnavailableError struct {
	Op  string
	Err error
}

func (e *StorageUnavailableError) Error() string {
	return "storage unavailable during " + e.Op + ": " + e.Err.Error()
}

func (e *StorageUnavailableError) Unwrap() error { return e.Err }

// errReadOnly is the cause carried by StorageUnavailableError while the
// service runs against the seed fallback.
var errReadOnly = errors.New("running in read-only fallback mode")

// notFound translates gorm's record-not-found into the core taxonomy so it
// never leaks to callers.
func notFound(err error, entity, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return err
}
