package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retail_system/internal/domain"
)

// saleWithStock creates a sale of qty units of prodA with an initial stock
// of 10 and returns the sale id.
func saleWithStock(t *testing.T, s *Service, status string, qty int) (saleID, storeID, prodA string) {
	t.Helper()
	storeID, prodA, _ = seedCatalog(t, s)
	require.NoError(t, s.SetQuantity(prodA, storeID, 10))
	sale, err := s.ProcessSale(storeID, "seller_1", "Maria", []CartLine{{ProductID: prodA, Quantity: qty}}, "", status)
	require.NoError(t, err)
	return sale.ID, storeID, prodA
}

func TestCancelRestoresStock(t *testing.T) {
	s := testService(t)
	saleID, storeID, prodA := saleWithStock(t, s, domain.StatusCompleted, 3)

	sale, err := s.UpdateSaleStatus(saleID, domain.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, sale.Status)

	// Back to the pre-sale quantity
	qty, err := s.GetQuantity(prodA, storeID)
	require.NoError(t, err)
	assert.Equal(t, 10, qty)
}

func TestCancelPendingOrderRestoresReservation(t *testing.T) {
	s := testService(t)
	saleID, storeID, prodA := saleWithStock(t, s, domain.StatusPending, 5)

	qty, err := s.GetQuantity(prodA, storeID)
	require.NoError(t, err)
	require.Equal(t, 5, qty) // Reserved at creation

	_, err = s.UpdateSaleStatus(saleID, domain.StatusCancelled)
	require.NoError(t, err)

	qty, err = s.GetQuantity(prodA, storeID)
	require.NoError(t, err)
	assert.Equal(t, 10, qty)
}

func TestCancelTwiceIsIdempotent(t *testing.T) {
	s := testService(t)
	saleID, storeID, prodA := saleWithStock(t, s, domain.StatusCompleted, 4)

	_, err := s.UpdateSaleStatus(saleID, domain.StatusCancelled)
	require.NoError(t, err)
	_, err = s.UpdateSaleStatus(saleID, domain.StatusCancelled)
	require.NoError(t, err)

	// Stock restored exactly once
	qty, err := s.GetQuantity(prodA, storeID)
	require.NoError(t, err)
	assert.Equal(t, 10, qty)
}

func TestPendingToCompletedHasNoStockEffect(t *testing.T) {
	s := testService(t)
	saleID, storeID, prodA := saleWithStock(t, s, domain.StatusPending, 2)

	_, err := s.UpdateSaleStatus(saleID, domain.StatusCompleted)
	require.NoError(t, err)

	// Stock was deducted at creation; fulfilment changes nothing
	qty, err := s.GetQuantity(prodA, storeID)
	require.NoError(t, err)
	assert.Equal(t, 8, qty)
}

func TestUncancelRedeductsStock(t *testing.T) {
	s := testService(t)
	saleID, storeID, prodA := saleWithStock(t, s, domain.StatusCompleted, 3)

	_, err := s.UpdateSaleStatus(saleID, domain.StatusCancelled)
	require.NoError(t, err)
	_, err = s.UpdateSaleStatus(saleID, domain.StatusCompleted)
	require.NoError(t, err)

	// Cancellation restored 3, un-cancel took them back
	qty, err := s.GetQuantity(prodA, storeID)
	require.NoError(t, err)
	assert.Equal(t, 7, qty)
}

func TestSameStatusTransitionIsNoOp(t *testing.T) {
	s := testService(t)
	saleID, storeID, prodA := saleWithStock(t, s, domain.StatusCompleted, 3)

	_, err := s.UpdateSaleStatus(saleID, domain.StatusCompleted)
	require.NoError(t, err)

	qty, err := s.GetQuantity(prodA, storeID)
	require.NoError(t, err)
	assert.Equal(t, 7, qty)
}

func TestUpdateStatusUnknownSale(t *testing.T) {
	s := testService(t)
	_, err := s.UpdateSaleStatus("ghost", domain.StatusCancelled)
	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "sale", nferr.Entity)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	s := testService(t)
	saleID, _, _ := saleWithStock(t, s, domain.StatusCompleted, 1)
	_, err := s.UpdateSaleStatus(saleID, "SHIPPED")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}
