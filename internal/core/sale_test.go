package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retail_system/internal/domain"
)

func TestProcessSaleDeductsStockAndComputesTotal(t *testing.T) {
	s := testService(t)
	storeID, prodA, _ := seedCatalog(t, s)
	require.NoError(t, s.SetQuantity(prodA, storeID, 10))

	sale, err := s.ProcessSale(storeID, "seller_1", "Maria", []CartLine{{ProductID: prodA, Quantity: 3}}, "", domain.StatusCompleted)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCompleted, sale.Status)
	assert.NotEmpty(t, sale.ID)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, "Chamomile", sale.Items[0].ProductName)
	assert.Equal(t, 15.00, sale.Items[0].UnitPrice)
	assert.Equal(t, 3*15.00, sale.Items[0].Total)
	assert.Equal(t, 3*15.00, sale.TotalAmount)

	qty, err := s.GetQuantity(prodA, storeID)
	require.NoError(t, err)
	assert.Equal(t, 7, qty)
}

func TestProcessSaleDefaultsToCompleted(t *testing.T) {
	s := testService(t)
	storeID, prodA, _ := seedCatalog(t, s)
	require.NoError(t, s.SetQuantity(prodA, storeID, 5))

	sale, err := s.ProcessSale(storeID, "seller_1", "Maria", []CartLine{{ProductID: prodA, Quantity: 1}}, "", "")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, sale.Status)
}

func TestProcessSalePendingReservesStockImmediately(t *testing.T) {
	s := testService(t)
	storeID, prodA, _ := seedCatalog(t, s)
	require.NoError(t, s.SetQuantity(prodA, storeID, 10))

	// A PENDING order already holds its units, it is not merely a request
	sale, err := s.ProcessSale(storeID, "client_1", "Online Catalog", []CartLine{{ProductID: prodA, Quantity: 5}}, "Carlos", domain.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, sale.Status)

	qty, err := s.GetQuantity(prodA, storeID)
	require.NoError(t, err)
	assert.Equal(t, 5, qty)
}

func TestProcessSaleRejectsEmptyCart(t *testing.T) {
	s := testService(t)
	storeID, _, _ := seedCatalog(t, s)
	_, err := s.ProcessSale(storeID, "x", "X", nil, "", domain.StatusCompleted)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestProcessSaleRejectsNonPositiveQuantity(t *testing.T) {
	s := testService(t)
	storeID, prodA, _ := seedCatalog(t, s)
	_, err := s.ProcessSale(storeID, "x", "X", []CartLine{{ProductID: prodA, Quantity: 0}}, "", domain.StatusCompleted)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestProcessSaleRejectsUnknownStore(t *testing.T) {
	s := testService(t)
	_, prodA, _ := seedCatalog(t, s)
	_, err := s.ProcessSale("ghost", "x", "X", []CartLine{{ProductID: prodA, Quantity: 1}}, "", domain.StatusCompleted)
	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "store", nferr.Entity)
}

func TestProcessSaleRejectsUnknownProduct(t *testing.T) {
	s := testService(t)
	storeID, _, _ := seedCatalog(t, s)
	_, err := s.ProcessSale(storeID, "x", "X", []CartLine{{ProductID: "ghost", Quantity: 1}}, "", domain.StatusCompleted)
	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "product", nferr.Entity)
}

func TestProcessSaleInsufficientStock(t *testing.T) {
	s := testService(t)
	storeID, prodA, _ := seedCatalog(t, s)
	require.NoError(t, s.SetQuantity(prodA, storeID, 2))

	_, err := s.ProcessSale(storeID, "x", "X", []CartLine{{ProductID: prodA, Quantity: 3}}, "", domain.StatusCompleted)
	var iserr *InsufficientStockError
	require.ErrorAs(t, err, &iserr)
	assert.Equal(t, 3, iserr.Requested)
	assert.Equal(t, 2, iserr.Available)

	// Nothing was deducted and no sale was persisted
	qty, err := s.GetQuantity(prodA, storeID)
	require.NoError(t, err)
	assert.Equal(t, 2, qty)
	sales, err := s.ListSales()
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestProcessSaleDuplicateLinesCountInAggregate(t *testing.T) {
	s := testService(t)
	storeID, prodA, _ := seedCatalog(t, s)
	require.NoError(t, s.SetQuantity(prodA, storeID, 10))

	// Two lines of 6 ask for 12 in total; neither line alone exceeds the
	// stock of 10, but together they must be rejected
	_, err := s.ProcessSale(storeID, "x", "X", []CartLine{
		{ProductID: prodA, Quantity: 6},
		{ProductID: prodA, Quantity: 6},
	}, "", domain.StatusCompleted)
	var iserr *InsufficientStockError
	require.ErrorAs(t, err, &iserr)
	assert.Equal(t, 6, iserr.Requested)
	assert.Equal(t, 4, iserr.Available) // 10 minus the first line

	// Nothing was deducted and no sale was persisted
	qty, err := s.GetQuantity(prodA, storeID)
	require.NoError(t, err)
	assert.Equal(t, 10, qty)
	sales, err := s.ListSales()
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestProcessSaleDuplicateLinesWithinStockSucceed(t *testing.T) {
	s := testService(t)
	storeID, prodA, _ := seedCatalog(t, s)
	require.NoError(t, s.SetQuantity(prodA, storeID, 10))

	// 4 + 6 fits exactly; both deductions apply
	sale, err := s.ProcessSale(storeID, "x", "X", []CartLine{
		{ProductID: prodA, Quantity: 4},
		{ProductID: prodA, Quantity: 6},
	}, "", domain.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, 10*15.00, sale.TotalAmount)

	qty, err := s.GetQuantity(prodA, storeID)
	require.NoError(t, err)
	assert.Equal(t, 0, qty)
}

func TestProcessSaleSnapshotsSurviveProductEdits(t *testing.T) {
	s := testService(t)
	storeID, prodA, _ := seedCatalog(t, s)
	require.NoError(t, s.SetQuantity(prodA, storeID, 10))

	sale, err := s.ProcessSale(storeID, "x", "X", []CartLine{{ProductID: prodA, Quantity: 2}}, "", domain.StatusCompleted)
	require.NoError(t, err)

	// Rename the product and change its price after the sale
	require.NoError(t, s.UpdateProduct(&domain.Product{
		ID: prodA, Name: "Renamed", Category: domain.CategoryHerb, Price: 99.99, Active: true,
	}))

	sales, err := s.ListSales()
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, sale.ID, sales[0].ID)
	assert.Equal(t, "Chamomile", sales[0].Items[0].ProductName)
	assert.Equal(t, 15.00, sales[0].Items[0].UnitPrice)
}

func TestProcessSaleMultiLineTotals(t *testing.T) {
	s := testService(t)
	storeID, prodA, prodB := seedCatalog(t, s)
	require.NoError(t, s.SetQuantity(prodA, storeID, 10))
	require.NoError(t, s.SetQuantity(prodB, storeID, 10))

	sale, err := s.ProcessSale(storeID, "x", "X", []CartLine{
		{ProductID: prodA, Quantity: 2},
		{ProductID: prodB, Quantity: 4},
	}, "Ana", domain.StatusCompleted)
	require.NoError(t, err)

	// Sum of item totals always equals totalAmount
	sum := 0.0
	for _, item := range sale.Items {
		sum += item.Total
	}
	assert.Equal(t, sum, sale.TotalAmount)
	assert.Equal(t, 2*15.00+4*22.50, sale.TotalAmount)
}
