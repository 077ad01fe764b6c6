package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"retail_system/internal/core"
	"retail_system/internal/domain"
)

// testCore opens a private in-memory database with the full schema.
func testCore(t *testing.T) *core.Service {
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
	return core.New(db)
}

// saleFixture seeds two stores, stocks a product at the first and sells
// 3 units there, returning the pieces the tests need.
func saleFixture(t *testing.T, svc *core.Service) (saleID, store1, store2, prodA string) {
	t.Helper()
	st1 := domain.Store{Name: "Downtown", Location: "Main St 1"}
	st2 := domain.Store{Name: "Mall", Location: "Commerce Ave 500"}
	require.NoError(t, svc.CreateStore(&st1))
	require.NoError(t, svc.CreateStore(&st2))
	p := domain.Product{Name: "Chamomile", Category: domain.CategoryHerb, Price: 15.00, Active: true}
	require.NoError(t, svc.CreateProduct(&p))
	require.NoError(t, svc.SetQuantity(p.ID, st1.ID, 10))
	sale, err := svc.ProcessSale(st1.ID, "seller_1", "Maria", []core.CartLine{{ProductID: p.ID, Quantity: 3}}, "", domain.StatusCompleted)
	require.NoError(t, err)
	return sale.ID, st1.ID, st2.ID, p.ID
}

// updateStatus drives UpdateSaleStatusHandler directly with the given
// acting user, the way the route group would after RequireRole.
func updateStatus(t *testing.T, svc *core.Service, user *domain.User, saleID, status string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("currentUser", user)
	c.Params = gin.Params{{Key: "id", Value: saleID}}
	req := httptest.NewRequest(http.MethodPut, "/pos/sales/"+saleID+"/status", strings.NewReader(`{"status":"`+status+`"}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	// Cache invalidation failures are ignored by the handler, so an
	// unreachable client is enough here
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	UpdateSaleStatusHandler(svc, rdb)(c)
	return w
}

func TestUpdateSaleStatusSellerOtherStoreForbidden(t *testing.T) {
	svc := testCore(t)
	saleID, store1, store2, prodA := saleFixture(t, svc)

	outsider := &domain.User{ID: "seller_2", Name: "Ana", Role: domain.RoleSeller, StoreID: &store2}
	w := updateStatus(t, svc, outsider, saleID, domain.StatusCancelled)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The sale and its stock are untouched
	sale, err := svc.GetSale(saleID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, sale.Status)
	qty, err := svc.GetQuantity(prodA, store1)
	require.NoError(t, err)
	assert.Equal(t, 7, qty)
}

func TestUpdateSaleStatusSellerOwnStoreAllowed(t *testing.T) {
	svc := testCore(t)
	saleID, store1, _, prodA := saleFixture(t, svc)

	seller := &domain.User{ID: "seller_1", Name: "Maria", Role: domain.RoleSeller, StoreID: &store1}
	w := updateStatus(t, svc, seller, saleID, domain.StatusCancelled)
	assert.Equal(t, http.StatusOK, w.Code)

	sale, err := svc.GetSale(saleID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, sale.Status)
	qty, err := svc.GetQuantity(prodA, store1)
	require.NoError(t, err)
	assert.Equal(t, 10, qty) // Restored by the cancellation
}

func TestUpdateSaleStatusAdminAnyStoreAllowed(t *testing.T) {
	svc := testCore(t)
	saleID, _, _, _ := saleFixture(t, svc)

	admin := &domain.User{ID: "admin_1", Name: "João", Role: domain.RoleAdmin}
	w := updateStatus(t, svc, admin, saleID, domain.StatusCancelled)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateSaleStatusSellerUnassignedForbidden(t *testing.T) {
	svc := testCore(t)
	saleID, _, _, _ := saleFixture(t, svc)

	// A seller whose store was deleted has no store reference at all
	unassigned := &domain.User{ID: "seller_3", Name: "Rui", Role: domain.RoleSeller}
	w := updateStatus(t, svc, unassigned, saleID, domain.StatusCancelled)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
