package api

import (
	"context"                       // Context for Redis operations
	"net/http"                      // HTTP status codes
	"retail_system/internal/core"   // Core service
	"retail_system/internal/domain" // Importing domain models
	"retail_system/internal/utils"  // Utility functions
	"time"                          // Time durations

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// onlineSellerName is the synthetic seller identity stamped on pickup
// orders placed through the client catalog
const onlineSellerName = "Online Catalog"

// SaleRequest is the POS terminal payload. Direct sales complete
// immediately unless an explicit status is given.
type SaleRequest struct {
	StoreID      string          `json:"store_id" binding:"required"` // Store the sale happens at
	Items        []core.CartLine `json:"items" binding:"required"`    // Cart lines
	CustomerName string          `json:"customer_name"`               // Optional walk-in customer
	Status       string          `json:"status"`                      // Defaults to COMPLETED
}

// ProcessSaleHandler creates a sale from the POS terminal (seller or admin)
func ProcessSaleHandler(svc *core.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SaleRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		seller, ok := c.MustGet("currentUser").(*domain.User)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// A seller sells from their own store only
		if seller.Role == domain.RoleSeller && (seller.StoreID == nil || *seller.StoreID != req.StoreID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Sellers may only sell from their own store"})
			return
		}
		customer := req.CustomerName
		if customer == "" {
			customer = "Walk-in" // Counter sale without a registered customer
		}
		sale, err := svc.ProcessSale(req.StoreID, seller.ID, seller.Name, req.Items, customer, req.Status)
		if err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"store_id":  req.StoreID,
				"seller_id": seller.ID,
				"error":     err.Error(),
			}).Error("Sale failed") // Log sale failure
			writeError(c, err)
			return
		}
		// Log successful sale
		logrus.WithFields(logrus.Fields{
			"sale_id":   sale.ID,
			"store_id":  sale.StoreID,
			"seller_id": sale.SellerID,
			"total":     sale.TotalAmount,
			"status":    sale.Status,
			"timestamp": time.Now().Format(time.RFC3339),
		}).Info("Sale processed")
		invalidateSaleCache(rdb) // Drop stale stock and dashboard views
		c.JSON(http.StatusCreated, gin.H{"sale": sale})
	}
}

// OrderRequest is the client pickup order payload
type OrderRequest struct {
	StoreID string          `json:"store_id" binding:"required"` // Chosen pickup store
	Items   []core.CartLine `json:"items" binding:"required"`    // Cart lines
}

// PlaceOrderHandler creates a PENDING pickup order from the client
// catalog. Stock is reserved immediately, not on fulfilment.
func PlaceOrderHandler(svc *core.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req OrderRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		client, ok := c.MustGet("currentUser").(*domain.User)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sale, err := svc.ProcessSale(req.StoreID, client.ID, onlineSellerName, req.Items, client.Name, domain.StatusPending)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"store_id":  req.StoreID,
				"client_id": client.ID,
				"error":     err.Error(),
			}).Error("Order failed") // Log order failure
			writeError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"sale_id":  sale.ID,
			"store_id": sale.StoreID,
			"total":    sale.TotalAmount,
		}).Info("Pickup order placed")
		invalidateSaleCache(rdb) // Drop stale stock and dashboard views
		c.JSON(http.StatusCreated, gin.H{"sale": sale})
	}
}

// StatusRequest is the status transition payload
type StatusRequest struct {
	Status string `json:"status" binding:"required"` // PENDING, COMPLETED or CANCELLED
}

// UpdateSaleStatusHandler transitions a sale's status, applying the
// compensating stock adjustment (seller or admin)
func UpdateSaleStatusHandler(svc *core.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StatusRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, ok := c.MustGet("currentUser").(*domain.User)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// A seller manages their own store's sales only
		if user.Role == domain.RoleSeller {
			target, err := svc.GetSale(c.Param("id"))
			if err != nil {
				writeError(c, err)
				return
			}
			if user.StoreID == nil || *user.StoreID != target.StoreID {
				c.JSON(http.StatusForbidden, gin.H{"error": "Sellers may only manage their own store's sales"})
				return
			}
		}
		sale, err := svc.UpdateSaleStatus(c.Param("id"), req.Status)
		if err != nil {
			writeError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"sale_id": sale.ID,
			"status":  sale.Status,
		}).Info("Sale status updated")
		invalidateSaleCache(rdb) // Drop stale stock and dashboard views
		c.JSON(http.StatusOK, gin.H{"sale": sale})
	}
}

// ListSalesHandler returns the sales history: admins see every store,
// sellers only their own, both newest first
func ListSalesHandler(svc *core.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := c.MustGet("currentUser").(*domain.User)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var (
			sales []domain.Sale
			err   error
		)
		if user.Role == domain.RoleSeller && user.StoreID != nil {
			sales, err = svc.ListSalesByStore(*user.StoreID)
		} else {
			sales, err = svc.ListSales()
		}
		if err != nil {
			writeError(c, err)
			return
		}
		// Optional status filter, e.g. ?status=PENDING for the order queue
		if status := c.Query("status"); status != "" {
			filtered := make([]domain.Sale, 0, len(sales))
			for _, s := range sales {
				if s.Status == status {
					filtered = append(filtered, s)
				}
			}
			sales = filtered
		}
		c.JSON(http.StatusOK, gin.H{"sales": sales})
	}
}

// PickupStoresHandler returns the stores able to fulfil the client's cart
// in full (vacuously all stores for an empty cart)
func PickupStoresHandler(svc *core.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var lines []core.CartLine // Bind JSON cart to struct
		if err := c.ShouldBindJSON(&lines); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		stores, err := svc.StoresSatisfyingCart(lines)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"stores": stores})
	}
}

// MaxAvailableHandler returns the largest single-store quantity for a
// product, the client cart's upper bound per line
func MaxAvailableHandler(svc *core.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		max, err := svc.MaxAvailableAcrossStores(c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"product_id": c.Param("id"), "max_available": max})
	}
}

// invalidateSaleCache drops cached stock and dashboard views after any
// sale-side mutation
func invalidateSaleCache(rdb *redis.Client) {
	ctx := context.Background()
	_ = utils.DeleteCache(ctx, rdb, "catalog:stock")
	_ = utils.DeleteCacheByPattern(ctx, rdb, "dashboard:*")
}
