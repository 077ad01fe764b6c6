package api

import (
	"context"                       // Context for Redis operations
	"net/http"                      // HTTP status codes
	"retail_system/internal/core"   // Core service
	"retail_system/internal/domain" // Importing domain models
	"retail_system/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// ListStockHandler returns the full stock snapshot
func ListStockHandler(svc *core.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		cacheKey := "catalog:stock"
		var cached []domain.Stock
		// If cached data found, return it
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"stock": cached, "cached": true})
			return
		}
		stock, err := svc.ListStock()
		if err != nil {
			writeError(c, err)
			return
		}
		// Cache the response for future requests
		_ = utils.SetCache(ctx, rdb, cacheKey, stock, catalogCacheTTL)
		c.JSON(http.StatusOK, gin.H{"stock": stock, "cached": false})
	}
}

// SetStockRequest is the direct stock edit payload. Negative quantities
// are accepted; a backorder is a tolerated state.
type SetStockRequest struct {
	ProductID string `json:"product_id" binding:"required"` // Target product
	StoreID   string `json:"store_id" binding:"required"`   // Target store
	Quantity  int    `json:"quantity"`                      // Absolute new quantity
}

// SetStockHandler applies an absolute stock set (admin or seller)
func SetStockHandler(svc *core.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetStockRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// A seller may only edit their own store's stock
		if u, ok := c.MustGet("currentUser").(*domain.User); ok && u.Role == domain.RoleSeller {
			if u.StoreID == nil || *u.StoreID != req.StoreID {
				c.JSON(http.StatusForbidden, gin.H{"error": "Sellers may only edit their own store"})
				return
			}
		}
		if err := svc.SetQuantity(req.ProductID, req.StoreID, req.Quantity); err != nil {
			writeError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"product_id": req.ProductID,
			"store_id":   req.StoreID,
			"quantity":   req.Quantity,
		}).Info("Stock set")
		invalidateCatalogCache(rdb) // Drop stale catalog and dashboard views
		c.JSON(http.StatusOK, gin.H{"message": "Stock updated"})
	}
}

// GetStockHandler returns a single (product, store) quantity; 0 if absent
func GetStockHandler(svc *core.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		qty, err := svc.GetQuantity(c.Query("product_id"), c.Query("store_id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"quantity": qty})
	}
}
