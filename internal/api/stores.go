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

// ListStoresHandler returns all stores
func ListStoresHandler(svc *core.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		cacheKey := "catalog:stores"
		var cached []domain.Store
		// If cached data found, return it
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"stores": cached, "cached": true})
			return
		}
		stores, err := svc.ListStores()
		if err != nil {
			writeError(c, err)
			return
		}
		// Cache the response for future requests
		_ = utils.SetCache(ctx, rdb, cacheKey, stores, catalogCacheTTL)
		c.JSON(http.StatusOK, gin.H{"stores": stores, "cached": false})
	}
}

// StoreRequest is the admin create payload
type StoreRequest struct {
	Name     string `json:"name" binding:"required"` // Store name
	Location string `json:"location"`                // Location string
}

// CreateStoreHandler creates a store (admin only)
func CreateStoreHandler(svc *core.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StoreRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		store := domain.Store{Name: req.Name, Location: req.Location}
		if err := svc.CreateStore(&store); err != nil {
			writeError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"store_id": store.ID,
			"name":     store.Name,
		}).Info("Store created")
		invalidateCatalogCache(rdb) // Drop stale catalog views
		c.JSON(http.StatusCreated, gin.H{"store": store})
	}
}

// DeleteStoreHandler removes a store, cascading over stock rows and
// unlinking its sellers (admin only)
func DeleteStoreHandler(svc *core.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := svc.DeleteStore(id); err != nil {
			writeError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{"store_id": id}).Info("Store deleted")
		invalidateCatalogCache(rdb) // Drop stale catalog views
		c.JSON(http.StatusOK, gin.H{"message": "Store deleted"})
	}
}
