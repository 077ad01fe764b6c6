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

const catalogCacheTTL = 60 * time.Second // Shared TTL for cached catalog views

// invalidateCatalogCache drops every cached catalog and dashboard view
// after a catalog or inventory write
func invalidateCatalogCache(rdb *redis.Client) {
	ctx := context.Background()
	_ = utils.DeleteCacheByPattern(ctx, rdb, "catalog:*")
	_ = utils.DeleteCacheByPattern(ctx, rdb, "dashboard:*")
}

// ListProductsHandler returns the full catalog. The client catalog only
// shows active products; pass ?active=true to filter.
func ListProductsHandler(svc *core.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		activeOnly := c.Query("active") == "true"
		cacheKey := "catalog:products:active=" + c.DefaultQuery("active", "all")
		var cached []domain.Product
		// If cached data found, return it
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"products": cached, "cached": true})
			return
		}
		products, err := svc.ListProducts()
		if err != nil {
			writeError(c, err)
			return
		}
		if activeOnly {
			filtered := make([]domain.Product, 0, len(products))
			for _, p := range products {
				if p.Active {
					filtered = append(filtered, p)
				}
			}
			products = filtered
		}
		// Cache the response for future requests
		_ = utils.SetCache(ctx, rdb, cacheKey, products, catalogCacheTTL)
		c.JSON(http.StatusOK, gin.H{"products": products, "cached": false})
	}
}

// ProductRequest is the admin create/update payload
type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`     // Product name
	Category    string  `json:"category" binding:"required"` // HERB, PILL, POWDER or ACCESSORY
	WeightUnit  string  `json:"weight_unit"`                 // Unit label
	Price       float64 `json:"price"`                       // Unit price
	Description string  `json:"description"`                 // Free-form description
	Active      bool    `json:"active"`                      // Catalog visibility
	ImageURL    string  `json:"image_url"`                   // Optional image reference
}

// CreateProductHandler creates a catalog product (admin only)
func CreateProductHandler(svc *core.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		product := domain.Product{
			Name:        req.Name,
			Category:    req.Category,
			WeightUnit:  req.WeightUnit,
			Price:       req.Price,
			Description: req.Description,
			Active:      req.Active,
			ImageURL:    req.ImageURL,
		}
		if err := svc.CreateProduct(&product); err != nil {
			writeError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"product_id": product.ID,
			"name":       product.Name,
		}).Info("Product created")
		invalidateCatalogCache(rdb) // Drop stale catalog views
		c.JSON(http.StatusCreated, gin.H{"product": product})
	}
}

// UpdateProductHandler replaces a product's fields (admin only).
// Sale item snapshots are untouched by design.
func UpdateProductHandler(svc *core.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		product := domain.Product{
			ID:          c.Param("id"),
			Name:        req.Name,
			Category:    req.Category,
			WeightUnit:  req.WeightUnit,
			Price:       req.Price,
			Description: req.Description,
			Active:      req.Active,
			ImageURL:    req.ImageURL,
		}
		if err := svc.UpdateProduct(&product); err != nil {
			writeError(c, err)
			return
		}
		invalidateCatalogCache(rdb) // Drop stale catalog views
		c.JSON(http.StatusOK, gin.H{"product": product})
	}
}

// DeleteProductHandler removes a product and its stock rows (admin only)
func DeleteProductHandler(svc *core.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := svc.DeleteProduct(id); err != nil {
			writeError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{"product_id": id}).Info("Product deleted")
		invalidateCatalogCache(rdb) // Drop stale catalog views
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
