package api

import (
	"context"                     // Context for Redis operations
	"net/http"                    // HTTP status codes
	"retail_system/internal/core" // Core service
	"retail_system/internal/utils" // Utility functions
	"time"                        // Time durations

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// DashboardResponse aggregates the admin overview numbers
type DashboardResponse struct {
	TotalRevenue   float64             `json:"total_revenue"`    // Sum of all sale totals
	TotalSales     int                 `json:"total_sales"`      // Number of sales
	TotalItemsSold int                 `json:"total_items_sold"` // Sum of item quantities across sales
	RevenueByStore []core.StoreRevenue `json:"revenue_by_store"` // Per-store revenue
	TopProducts    []core.ProductSales `json:"top_products"`     // Top 5 products by units sold
	LowStock       []core.StockAlert   `json:"low_stock"`        // Pairs below the alert threshold
}

// DashboardHandler returns the admin overview aggregates, cached for 60s
func DashboardHandler(svc *core.Service, rdb *redis.Client, lowStockThreshold int) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		cacheKey := "dashboard:summary"
		var cached DashboardResponse
		// If cached data found, return it
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"dashboard": cached, "cached": true})
			return
		}
		sales, err := svc.ListSales()
		if err != nil {
			writeError(c, err)
			return
		}
		resp := DashboardResponse{TotalSales: len(sales)}
		for _, sale := range sales {
			resp.TotalRevenue += sale.TotalAmount
			for _, item := range sale.Items {
				resp.TotalItemsSold += item.Quantity
			}
		}
		if resp.RevenueByStore, err = svc.RevenueByStore(); err != nil {
			writeError(c, err)
			return
		}
		if resp.TopProducts, err = svc.TopProductsByQuantitySold(5); err != nil {
			writeError(c, err)
			return
		}
		if resp.LowStock, err = svc.LowStockAlerts(lowStockThreshold); err != nil {
			writeError(c, err)
			return
		}
		// Cache the response for future requests
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, 60*time.Second)
		c.JSON(http.StatusOK, gin.H{"dashboard": resp, "cached": false})
	}
}
