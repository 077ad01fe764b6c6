package api

import (
	"errors"
	"net/http"
	"retail_system/internal/core" // Core error taxonomy

	"github.com/gin-gonic/gin"
)

// writeError maps a core error to an HTTP status and a JSON body.
// Storage errors surface as 503 so the caller layer owns the messaging;
// nothing is silently swallowed.
func writeError(c *gin.Context, err error) {
	var notFound *core.NotFoundError
	var validation *core.ValidationError
	var insufficient *core.InsufficientStockError
	var unavailable *core.StorageUnavailableError
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.As(err, &insufficient):
		// Conflict: the request was well-formed but the stock cannot cover it
		c.JSON(http.StatusConflict, gin.H{
			"error":      insufficient.Error(),
			"product_id": insufficient.ProductID,
			"store_id":   insufficient.StoreID,
			"requested":  insufficient.Requested,
			"available":  insufficient.Available,
		})
	case errors.As(err, &unavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage unavailable, running read-only"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
