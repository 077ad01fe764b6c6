package middleware

import (
	"net/http"                     // HTTP status codes
	"retail_system/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// RequireRole checks the user's role from the database on each request,
// so a role change or account deletion takes effect immediately rather
// than at token expiry
func RequireRole(db *gorm.DB, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var user domain.User // Fetch user from database
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			// If user not found or any error, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		// Check if the user holds one of the allowed roles
		for _, role := range roles {
			if user.Role == role {
				// Expose the full user to downstream handlers
				c.Set("currentUser", &user)
				c.Next()
				return
			}
		}
		// If no allowed role matched, abort with forbidden status
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	}
}
