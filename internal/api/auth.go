package api

import (
	"net/http"                    // HTTP status codes
	"retail_system/internal/core" // Core service
	"retail_system/internal/utils" // Utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// LoginRequest is the credential payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// AuthResponse carries the token plus the identity the UI needs
type AuthResponse struct {
	Token    string  `json:"token"`              // JWT token
	UserID   string  `json:"user_id"`            // Authenticated user ID
	Name     string  `json:"name"`               // Display name
	Role     string  `json:"role"`               // ADMIN, SELLER or CLIENT
	StoreID  *string `json:"store_id,omitempty"` // Seller's store, if any
}

// LoginHandler authenticates a user and returns a JWT token with identity info
func LoginHandler(svc *core.Service, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Verify credentials against the stored bcrypt hash
		user, err := svc.Authenticate(req.Username, req.Password)
		if err != nil {
			// Unknown user and wrong password are indistinguishable
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		// Generate JWT token carrying id and role
		token, err := utils.GenerateJWT(user.ID, user.Role, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Return the token and identity in the response
		c.JSON(http.StatusOK, AuthResponse{
			Token:   token,
			UserID:  user.ID,
			Name:    user.Name,
			Role:    user.Role,
			StoreID: user.StoreID,
		})
	}
}
