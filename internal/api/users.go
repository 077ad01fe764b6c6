package api

import (
	"net/http"                      // HTTP status codes
	"retail_system/internal/core"   // Core service
	"retail_system/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// ListUsersHandler returns all users (admin only). Password hashes are
// excluded by the model's json tags.
func ListUsersHandler(svc *core.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.ListUsers()
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": users})
	}
}

// UserRequest is the admin create payload
type UserRequest struct {
	Username string  `json:"username" binding:"required"` // Unique login name
	Name     string  `json:"name" binding:"required"`     // Display name
	Role     string  `json:"role" binding:"required"`     // ADMIN, SELLER or CLIENT
	StoreID  *string `json:"store_id"`                    // Required for sellers
	Password string  `json:"password" binding:"required"` // Plain password, hashed by core
}

// CreateUserHandler creates an account (admin only)
func CreateUserHandler(svc *core.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user := domain.User{
			Username: req.Username,
			Name:     req.Name,
			Role:     req.Role,
			StoreID:  req.StoreID,
		}
		if err := svc.CreateUser(&user, req.Password); err != nil {
			writeError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,
			"username": user.Username,
			"role":     user.Role,
		}).Info("User created")
		c.JSON(http.StatusCreated, gin.H{"user": user})
	}
}

// DeleteUserHandler removes an account (admin only). The seed admin
// account cannot be deleted.
func DeleteUserHandler(svc *core.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		// Look the target up to protect the seed admin account
		users, err := svc.ListUsers()
		if err != nil {
			writeError(c, err)
			return
		}
		for _, u := range users {
			if u.ID == id && u.Username == "admin" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "The admin account cannot be deleted"})
				return
			}
		}
		if err := svc.DeleteUser(id); err != nil {
			writeError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{"user_id": id}).Info("User deleted")
		c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
	}
}
