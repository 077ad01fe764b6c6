package main

import (
	"context"                          // context package is needed for Redis operations
	"log"                              // log package is needed for logging
	"retail_system/internal/api"       // Custom package for API handlers
	"retail_system/internal/config"    // Custom package for configuration
	"retail_system/internal/core"      // Custom package for the data-access core
	"retail_system/internal/db"        // Custom package for database setup
	"retail_system/internal/domain"    // Custom package for domain models
	"retail_system/internal/middleware" // Custom package for middleware

	// For loading .env files
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to MySQL with bounded retries; fall back to the read-only
	// seed store instead of crashing if the backend stays unreachable
	var svc *core.Service
	gormDB, err := db.Connect(cfg.DSN())
	if err == nil {
		if err := db.AutoMigrate(gormDB); err != nil {
			logrus.Fatalf("migration failed: %v", err) // Fatal error if migration fails
		}
		if err := db.Seed(gormDB); err != nil {
			logrus.Fatalf("seeding failed: %v", err) // Fatal error if seeding fails
		}
		svc = core.New(gormDB)
	} else {
		logrus.WithField("error", err.Error()).Warn("Primary store unreachable, falling back to read-only seed data")
		fallback, ferr := db.OpenFallback()
		if ferr != nil {
			logrus.Fatalf("failed to open fallback store: %v", ferr) // No store at all, give up
		}
		gormDB = fallback
		svc = core.NewReadOnly(fallback)
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	registerRoutes(r, svc, gormDB, redisClient, cfg)

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}

// registerRoutes wires the operation surface to the role-gated route groups
func registerRoutes(r *gin.Engine, svc *core.Service, gormDB *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	// Auth route
	r.POST("/login", api.LoginHandler(svc, cfg.JWTSecret)) // Login endpoint

	// Authenticated routes
	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	// Catalog routes (any authenticated role)
	catalog := auth.Group("/catalog")
	catalog.Use(middleware.RequireRole(gormDB, domain.RoleAdmin, domain.RoleSeller, domain.RoleClient))
	catalog.GET("/products", api.ListProductsHandler(svc, redisClient))  // Catalog snapshot
	catalog.GET("/stores", api.ListStoresHandler(svc, redisClient))      // Store snapshot
	catalog.GET("/products/:id/max-available", api.MaxAvailableHandler(svc)) // Cart upper bound
	catalog.POST("/pickup-stores", api.PickupStoresHandler(svc))         // Stores able to fulfil a cart
	catalog.POST("/orders", api.PlaceOrderHandler(svc, redisClient))     // PENDING pickup order

	// Staff routes (seller or admin)
	staff := auth.Group("/pos")
	staff.Use(middleware.RequireRole(gormDB, domain.RoleAdmin, domain.RoleSeller))
	staff.GET("/stock", api.ListStockHandler(svc, redisClient))                  // Stock snapshot
	staff.GET("/stock/quantity", api.GetStockHandler(svc))                       // Single pair quantity
	staff.PUT("/stock", api.SetStockHandler(svc, redisClient))                   // Direct stock edit
	staff.POST("/sales", api.ProcessSaleHandler(svc, redisClient))               // POS sale
	staff.GET("/sales", api.ListSalesHandler(svc))                               // Sales history / order queue
	staff.PUT("/sales/:id/status", api.UpdateSaleStatusHandler(svc, redisClient)) // Status transition

	// Admin routes (admin only)
	admin := auth.Group("/admin")
	admin.Use(middleware.RequireRole(gormDB, domain.RoleAdmin))
	admin.GET("/users", api.ListUsersHandler(svc))                    // List users endpoint
	admin.POST("/users", api.CreateUserHandler(svc))                  // Create user endpoint
	admin.DELETE("/users/:id", api.DeleteUserHandler(svc))            // Delete user endpoint
	admin.POST("/stores", api.CreateStoreHandler(svc, redisClient))   // Create store endpoint
	admin.DELETE("/stores/:id", api.DeleteStoreHandler(svc, redisClient)) // Delete store endpoint (cascades)
	admin.POST("/products", api.CreateProductHandler(svc, redisClient))   // Create product endpoint
	admin.PUT("/products/:id", api.UpdateProductHandler(svc, redisClient)) // Update product endpoint
	admin.DELETE("/products/:id", api.DeleteProductHandler(svc, redisClient)) // Delete product endpoint (cascades)
	admin.GET("/dashboard", api.DashboardHandler(svc, redisClient, cfg.LowStockThreshold)) // Overview aggregates
}
