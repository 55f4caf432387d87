package api

import (
	"mpv_backend/internal/middleware" // Auth middleware

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// NewRouter wires every endpoint onto a Gin engine
func NewRouter(db *gorm.DB, rdb *redis.Client, jwtSecret, uploadDir string) *gin.Engine {
	r := gin.Default() // Gin router instance

	// Uploaded files are served from the upload directory
	r.Static("/uploads", uploadDir)

	// Public routes
	r.POST("/api/signup", SignupHandler(db, jwtSecret))  // Registration endpoint
	r.POST("/api/login", LoginHandler(db, jwtSecret))    // Login endpoint
	r.GET("/api/orders", ListOrdersHandler(db, rdb))     // Order listing endpoint
	r.GET("/api/artists", ListArtistsHandler(db, rdb))   // Artist listing endpoint
	r.GET("/api/services", ListServicesHandler(db, rdb)) // Service catalog endpoint

	// Protected routes (JWT required)
	protected := r.Group("/api")
	// Protect routes with JWT middleware and inject Redis client into context
	protected.Use(middleware.JWTAuthMiddleware(jwtSecret), func(c *gin.Context) {
		c.Set("redisClient", rdb)
		c.Next()
	})
	protected.POST("/orders", CreateOrderHandler(db))            // Order placement endpoint
	protected.PATCH("/orders/:id", UpdateOrderStatusHandler(db)) // Order status patch endpoint
	protected.GET("/payments", ListPaymentsHandler(db, rdb))     // Payment listing endpoint
	protected.POST("/payments", CreatePaymentHandler(db))        // Payment recording endpoint
	protected.POST("/upload", UploadHandler(uploadDir))          // File upload endpoint

	return r // Fully wired engine
}
