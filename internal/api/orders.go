package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Timestamps

	"mpv_backend/internal/domain" // Importing domain models
	"mpv_backend/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// ordersCacheKey caches the full order listing
const ordersCacheKey = "orders:all"

// CreateOrderRequest is the body for placing an order
type CreateOrderRequest struct {
	ServiceID uint `json:"service_id" binding:"required"` // Ordered service
	ArtistID  uint `json:"artist_id" binding:"required"`  // Assigned artist
	Price     int  `json:"price" binding:"required"`      // Agreed price
}

// UpdateOrderStatusRequest is the body for the status patch
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"` // New status string, stored verbatim
}

// OrderRow is an order joined with its service title for listing
type OrderRow struct {
	ID        uint      `json:"id"`         // Primary key
	OrderID   string    `json:"order_id"`   // Order reference
	ServiceID uint      `json:"service_id"` // Ordered service
	ClientID  uint      `json:"client_id"`  // Ordering user
	ArtistID  uint      `json:"artist_id"`  // Assigned artist
	Price     int       `json:"price"`      // Agreed price
	Status    string    `json:"status"`     // Current status
	CreatedAt time.Time `json:"created_at"` // Timestamp of creation
	Service   string    `json:"service"`    // Joined service title
}

// ListOrdersHandler returns all orders with their service title, newest first
func ListOrdersHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		var rows []OrderRow         // Slice to hold order rows
		// Try to get the listing from cache
		found, err := utils.GetCache(ctx, rdb, ordersCacheKey, &rows)
		if err == nil && found {
			c.JSON(http.StatusOK, rows) // Return cached listing
			return
		}
		// Fetch orders joined with the service title
		if err := db.Table("orders").
			Select("orders.*, services.title AS service").
			Joins("LEFT JOIN services ON services.id = orders.service_id").
			Order("orders.created_at DESC").
			Scan(&rows).Error; err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		// Absent rows come back as an empty array, not null
		if rows == nil {
			rows = []OrderRow{} // Empty result set
		}
		// Cache the listing
		_ = utils.SetCache(ctx, rdb, ordersCacheKey, rows, utils.ListCacheTTL)
		c.JSON(http.StatusOK, rows) // Return the listing
	}
}

// CreateOrderHandler places an order for the authenticated client
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req CreateOrderRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "service_id, artist_id and price required"})
			return
		}
		// Build the order; the foreign keys are enforced by the storage layer
		order := domain.Order{
			OrderID:   timeRef("ORD"), // Generated order reference
			ServiceID: req.ServiceID,  // Ordered service
			ClientID:  userID.(uint),  // Ordering user from the token
			ArtistID:  req.ArtistID,   // Assigned artist
			Price:     req.Price,      // Agreed price
			Status:    "Pending",      // Every order starts pending
		}
		// Insert the order
		if err := db.Create(&order).Error; err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"client_id":  userID,        // Ordering user
				"service_id": req.ServiceID, // Ordered service
				"artist_id":  req.ArtistID,  // Assigned artist
				"error":      err.Error(),   // Error message
			}).Error("Order creation failed") // Log order failure
			// Return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}
		var created domain.Order // Read the row back
		if err := db.First(&created, order.ID).Error; err != nil {
			// If the read-back fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		// Log successful order creation
		logrus.WithFields(logrus.Fields{
			"order_id":  created.OrderID, // Order reference
			"client_id": userID,          // Ordering user
			"price":     created.Price,   // Agreed price
		}).Info("Order created") // Log order creation
		// Invalidate the order listing cache
		if rdb, ok := c.MustGet("redisClient").(*redis.Client); ok {
			_ = utils.DeleteCache(context.Background(), rdb, ordersCacheKey)
		}
		c.JSON(http.StatusOK, created) // Return the created row
	}
}

// UpdateOrderStatusHandler sets an order's status to the given string verbatim
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Caller identity is required but not used beyond the auth gate
		if _, exists := c.Get("userID"); !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		id := c.Param("id")              // Order row ID from the path
		var req UpdateOrderStatusRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "status required"})
			return
		}
		// Update the status; the string is not checked against any enum, last write wins
		if err := db.Model(&domain.Order{}).Where("id = ?", id).Update("status", req.Status).Error; err != nil {
			// If the update fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}
		var order domain.Order // Read the row back
		if err := db.Where("id = ?", id).First(&order).Error; err != nil {
			// If no such order, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		// Invalidate the order listing cache
		if rdb, ok := c.MustGet("redisClient").(*redis.Client); ok {
			_ = utils.DeleteCache(context.Background(), rdb, ordersCacheKey)
		}
		c.JSON(http.StatusOK, order) // Return the updated row
	}
}
