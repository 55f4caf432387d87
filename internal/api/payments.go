package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes

	"mpv_backend/internal/domain" // Importing domain models
	"mpv_backend/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// paymentsCacheKey caches the full payment listing
const paymentsCacheKey = "payments:all"

// CreatePaymentRequest is the body for recording a payment
type CreatePaymentRequest struct {
	Amount int    `json:"amount" binding:"required"` // Paid amount
	Type   string `json:"type" binding:"required"`   // Payment type
}

// ListPaymentsHandler returns all payments, newest first
func ListPaymentsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()   // Context for Redis operations
		var payments []domain.Payment // Slice to hold payments
		// Try to get the listing from cache
		found, err := utils.GetCache(ctx, rdb, paymentsCacheKey, &payments)
		if err == nil && found {
			c.JSON(http.StatusOK, payments) // Return cached listing
			return
		}
		// Fetch payments ordered by creation time
		if err := db.Order("created_at desc").Find(&payments).Error; err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
			return
		}
		// Absent rows come back as an empty array, not null
		if payments == nil {
			payments = []domain.Payment{} // Empty result set
		}
		// Cache the listing
		_ = utils.SetCache(ctx, rdb, paymentsCacheKey, payments, utils.ListCacheTTL)
		c.JSON(http.StatusOK, payments) // Return the listing
	}
}

// CreatePaymentHandler records a payment for the authenticated user
func CreatePaymentHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req CreatePaymentRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "amount and type required"})
			return
		}
		// Build the payment; there is no gateway, so it completes immediately
		payment := domain.Payment{
			TxnID:  timeRef("TXN"), // Generated transaction reference
			UserID: userID.(uint),  // Paying user from the token
			Amount: req.Amount,     // Paid amount
			Type:   req.Type,       // Payment type
			Status: "Completed",    // Fixed status
		}
		// Insert the payment
		if err := db.Create(&payment).Error; err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // Paying user
				"amount":  req.Amount,  // Paid amount
				"type":    req.Type,    // Payment type
				"error":   err.Error(), // Error message
			}).Error("Payment creation failed") // Log payment failure
			// Return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
			return
		}
		var created domain.Payment // Read the row back
		if err := db.First(&created, payment.ID).Error; err != nil {
			// If the read-back fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment"})
			return
		}
		// Log successful payment
		logrus.WithFields(logrus.Fields{
			"txn_id":  created.TxnID,  // Transaction reference
			"user_id": userID,         // Paying user
			"amount":  created.Amount, // Paid amount
		}).Info("Payment recorded") // Log payment creation
		// Invalidate the payment listing cache
		if rdb, ok := c.MustGet("redisClient").(*redis.Client); ok {
			_ = utils.DeleteCache(context.Background(), rdb, paymentsCacheKey)
		}
		c.JSON(http.StatusOK, created) // Return the created row
	}
}
