package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes

	"mpv_backend/internal/domain" // Importing domain models
	"mpv_backend/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// Cache keys for the public catalog listings
const (
	artistsCacheKey  = "artists:all"  // Full artist listing
	servicesCacheKey = "services:all" // Full service listing
)

// ArtistRow is an artist joined with the owning user's name for listing
type ArtistRow struct {
	ID     uint    `json:"id"`      // Primary key
	UserID uint    `json:"user_id"` // Owning user
	Bio    string  `json:"bio"`     // Short biography
	Skills string  `json:"skills"`  // Comma-separated skill list
	Rating float64 `json:"rating"`  // Average rating
	Name   string  `json:"name"`    // Joined user name
}

// ListArtistsHandler returns all artist profiles with the owning user's name
func ListArtistsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		var rows []ArtistRow        // Slice to hold artist rows
		// Try to get the listing from cache
		found, err := utils.GetCache(ctx, rdb, artistsCacheKey, &rows)
		if err == nil && found {
			c.JSON(http.StatusOK, rows) // Return cached listing
			return
		}
		// Fetch artists joined with the user's name
		if err := db.Table("artists").
			Select("artists.*, users.name AS name").
			Joins("LEFT JOIN users ON users.id = artists.user_id").
			Scan(&rows).Error; err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch artists"})
			return
		}
		// Absent rows come back as an empty array, not null
		if rows == nil {
			rows = []ArtistRow{} // Empty result set
		}
		// Cache the listing
		_ = utils.SetCache(ctx, rdb, artistsCacheKey, rows, utils.ListCacheTTL)
		c.JSON(http.StatusOK, rows) // Return the listing
	}
}

// ListServicesHandler returns the full service catalog
func ListServicesHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()   // Context for Redis operations
		var services []domain.Service // Slice to hold services
		// Try to get the listing from cache
		found, err := utils.GetCache(ctx, rdb, servicesCacheKey, &services)
		if err == nil && found {
			c.JSON(http.StatusOK, services) // Return cached listing
			return
		}
		// Fetch the catalog; it is read-only in the exposed API
		if err := db.Find(&services).Error; err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
			return
		}
		// Cache the listing
		_ = utils.SetCache(ctx, rdb, servicesCacheKey, services, utils.ListCacheTTL)
		c.JSON(http.StatusOK, services) // Return the listing
	}
}
