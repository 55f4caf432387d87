package api

import (
	"net/http"      // HTTP status codes
	"path/filepath" // Path handling
	"strconv"       // Integer formatting
	"time"          // Unique filename generation

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// UploadHandler stores a single uploaded file and returns its retrieval path
func UploadHandler(uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Caller identity is required but not used beyond the auth gate
		if _, exists := c.Get("userID"); !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		file, err := c.FormFile("file") // Extract the single file field
		if err != nil {
			// If no file is present, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file"})
			return
		}
		// Generate a filename from the current time, keeping the original extension
		name := strconv.FormatInt(time.Now().UnixNano(), 10) + filepath.Ext(file.Filename)
		dst := filepath.Join(uploadDir, name) // Destination path under the upload dir
		// Store the file
		if err := c.SaveUploadedFile(file, dst); err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"filename": file.Filename, // Original filename
				"error":    err.Error(),   // Error message
			}).Error("Upload failed") // Log upload failure
			// Return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
			return
		}
		// Return the relative retrieval path served by the static route
		c.JSON(http.StatusOK, gin.H{"url": "/uploads/" + name})
	}
}
