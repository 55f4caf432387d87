package domain

import "time" // Timestamps

// User Model
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`              // Primary key
	Name      string    `json:"name"`                              // Display name
	Email     string    `gorm:"uniqueIndex;not null" json:"email"` // Unique email address
	Password  string    `gorm:"not null" json:"-"`                 // Hashed password, never serialized
	Role      string    `gorm:"default:client" json:"role"`        // Role: client, artist or admin
	CreatedAt time.Time `json:"created_at"`                        // Timestamp of creation
}
