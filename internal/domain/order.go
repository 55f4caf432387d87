package domain

import "time" // Timestamps

// Order Model
type Order struct {
	ID        uint      `gorm:"primaryKey" json:"id"`          // Primary key
	OrderID   string    `json:"order_id"`                      // Human-readable order reference (ORD-<millis>)
	ServiceID uint      `json:"service_id"`                    // Foreign key to Service
	Service   Service   `gorm:"foreignKey:ServiceID" json:"-"` // Relation for the foreign key constraint
	ClientID  uint      `json:"client_id"`                     // Foreign key to the ordering User
	Client    User      `gorm:"foreignKey:ClientID" json:"-"`  // Relation for the foreign key constraint
	ArtistID  uint      `json:"artist_id"`                     // Foreign key to Artist
	Artist    Artist    `gorm:"foreignKey:ArtistID" json:"-"`  // Relation for the foreign key constraint
	Price     int       `json:"price"`                         // Agreed price at order time
	Status    string    `json:"status"`                        // Free-form status string, "Pending" on creation
	CreatedAt time.Time `json:"created_at"`                    // Timestamp of creation
}
