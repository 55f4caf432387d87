package domain

import "time" // Timestamps

// Payment Model
type Payment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`       // Primary key
	TxnID     string    `json:"txn_id"`                     // Transaction reference (TXN-<millis>)
	UserID    uint      `json:"user_id"`                    // Foreign key to the paying User
	User      User      `gorm:"foreignKey:UserID" json:"-"` // Relation for the foreign key constraint
	Amount    int       `json:"amount"`                     // Amount in the smallest currency unit
	Type      string    `json:"type"`                       // Payment type, e.g. deposit or payout
	Status    string    `json:"status"`                     // Always "Completed", no gateway integration
	CreatedAt time.Time `json:"created_at"`                 // Timestamp of creation
}
