package domain

// Artist Model
type Artist struct {
	ID     uint    `gorm:"primaryKey" json:"id"`       // Primary key
	UserID uint    `gorm:"index" json:"user_id"`       // Foreign key to the owning User
	User   User    `gorm:"foreignKey:UserID" json:"-"` // Relation for the foreign key constraint
	Bio    string  `json:"bio"`                        // Short biography
	Skills string  `json:"skills"`                     // Comma-separated skill list
	Rating float64 `gorm:"default:0" json:"rating"`    // Average rating, 0 until rated
}
