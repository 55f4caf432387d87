package domain

// Service Model
type Service struct {
	ID          uint   `gorm:"primaryKey" json:"id"` // Primary key
	Title       string `json:"title"`                // Catalog title
	Description string `json:"description"`          // Catalog description
	Price       int    `json:"price"`                // Price in the smallest currency unit
}
