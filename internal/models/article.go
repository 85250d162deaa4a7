package models

import "time"

// Article categories form a closed set; anything else is a validation error.
const (
	CategoryClothing    = "Clothing"
	CategoryManga       = "Manga"
	CategoryAccessories = "Accessories"
	CategoryDecoration  = "Decoration"
)

// Article represents a catalog entry.
// Discount is a percentage; 100 or more would make the price non-positive
// and is rejected on both create and update.
type Article struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	Image       string    `json:"image" gorm:"type:varchar(500)" validate:"required"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Description string    `json:"description" gorm:"type:varchar(1000)" validate:"required,max=1000"`
	Category    string    `json:"category" gorm:"type:varchar(20)" validate:"required,oneof=Clothing Manga Accessories Decoration"`
	Quantity    int       `json:"quantity" validate:"gte=0"`
	Discount    int       `json:"discount" validate:"gte=0,lt=100"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DiscountedPrice returns the effective unit price with any active
// discount applied, rounded to 2 decimal places.
func (a Article) DiscountedPrice() float64 {
	if a.Discount <= 0 {
		return Round2(a.Price)
	}
	return Round2(a.Price * (1 - float64(a.Discount)/100))
}
