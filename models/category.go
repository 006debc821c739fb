// category.go - Defines the product Category model

package models

import "time"

// Category name uniqueness is case-insensitive and enforced in the handlers
// with a LOWER(name) lookup, not by a schema index.
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"not null" json:"description"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
