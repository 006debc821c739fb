// product.go - Defines the Product model

package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"not null" json:"description"`
	Stock       int       `gorm:"not null" json:"stock"` // Never negative; decrements are guarded
	Price       float64   `gorm:"not null" json:"price"`
	CategoryID  uint      `gorm:"not null" json:"categoryId"`
	Category    Category  `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
