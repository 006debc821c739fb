// bank.go - Defines the Bank model (payment destination accounts)

package models

import "time"

type Bank struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BankName      string    `gorm:"not null" json:"bankName"`
	AccountName   string    `gorm:"not null" json:"accountName"`
	AccountNumber string    `gorm:"uniqueIndex;not null" json:"accountNumber"` // Must be unique across banks
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
