// transaction.go - Defines the customer Transaction model and its status lifecycle

package models

import "time"

type TransactionStatus string

const (
	StatusPending  TransactionStatus = "pending"
	StatusPaid     TransactionStatus = "paid"
	StatusRejected TransactionStatus = "rejected"
)

// ValidStatus reports whether s is one of the three known statuses.
func ValidStatus(s TransactionStatus) bool {
	return s == StatusPending || s == StatusPaid || s == StatusRejected
}

// A transaction starts out pending and moves exactly once to paid or
// rejected. Stock is only decremented on the transition to paid.
type Transaction struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	CustomerName    string            `gorm:"not null" json:"customerName"`
	CustomerContact string            `gorm:"not null" json:"customerContact"`
	CustomerAddress string            `gorm:"not null" json:"customerAddress"`
	TotalPayment    float64           `gorm:"not null" json:"totalPayment"`
	PurchasedItems  []PurchasedItem   `gorm:"foreignKey:TransactionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"purchasedItems"`
	PaymentProof    string            `gorm:"not null" json:"paymentProof"` // Uploaded proof-of-payment image path
	Status          TransactionStatus `gorm:"not null;default:pending" json:"status"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// PurchasedItem is one (product, quantity) line inside a transaction.
type PurchasedItem struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	TransactionID uint    `gorm:"not null;index" json:"-"`
	ProductID     uint    `gorm:"not null" json:"productId"`
	Product       Product `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"product"`
	Qty           int     `gorm:"not null" json:"qty"` // Always >= 1
}
