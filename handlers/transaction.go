// transaction.go - Checkout and transaction status lifecycle handlers
//
// Lifecycle: pending -> paid or pending -> rejected, exactly once.
// Checkout only validates and records the order; stock is decremented when a
// transaction is marked paid.

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go-shop-backend/database"
	"go-shop-backend/models"
	"go-shop-backend/notify"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// checkoutItem is one purchased line as sent by the storefront. The items
// arrive as a JSON array inside a multipart form field.
type checkoutItem struct {
	ProductID json.Number `json:"productId"`
	Qty       json.Number `json:"qty"`
}

// Checkout validates the whole order before anything is written: customer
// fields, payment amount, payment proof image, and every purchased item
// (existing product, qty >= 1, sufficient stock). The transaction is created
// pending and stock stays untouched until the paid transition.
func Checkout(c *gin.Context) {
	customerName := c.PostForm("customerName")
	customerContact := c.PostForm("customerContact")
	customerAddress := c.PostForm("customerAddress")

	if customerName == "" || customerContact == "" || customerAddress == "" {
		respondError(c, http.StatusBadRequest, "Customer name, contact, and address are required")
		return
	}

	totalPayment, err := strconv.ParseFloat(c.PostForm("totalPayment"), 64)
	if err != nil || totalPayment <= 0 {
		respondError(c, http.StatusBadRequest, "Total payment must be a positive number")
		return
	}

	proofPath, ok := saveUploadedImage(c, "image", true)
	if !ok {
		return
	}

	var items []checkoutItem
	if err := json.Unmarshal([]byte(c.PostForm("purchasedItems")), &items); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid format for purchased items")
		return
	}
	if len(items) == 0 {
		respondError(c, http.StatusBadRequest, "At least one purchased item is required")
		return
	}

	// Validate every item before the insert so a failure leaves nothing behind
	purchased := make([]models.PurchasedItem, 0, len(items))
	for _, item := range items {
		productID, err := strconv.ParseUint(item.ProductID.String(), 10, 64)
		if err != nil || productID == 0 {
			respondError(c, http.StatusBadRequest, fmt.Sprintf("Invalid product ID format: %s", item.ProductID))
			return
		}

		qty, err := strconv.Atoi(item.Qty.String())
		if err != nil || qty < 1 {
			respondError(c, http.StatusBadRequest, "Quantity must be at least 1")
			return
		}

		var product models.Product
		if err := database.DB.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondError(c, http.StatusNotFound, fmt.Sprintf("Product not found: %d", productID))
				return
			}
			respondInternal(c, "Failed to create transaction", err)
			return
		}

		if product.Stock < qty {
			respondError(c, http.StatusBadRequest, fmt.Sprintf(
				"Insufficient stock for %q. Available: %d, requested: %d", product.Name, product.Stock, qty))
			return
		}

		purchased = append(purchased, models.PurchasedItem{ProductID: uint(productID), Qty: qty})
	}

	transaction := models.Transaction{
		CustomerName:    customerName,
		CustomerContact: customerContact,
		CustomerAddress: customerAddress,
		TotalPayment:    totalPayment,
		PurchasedItems:  purchased,
		PaymentProof:    proofPath,
		Status:          models.StatusPending,
	}
	if err := database.DB.Create(&transaction).Error; err != nil {
		respondInternal(c, "Failed to create transaction", err)
		return
	}

	if err := database.DB.Preload("PurchasedItems.Product.Category").First(&transaction, transaction.ID).Error; err != nil {
		respondInternal(c, "Failed to create transaction", err)
		return
	}

	respond(c, http.StatusCreated, "Transaction created successfully", transaction)
}

func GetTransactions(c *gin.Context) {
	query := database.DB.Preload("PurchasedItems.Product.Category").Order("created_at DESC")

	// Optional status filter, restricted to the known statuses
	if status := c.Query("status"); status != "" {
		if !models.ValidStatus(models.TransactionStatus(status)) {
			respondError(c, http.StatusBadRequest, "Invalid status. Must be one of: pending, paid, rejected")
			return
		}
		query = query.Where("status = ?", status)
	}

	var transactions []models.Transaction
	if err := query.Find(&transactions).Error; err != nil {
		respondInternal(c, "Failed to fetch transactions", err)
		return
	}

	respond(c, http.StatusOK, fmt.Sprintf("Found %d transactions", len(transactions)), transactions)
}

func GetTransactionByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid transaction ID format")
		return
	}

	var transaction models.Transaction
	if err := database.DB.Preload("PurchasedItems.Product.Category").First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Transaction not found")
			return
		}
		respondInternal(c, "Failed to fetch transaction", err)
		return
	}

	respond(c, http.StatusOK, "Transaction found", transaction)
}

type UpdateStatusInput struct {
	Status models.TransactionStatus `json:"status"`
}

// UpdateTransactionStatus moves a pending transaction to paid or rejected.
// The paid transition re-checks stock for every item before decrementing any
// of them, so a failure halfway cannot leave a partially committed order.
//
// Known limitation: the check and the decrements are not wrapped in a DB
// transaction, so two concurrent paid transitions touching the same product
// can race. The decrement is guarded by stock >= qty, which turns a lost race
// into a 400 rather than negative stock.
func UpdateTransactionStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid transaction ID format")
		return
	}

	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Status == "" {
		respondError(c, http.StatusBadRequest, "Status is required")
		return
	}
	if !models.ValidStatus(input.Status) {
		respondError(c, http.StatusBadRequest, "Invalid status. Must be one of: pending, paid, rejected")
		return
	}

	var transaction models.Transaction
	if err := database.DB.Preload("PurchasedItems").First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Transaction not found")
			return
		}
		respondInternal(c, "Failed to update transaction status", err)
		return
	}

	// A terminal status is immutable
	if transaction.Status != models.StatusPending {
		respondError(c, http.StatusBadRequest, fmt.Sprintf(
			"Cannot update transaction. Current status is already %s", transaction.Status))
		return
	}

	if input.Status == models.StatusPaid {
		// First pass: every item must still be satisfiable
		for _, item := range transaction.PurchasedItems {
			var product models.Product
			if err := database.DB.First(&product, item.ProductID).Error; err != nil || product.Stock < item.Qty {
				respondError(c, http.StatusBadRequest, fmt.Sprintf(
					"Insufficient stock for %q. Available: %d, requested: %d", product.Name, product.Stock, item.Qty))
				return
			}
		}

		// Second pass: decrement, guarded so stock can never go negative
		for _, item := range transaction.PurchasedItems {
			result := database.DB.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Qty).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Qty))
			if result.Error != nil {
				respondInternal(c, "Failed to update transaction status", result.Error)
				return
			}
			if result.RowsAffected == 0 {
				var product models.Product
				database.DB.First(&product, item.ProductID)
				respondError(c, http.StatusBadRequest, fmt.Sprintf(
					"Insufficient stock for %q. Available: %d, requested: %d", product.Name, product.Stock, item.Qty))
				return
			}
		}
	}

	if err := database.DB.Model(&transaction).Update("status", input.Status).Error; err != nil {
		respondInternal(c, "Failed to update transaction status", err)
		return
	}

	if err := database.DB.Preload("PurchasedItems.Product.Category").First(&transaction, id).Error; err != nil {
		respondInternal(c, "Failed to update transaction status", err)
		return
	}

	notify.TransactionStatus(transaction.ID, transaction.Status)

	respond(c, http.StatusOK, fmt.Sprintf("Transaction %s successfully", input.Status), transaction)
}
