// transaction_test.go - Tests for checkout validation and the status lifecycle

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-shop-backend/database"
	"go-shop-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupTransactionRouter() *gin.Engine {
	r := gin.Default()
	r.POST("/transactions/checkout", Checkout)
	r.GET("/transactions", GetTransactions)
	r.GET("/transactions/:id", GetTransactionByID)
	r.PATCH("/transactions/:id", UpdateTransactionStatus)
	return r
}

// seedProduct creates a category and a product with the given stock.
func seedProduct(t *testing.T, stock int) models.Product {
	t.Helper()
	category := models.Category{Name: "Drinks", Description: "Cold drinks", ImageURL: "uploads/c.png"}
	if err := database.DB.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	product := models.Product{
		Name:        "Cola",
		Description: "Fizzy",
		Stock:       stock,
		Price:       2.5,
		CategoryID:  category.ID,
		ImageURL:    "uploads/p.png",
	}
	if err := database.DB.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func checkoutFields(productID uint, qty int) map[string]string {
	return map[string]string{
		"customerName":    "Jordan",
		"customerContact": "08123456789",
		"customerAddress": "1 Main Street",
		"totalPayment":    "7.5",
		"purchasedItems":  fmt.Sprintf(`[{"productId": %d, "qty": %d}]`, productID, qty),
	}
}

func currentStock(t *testing.T, productID uint) int {
	t.Helper()
	var product models.Product
	if err := database.DB.First(&product, productID).Error; err != nil {
		t.Fatalf("load product: %v", err)
	}
	return product.Stock
}

// TestCheckoutValidation verifies that nothing is persisted unless the whole
// order validates.
func TestCheckoutValidation(t *testing.T) {
	setupTestDB(t, "test_transaction.db")
	router := setupTransactionRouter()
	product := seedProduct(t, 5)

	// Quantity above stock is a 400 and no transaction is written
	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest(t, "POST", "/transactions/checkout", checkoutFields(product.ID, 10), true))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	database.DB.Model(&models.Transaction{}).Count(&count)
	assert.Equal(t, int64(0), count)

	// Unknown product is a 404
	w = httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest(t, "POST", "/transactions/checkout", checkoutFields(9999, 1), true))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Zero quantity is a 400
	w = httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest(t, "POST", "/transactions/checkout", checkoutFields(product.ID, 0), true))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Empty items array is a 400
	fields := checkoutFields(product.ID, 1)
	fields["purchasedItems"] = "[]"
	w = httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest(t, "POST", "/transactions/checkout", fields, true))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unparseable items are a 400
	fields["purchasedItems"] = "not json"
	w = httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest(t, "POST", "/transactions/checkout", fields, true))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Non-positive payment is a 400
	fields = checkoutFields(product.ID, 1)
	fields["totalPayment"] = "0"
	w = httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest(t, "POST", "/transactions/checkout", fields, true))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing payment proof is a 400
	w = httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest(t, "POST", "/transactions/checkout", checkoutFields(product.ID, 1), false))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	database.DB.Model(&models.Transaction{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

// TestTransactionLifecycle walks the full pending -> paid flow: stock stays
// untouched at checkout, is decremented exactly once on paid, and the status
// can never change again.
func TestTransactionLifecycle(t *testing.T) {
	setupTestDB(t, "test_transaction.db")
	router := setupTransactionRouter()
	product := seedProduct(t, 5)

	// Checkout 3 units
	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest(t, "POST", "/transactions/checkout", checkoutFields(product.ID, 3), true))
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "pending", data["status"])
	txnID := int(data["id"].(float64))

	// Stock untouched while pending
	assert.Equal(t, 5, currentStock(t, product.ID))

	// pending -> paid decrements stock
	body, _ := json.Marshal(UpdateStatusInput{Status: models.StatusPaid})
	w = httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", fmt.Sprintf("/transactions/%d", txnID), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, currentStock(t, product.ID))

	// paid -> rejected is refused and stock is not decremented again
	body, _ = json.Marshal(UpdateStatusInput{Status: models.StatusRejected})
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("PATCH", fmt.Sprintf("/transactions/%d", txnID), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already paid")
	assert.Equal(t, 2, currentStock(t, product.ID))
}

// TestPaidTransitionRechecksStock verifies the paid transition fails when
// stock ran out after checkout, and decrements nothing.
func TestPaidTransitionRechecksStock(t *testing.T) {
	setupTestDB(t, "test_transaction.db")
	router := setupTransactionRouter()
	product := seedProduct(t, 5)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest(t, "POST", "/transactions/checkout", checkoutFields(product.ID, 3), true))
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	txnID := int(resp.Data.(map[string]interface{})["id"].(float64))

	// Stock shrinks between checkout and the paid transition
	database.DB.Model(&models.Product{}).Where("id = ?", product.ID).Update("stock", 1)

	body, _ := json.Marshal(UpdateStatusInput{Status: models.StatusPaid})
	w = httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", fmt.Sprintf("/transactions/%d", txnID), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Insufficient stock")

	// Nothing was decremented and the transaction is still pending
	assert.Equal(t, 1, currentStock(t, product.ID))
	var txn models.Transaction
	database.DB.First(&txn, txnID)
	assert.Equal(t, models.StatusPending, txn.Status)
}

// TestRejectedTransitionSkipsStock verifies rejecting never touches stock.
func TestRejectedTransitionSkipsStock(t *testing.T) {
	setupTestDB(t, "test_transaction.db")
	router := setupTransactionRouter()
	product := seedProduct(t, 5)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest(t, "POST", "/transactions/checkout", checkoutFields(product.ID, 3), true))
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	txnID := int(resp.Data.(map[string]interface{})["id"].(float64))

	body, _ := json.Marshal(UpdateStatusInput{Status: models.StatusRejected})
	w = httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", fmt.Sprintf("/transactions/%d", txnID), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, currentStock(t, product.ID))
}

// TestTransactionListAndFilter verifies the status filter validation.
func TestTransactionListAndFilter(t *testing.T) {
	setupTestDB(t, "test_transaction.db")
	router := setupTransactionRouter()
	product := seedProduct(t, 5)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest(t, "POST", "/transactions/checkout", checkoutFields(product.ID, 1), true))
	assert.Equal(t, http.StatusCreated, w.Code)

	// Unknown status value is a 400
	w = httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/transactions?status=bogus", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Valid filter returns the pending transaction
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/transactions?status=pending", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Found 1 transactions")

	// Filtering on an empty bucket is fine
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/transactions?status=paid", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Found 0 transactions")

	// Unknown id lookups and bad formats
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/transactions/9999", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	body, _ := json.Marshal(UpdateStatusInput{Status: models.StatusPaid})
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("PATCH", "/transactions/not-a-number", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing and invalid status values on PATCH
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("PATCH", "/transactions/1", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("PATCH", "/transactions/1", bytes.NewBufferString(`{"status":"shipped"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
