// bank.go - Bank CRUD handlers (payment destination accounts)

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go-shop-backend/database"
	"go-shop-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BankInput struct {
	BankName      string `json:"bankName"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
}

func CreateBank(c *gin.Context) {
	var input BankInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if input.BankName == "" || input.AccountName == "" || input.AccountNumber == "" {
		respondError(c, http.StatusBadRequest, "Bank name, account name, and account number are required")
		return
	}

	// Check duplicate account number
	var existing models.Bank
	err := database.DB.Where("account_number = ?", input.AccountNumber).First(&existing).Error
	if err == nil {
		respondError(c, http.StatusConflict, fmt.Sprintf("Account number %q already exists", input.AccountNumber))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondInternal(c, "Failed to create bank", err)
		return
	}

	bank := models.Bank{
		BankName:      input.BankName,
		AccountName:   input.AccountName,
		AccountNumber: input.AccountNumber,
	}
	if err := database.DB.Create(&bank).Error; err != nil {
		respondInternal(c, "Failed to create bank", err)
		return
	}

	respond(c, http.StatusCreated, "Bank created successfully", bank)
}

func GetBanks(c *gin.Context) {
	var banks []models.Bank
	if err := database.DB.Order("created_at DESC").Find(&banks).Error; err != nil {
		respondInternal(c, "Failed to fetch banks", err)
		return
	}

	respond(c, http.StatusOK, fmt.Sprintf("Found %d banks", len(banks)), banks)
}

func GetBankByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid bank ID format")
		return
	}

	var bank models.Bank
	if err := database.DB.First(&bank, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Bank not found")
			return
		}
		respondInternal(c, "Failed to fetch bank", err)
		return
	}

	respond(c, http.StatusOK, "Bank found", bank)
}

func UpdateBank(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid bank ID format")
		return
	}

	var input BankInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Check duplicate account number against other banks
	if input.AccountNumber != "" {
		var dup models.Bank
		err := database.DB.Where("account_number = ? AND id <> ?", input.AccountNumber, id).First(&dup).Error
		if err == nil {
			respondError(c, http.StatusConflict, fmt.Sprintf("Account number %q already exists", input.AccountNumber))
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			respondInternal(c, "Failed to update bank", err)
			return
		}
	}

	var bank models.Bank
	if err := database.DB.First(&bank, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Bank not found")
			return
		}
		respondInternal(c, "Failed to update bank", err)
		return
	}

	// Partial update, only provided fields change
	updates := map[string]interface{}{}
	if input.BankName != "" {
		updates["bank_name"] = input.BankName
	}
	if input.AccountName != "" {
		updates["account_name"] = input.AccountName
	}
	if input.AccountNumber != "" {
		updates["account_number"] = input.AccountNumber
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&bank).Updates(updates).Error; err != nil {
			respondInternal(c, "Failed to update bank", err)
			return
		}
	}

	respond(c, http.StatusOK, "Bank updated successfully", bank)
}

func DeleteBank(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid bank ID format")
		return
	}

	result := database.DB.Delete(&models.Bank{}, id)
	if result.Error != nil {
		respondInternal(c, "Failed to delete bank", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "Bank not found")
		return
	}

	respond(c, http.StatusOK, "Bank deleted successfully", nil)
}
