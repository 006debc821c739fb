// product.go - Product CRUD handlers (multipart, with category reference checks)

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

func CreateProduct(c *gin.Context) {
	name := c.PostForm("name")
	description := c.PostForm("description")
	stockStr := c.PostForm("stock")
	priceStr := c.PostForm("price")
	categoryIDStr := c.PostForm("categoryId")

	if name == "" || description == "" || stockStr == "" || priceStr == "" || categoryIDStr == "" {
		respondError(c, http.StatusBadRequest, "Name, description, stock, price, and categoryId are required")
		return
	}

	stock, err := strconv.Atoi(stockStr)
	if err != nil || stock < 0 {
		respondError(c, http.StatusBadRequest, "Stock must be a positive number")
		return
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price < 0 {
		respondError(c, http.StatusBadRequest, "Price must be a positive number")
		return
	}

	categoryID, err := strconv.ParseUint(categoryIDStr, 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	// The referenced category must exist
	var category models.Category
	if err := database.DB.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Category not found")
			return
		}
		respondInternal(c, "Failed to create product", err)
		return
	}

	imagePath, ok := saveUploadedImage(c, "image", true)
	if !ok {
		return
	}

	product := models.Product{
		Name:        name,
		Description: description,
		Stock:       stock,
		Price:       price,
		CategoryID:  uint(categoryID),
		ImageURL:    imagePath,
	}
	if err := database.DB.Create(&product).Error; err != nil {
		respondInternal(c, "Failed to create product", err)
		return
	}
	product.Category = category

	respond(c, http.StatusCreated, "Product created successfully", product)
}

func GetProducts(c *gin.Context) {
	var products []models.Product
	if err := database.DB.Preload("Category").Order("created_at DESC").Find(&products).Error; err != nil {
		respondInternal(c, "Failed to fetch products", err)
		return
	}

	respond(c, http.StatusOK, fmt.Sprintf("Found %d products", len(products)), products)
}

func GetProductByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var product models.Product
	if err := database.DB.Preload("Category").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Product not found")
			return
		}
		respondInternal(c, "Failed to fetch product", err)
		return
	}

	respond(c, http.StatusOK, "Product found", product)
}

func UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	updates := map[string]interface{}{}

	if name := c.PostForm("name"); name != "" {
		updates["name"] = name
	}
	if description := c.PostForm("description"); description != "" {
		updates["description"] = description
	}

	if stockStr := c.PostForm("stock"); stockStr != "" {
		stock, err := strconv.Atoi(stockStr)
		if err != nil || stock < 0 {
			respondError(c, http.StatusBadRequest, "Stock must be a positive number")
			return
		}
		updates["stock"] = stock
	}

	if priceStr := c.PostForm("price"); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			respondError(c, http.StatusBadRequest, "Price must be a positive number")
			return
		}
		updates["price"] = price
	}

	if categoryIDStr := c.PostForm("categoryId"); categoryIDStr != "" {
		categoryID, err := strconv.ParseUint(categoryIDStr, 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid category ID format")
			return
		}

		var category models.Category
		if err := database.DB.First(&category, categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondError(c, http.StatusNotFound, "Category not found")
				return
			}
			respondInternal(c, "Failed to update product", err)
			return
		}
		updates["category_id"] = uint(categoryID)
	}

	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Product not found")
			return
		}
		respondInternal(c, "Failed to update product", err)
		return
	}

	imagePath, ok := saveUploadedImage(c, "image", false)
	if !ok {
		return
	}
	if imagePath != "" {
		updates["image_url"] = imagePath
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&product).Updates(updates).Error; err != nil {
			respondInternal(c, "Failed to update product", err)
			return
		}
	}

	// Reload with the (possibly new) category attached
	if err := database.DB.Preload("Category").First(&product, id).Error; err != nil {
		respondInternal(c, "Failed to update product", err)
		return
	}

	respond(c, http.StatusOK, "Product updated successfully", product)
}

func DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	result := database.DB.Delete(&models.Product{}, id)
	if result.Error != nil {
		respondInternal(c, "Failed to delete product", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "Product not found")
		return
	}

	respond(c, http.StatusOK, "Product deleted successfully", nil)
}
