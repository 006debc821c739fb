// category.go - Category CRUD handlers (multipart, with image upload)

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

// findCategoryByName does the case-insensitive duplicate lookup. excludeID
// skips the row being updated (0 means exclude nothing).
func findCategoryByName(name string, excludeID uint64) (bool, error) {
	var dup models.Category
	err := database.DB.Where("LOWER(name) = LOWER(?) AND id <> ?", name, excludeID).First(&dup).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

func CreateCategory(c *gin.Context) {
	name := c.PostForm("name")
	description := c.PostForm("description")

	if name == "" || description == "" {
		respondError(c, http.StatusBadRequest, "Name and description are required")
		return
	}

	exists, err := findCategoryByName(name, 0)
	if err != nil {
		respondInternal(c, "Failed to create category", err)
		return
	}
	if exists {
		respondError(c, http.StatusConflict, fmt.Sprintf("Category %q already exists", name))
		return
	}

	imagePath, ok := saveUploadedImage(c, "image", true)
	if !ok {
		return
	}

	category := models.Category{
		Name:        name,
		Description: description,
		ImageURL:    imagePath,
	}
	if err := database.DB.Create(&category).Error; err != nil {
		respondInternal(c, "Failed to create category", err)
		return
	}

	respond(c, http.StatusCreated, "Category created successfully", category)
}

func GetCategories(c *gin.Context) {
	var categories []models.Category
	if err := database.DB.Order("created_at DESC").Find(&categories).Error; err != nil {
		respondInternal(c, "Failed to fetch categories", err)
		return
	}

	respond(c, http.StatusOK, fmt.Sprintf("Found %d categories", len(categories)), categories)
}

func GetCategoryByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	var category models.Category
	if err := database.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Category not found")
			return
		}
		respondInternal(c, "Failed to fetch category", err)
		return
	}

	respond(c, http.StatusOK, "Category found", category)
}

func UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	name := c.PostForm("name")
	description := c.PostForm("description")

	if name != "" {
		exists, err := findCategoryByName(name, id)
		if err != nil {
			respondInternal(c, "Failed to update category", err)
			return
		}
		if exists {
			respondError(c, http.StatusConflict, fmt.Sprintf("Category %q already exists", name))
			return
		}
	}

	var category models.Category
	if err := database.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Category not found")
			return
		}
		respondInternal(c, "Failed to update category", err)
		return
	}

	// New image is optional on update
	imagePath, ok := saveUploadedImage(c, "image", false)
	if !ok {
		return
	}

	updates := map[string]interface{}{}
	if name != "" {
		updates["name"] = name
	}
	if description != "" {
		updates["description"] = description
	}
	if imagePath != "" {
		updates["image_url"] = imagePath
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&category).Updates(updates).Error; err != nil {
			respondInternal(c, "Failed to update category", err)
			return
		}
	}

	respond(c, http.StatusOK, "Category updated successfully", category)
}

func DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	result := database.DB.Delete(&models.Category{}, id)
	if result.Error != nil {
		respondInternal(c, "Failed to delete category", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "Category not found")
		return
	}

	respond(c, http.StatusOK, "Category deleted successfully", nil)
}
