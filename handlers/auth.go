// auth.go - Handles admin sign-in and one-time admin bootstrap

package handlers

import (
	"net/http"
	"time"

	"go-shop-backend/config"
	"go-shop-backend/database"
	"go-shop-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type SignInInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateAdminInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

// SignIn checks admin credentials and issues a signed token. Unknown email
// and wrong password produce the same 401 so neither case is distinguishable.
func SignIn(c *gin.Context) {
	var input SignInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	cfg := config.Load()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(24 * time.Hour).Unix(), // 1-day expiry
	})
	tokenString, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		respondInternal(c, "Failed to sign token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// CreateAdmin bootstraps the single admin account. Once any user row exists
// the endpoint always answers 409, regardless of payload.
func CreateAdmin(c *gin.Context) {
	// The existence check comes before payload validation so a second call is
	// a conflict no matter what it carries.
	var count int64
	if err := database.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		respondInternal(c, "Failed to create admin", err)
		return
	}
	if count > 0 {
		respondError(c, http.StatusConflict, "Only one admin user is allowed. To create a new admin, delete existing data from the database first.")
		return
	}

	var input CreateAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Email, password, and name are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		respondInternal(c, "Failed to create admin", err)
		return
	}

	admin := models.User{
		Email:    input.Email,
		Password: string(hash),
		Name:     input.Name,
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		respondInternal(c, "Failed to create admin", err)
		return
	}

	respond(c, http.StatusCreated, "Admin user created successfully!", gin.H{
		"id":    admin.ID,
		"name":  admin.Name,
		"email": admin.Email,
	})
}
