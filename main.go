// main.go - Entry point for the shop admin backend

package main

import (
	"log"
	"net/http"

	"go-shop-backend/config"
	"go-shop-backend/database"
	"go-shop-backend/handlers"
	"go-shop-backend/middleware"
	"go-shop-backend/notify"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load configuration and establish connections
	godotenv.Load(".env")
	cfg := config.Load()

	if err := database.Connect(cfg.DBPath); err != nil {
		log.Fatal("DB connection error: ", err)
	}
	if err := notify.Connect(cfg.MQTTBroker, cfg.MQTTTopic); err != nil {
		log.Fatal("MQTT connection error: ", err)
	}

	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Shop backend API is running"})
	})

	// Uploaded images are served back as static files
	r.Static("/uploads", cfg.UploadDir)

	// Public routes (no authentication required)
	r.POST("/api/auth/signin", handlers.SignIn)
	r.POST("/api/auth/create-admin", handlers.CreateAdmin)

	r.GET("/api/banks", handlers.GetBanks)
	r.GET("/api/banks/:id", handlers.GetBankByID)
	r.GET("/api/categories", handlers.GetCategories)
	r.GET("/api/categories/:id", handlers.GetCategoryByID)
	r.GET("/api/products", handlers.GetProducts)
	r.GET("/api/products/:id", handlers.GetProductByID)

	r.POST("/transactions/checkout", handlers.Checkout)
	r.GET("/transactions/:id", handlers.GetTransactionByID)

	// Protected routes (require JWT authentication)
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		api.POST("/banks", handlers.CreateBank)
		api.PUT("/banks/:id", handlers.UpdateBank)
		api.DELETE("/banks/:id", handlers.DeleteBank)

		api.POST("/categories", handlers.CreateCategory)
		api.PUT("/categories/:id", handlers.UpdateCategory)
		api.DELETE("/categories/:id", handlers.DeleteCategory)

		api.POST("/products", handlers.CreateProduct)
		api.PUT("/products/:id", handlers.UpdateProduct)
		api.DELETE("/products/:id", handlers.DeleteProduct)
	}

	transactions := r.Group("/transactions")
	transactions.Use(middleware.AuthMiddleware())
	{
		transactions.GET("", handlers.GetTransactions)
		transactions.PATCH("/:id", handlers.UpdateTransactionStatus)
	}

	r.Run(":" + cfg.Port)
}
