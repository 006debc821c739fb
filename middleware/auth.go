// auth.go - JWT authentication middleware
//
// Flow:
// 1. Extract JWT token from the Authorization header
// 2. Validate token signature and expiration
// 3. Store the user id from the claims in the gin context for handlers

package middleware

import (
	"net/http"
	"strings"

	"go-shop-backend/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates "Authorization: Bearer <token>" headers and aborts
// with 401 when the token is missing, malformed, expired or badly signed.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid token"})
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		cfg := config.Load()
		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		// Stash the user id for handlers that want an audit trail
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if userID, exists := claims["id"]; exists {
				c.Set("user_id", userID)
			}
		}

		c.Next()
	}
}
