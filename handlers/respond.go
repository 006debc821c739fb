// respond.go - Shared JSON response envelope helpers

package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint replies with.
type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{Message: message, Data: data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Message: message})
}

// respondInternal logs the underlying error and hides it from the caller.
func respondInternal(c *gin.Context, message string, err error) {
	log.Printf("%s: %v", message, err)
	c.JSON(http.StatusInternalServerError, Response{Message: message, Error: err.Error()})
}
