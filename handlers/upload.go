// upload.go - Multipart image upload helper shared by catalog and checkout handlers

package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go-shop-backend/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadSize = 5 << 20 // 5MB

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// saveUploadedImage validates and stores the uploaded file from the given form
// field, writing the error response itself on failure. It returns the stored
// path and whether the caller should continue. With required=false a missing
// file is fine and yields an empty path.
func saveUploadedImage(c *gin.Context, field string, required bool) (string, bool) {
	file, err := c.FormFile(field)
	if err != nil {
		if !required {
			return "", true
		}
		respondError(c, http.StatusBadRequest, "Image is required")
		return "", false
	}

	if file.Size > maxUploadSize {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("Image must be %dMB or smaller", maxUploadSize>>20))
		return "", false
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		respondError(c, http.StatusBadRequest, "Invalid file type. Only jpg, jpeg, png, webp are allowed")
		return "", false
	}

	cfg := config.Load()
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		respondInternal(c, "Failed to store image", err)
		return "", false
	}

	// Random filename so concurrent uploads never collide
	dst := filepath.Join(cfg.UploadDir, uuid.NewString()+ext)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		respondInternal(c, "Failed to store image", err)
		return "", false
	}

	return dst, true
}
