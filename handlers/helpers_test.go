// helpers_test.go - Shared setup for handler tests
// Run with: go test ./...

package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"os"
	"testing"

	"go-shop-backend/database"
)

// setupTestDB removes any existing test DB and creates a fresh one, and points
// uploads at a throwaway directory.
func setupTestDB(t *testing.T, dbFile string) {
	t.Helper()
	_ = os.Remove(dbFile)
	t.Setenv("UPLOAD_DIR", t.TempDir())
	if err := database.Connect(dbFile); err != nil {
		t.Fatalf("connect test db: %v", err)
	}
	t.Cleanup(func() { _ = os.Remove(dbFile) })
}

// multipartRequest builds a multipart form request, optionally attaching a
// small fake image under the "image" field.
func multipartRequest(t *testing.T, method, url string, fields map[string]string, withImage bool) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if withImage {
		fw, err := w.CreateFormFile("image", "upload.png")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		fw.Write([]byte("fake image bytes"))
	}
	w.Close()

	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}
