package http

import (
	"io"
	"net/http"
	"path/filepath"

	"cleansweep-backend/internal/storage"
)

// PhotoHandler serves stored cleanup photos over HTTP.
type PhotoHandler struct {
	storage storage.StorageInterface
}

func NewPhotoHandler(store storage.StorageInterface) *PhotoHandler {
	return &PhotoHandler{storage: store}
}

// Download streams a stored photo by its storage key.
func (h *PhotoHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}

	file, err := h.storage.ReadFile(key)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	// Determine content type from file extension
	ext := filepath.Ext(key)
	contentType := "application/octet-stream"
	switch ext {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".gif":
		contentType = "image/gif"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")

	io.Copy(w, file)
}
