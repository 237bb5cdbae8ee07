package http

import (
	"io"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/gorilla/mux"

	"ngobooks-backend/internal/logger"
	"ngobooks-backend/internal/storage"
)

// UploadHandler serves stored receipt images back over HTTP.
type UploadHandler struct {
	store storage.Storage
}

func NewUploadHandler(store storage.Storage) *UploadHandler {
	return &UploadHandler{store: store}
}

func (h *UploadHandler) Serve(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	f, err := h.store.Open(key)
	if err != nil {
		if os.IsNotExist(err) {
			writeFail(w, http.StatusNotFound, "Not found")
			return
		}
		writeError(w, err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", contentTypeForKey(key))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := io.Copy(w, f); err != nil {
		logger.Warn("failed to stream upload", "key", key, "error", err)
	}
}

func contentTypeForKey(key string) string {
	switch strings.ToLower(path.Ext(key)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}
