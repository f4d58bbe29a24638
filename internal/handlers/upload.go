package handlers

import (
	"net/http"

	"personaljournal/internal/services"
)

const defaultUploadFolder = "journal"

// UploadHandler accepts cover-image uploads and forwards them to Cloudinary.
// With no Cloudinary credentials the service is nil and the route answers 500.
type UploadHandler struct {
	cloudinary *services.CloudinaryService
}

func NewUploadHandler(svc *services.CloudinaryService) *UploadHandler {
	return &UploadHandler{cloudinary: svc}
}

// UploadFile takes a multipart "file" field and returns the hosted URL for
// the entry's coverImage field.
func (h *UploadHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	if h.cloudinary == nil {
		writeError(w, http.StatusInternalServerError, "Upload service is not available")
		return
	}

	// 10MB cap on cover images
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to parse form")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	folder := r.URL.Query().Get("folder")
	if folder == "" {
		folder = defaultUploadFolder
	}

	url, err := h.cloudinary.UploadImage(r.Context(), file, folder)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"url": url})
}
