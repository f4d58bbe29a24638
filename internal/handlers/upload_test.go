package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"personaljournal/internal/services"
)

func TestUploadFileServiceUnavailable(t *testing.T) {
	h := NewUploadHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	rec := httptest.NewRecorder()
	h.UploadFile(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestUploadFileRequiresFileField(t *testing.T) {
	svc, err := services.NewCloudinaryService("demo", "key", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h := NewUploadHandler(svc)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	mw.WriteField("folder", "journal")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.UploadFile(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
