package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"personaljournal/pkg/clientip"
)

// ContactHandler stores contact-form submissions in PostgreSQL. The handler
// works with a nil db when POSTGRES_URI is unset; its routes then answer 500.
type ContactHandler struct {
	db *sql.DB
}

func NewContactHandler(db *sql.DB) *ContactHandler {
	return &ContactHandler{db: db}
}

type submitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SubmitContact validates and records one contact-form submission.
func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		writeError(w, http.StatusInternalServerError, "Contact form is not available")
		return
	}

	var req submitContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "Message is required")
		return
	}
	if len(req.Message) < 10 {
		writeError(w, http.StatusBadRequest, "Message must be at least 10 characters long")
		return
	}

	_, err := h.db.Exec(`
		INSERT INTO contact_us (id, created_at, name, email, message, ip_address)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.New(), time.Now(), req.Name, req.Email, req.Message, clientip.RealClientIP(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to submit contact form")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"message": "Thanks for reaching out! I'll get back to you soon."})
}

// GetContacts returns every submission, newest first (admin view).
func (h *ContactHandler) GetContacts(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		writeError(w, http.StatusInternalServerError, "Contact form is not available")
		return
	}

	rows, err := h.db.Query(`
		SELECT id, created_at, name, email, message, ip_address
		FROM contact_us
		ORDER BY created_at DESC
	`)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch contacts")
		return
	}
	defer rows.Close()

	contacts := make([]map[string]interface{}, 0)
	for rows.Next() {
		var id string
		var createdAt time.Time
		var name, email, message string
		var ipAddress sql.NullString

		if err := rows.Scan(&id, &createdAt, &name, &email, &message, &ipAddress); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to fetch contacts")
			return
		}

		contact := map[string]interface{}{
			"id":        id,
			"name":      name,
			"email":     email,
			"message":   message,
			"createdAt": createdAt,
		}
		if ipAddress.Valid {
			contact["ipAddress"] = ipAddress.String
		}
		contacts = append(contacts, contact)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"contacts": contacts})
}

// DeleteContact removes one submission by the id query parameter.
func (h *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		writeError(w, http.StatusInternalServerError, "Contact form is not available")
		return
	}

	contactID := r.URL.Query().Get("id")
	if contactID == "" {
		writeError(w, http.StatusBadRequest, "Contact ID is required")
		return
	}
	if _, err := uuid.Parse(contactID); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid contact ID")
		return
	}

	result, err := h.db.Exec(`DELETE FROM contact_us WHERE id = $1`, contactID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete contact")
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		writeError(w, http.StatusNotFound, "Contact not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Contact deleted successfully"})
}
