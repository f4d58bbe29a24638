package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"personaljournal/internal/models"
	"personaljournal/internal/store"
)

// EntryStore is the slice of the store the entry handlers depend on.
type EntryStore interface {
	ListEntries(ctx context.Context, includePrivate bool) ([]models.Entry, error)
	GetEntryByID(ctx context.Context, id string) (*models.Entry, error)
	CreateEntry(ctx context.Context, entry models.Entry) (*models.Entry, error)
	UpdateEntry(ctx context.Context, id string, update models.EntryUpdate) error
	DeleteEntry(ctx context.Context, id string) error
}

// EntryHandler serves the admin CRUD API over journal entries. These routes
// carry no authentication; the site has no login layer yet.
type EntryHandler struct {
	store EntryStore
}

func NewEntryHandler(s EntryStore) *EntryHandler {
	return &EntryHandler{store: s}
}

type createEntryRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Mood       string   `json:"mood"`
	Slug       string   `json:"slug"`
	CoverImage string   `json:"coverImage"`
	Date       string   `json:"date"`
	Tags       []string `json:"tags"`
	Private    bool     `json:"private"`
}

// updateEntryRequest mirrors models.EntryUpdate on the wire. Unknown fields
// are rejected at decode time so typos never pass through silently.
type updateEntryRequest struct {
	Slug       *string   `json:"slug"`
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	Mood       *string   `json:"mood"`
	CoverImage *string   `json:"coverImage"`
	Date       *string   `json:"date"`
	Tags       *[]string `json:"tags"`
	Private    *bool     `json:"private"`
}

// ListEntries returns every entry, private ones included. This is the admin
// view; the public site goes through the posts routes.
func (h *EntryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	entries, err := h.store.ListEntries(ctx, true)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch entries")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"entries": entries})
}

// GetEntry returns one entry by id, 404 when the id is unknown or malformed.
func (h *EntryHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	entry, err := h.store.GetEntryByID(ctx, chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Entry not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch entry")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"entry": entry})
}

// CreateEntry validates the payload and persists a new entry. title, content,
// mood and slug are required; mood must be one of models.ValidMoods.
func (h *EntryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Title == "" || req.Content == "" || req.Mood == "" || req.Slug == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields: title, content, mood, and slug are required")
		return
	}
	if !models.IsValidMood(req.Mood) {
		writeError(w, http.StatusBadRequest, "Invalid mood. Must be one of: "+strings.Join(models.ValidMoods, ", "))
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date format")
			return
		}
		date = parsed
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	entry, err := h.store.CreateEntry(ctx, models.Entry{
		Slug:       req.Slug,
		Title:      req.Title,
		Content:    req.Content,
		Mood:       req.Mood,
		CoverImage: req.CoverImage,
		Date:       date,
		Tags:       tags,
		Private:    req.Private,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create entry")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"entry": entry})
}

// UpdateEntry applies a partial update. Only provided fields change; mood is
// validated when present and updatedAt is refreshed by the store.
func (h *EntryHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var req updateEntryRequest
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Mood != nil && !models.IsValidMood(*req.Mood) {
		writeError(w, http.StatusBadRequest, "Invalid mood. Must be one of: "+strings.Join(models.ValidMoods, ", "))
		return
	}

	update := models.EntryUpdate{
		Slug:       req.Slug,
		Title:      req.Title,
		Content:    req.Content,
		Mood:       req.Mood,
		CoverImage: req.CoverImage,
		Tags:       req.Tags,
		Private:    req.Private,
	}
	if req.Date != nil {
		parsed, err := parseDate(*req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date format")
			return
		}
		update.Date = &parsed
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	id := chi.URLParam(r, "id")
	err := h.store.UpdateEntry(ctx, id, update)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Entry not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update entry")
		return
	}

	entry, err := h.store.GetEntryByID(ctx, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update entry")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"entry": entry})
}

// DeleteEntry removes an entry for good. Deleting an unknown id answers 404,
// so repeating a delete is harmless.
func (h *EntryHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	err := h.store.DeleteEntry(ctx, chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Entry not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete entry")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Entry deleted successfully"})
}

// parseDate accepts RFC 3339 timestamps and plain dates, the two formats the
// admin frontend sends.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
