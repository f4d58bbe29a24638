package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"personaljournal/internal/models"
	"personaljournal/internal/store"
)

// ArticleStore is the read-only slice of the store the public posts routes
// depend on.
type ArticleStore interface {
	ListArticles(ctx context.Context, limit, skip int64) ([]models.Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error)
	ListEntries(ctx context.Context, includePrivate bool) ([]models.Entry, error)
}

// PostHandler serves the public site's published posts.
type PostHandler struct {
	store ArticleStore
}

func NewPostHandler(s ArticleStore) *PostHandler {
	return &PostHandler{store: s}
}

// ListPosts returns published articles, newest first. limit and skip query
// parameters page through the feed (defaults 10 and 0).
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	limit := int64(10)
	if s := r.URL.Query().Get("limit"); s != "" {
		if parsed, err := strconv.ParseInt(s, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	skip := int64(0)
	if s := r.URL.Query().Get("skip"); s != "" {
		if parsed, err := strconv.ParseInt(s, 10, 64); err == nil && parsed >= 0 {
			skip = parsed
		}
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	posts, err := h.store.ListArticles(ctx, limit, skip)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"posts": posts})
}

// GetPost returns one published article by its public slug.
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	post, err := h.store.GetArticleBySlug(ctx, chi.URLParam(r, "slug"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch post")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"post": post})
}

// ListPostsFromEntries renders the non-private journal entries through the
// article mapping, so the public pages can show them alongside the published
// feed. Private entries never appear here.
func (h *PostHandler) ListPostsFromEntries(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	entries, err := h.store.ListEntries(ctx, false)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	posts := make([]models.Article, 0, len(entries))
	for _, e := range entries {
		posts = append(posts, models.ArticleFromEntry(e))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"posts": posts})
}
