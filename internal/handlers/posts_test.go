package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"personaljournal/internal/models"
	"personaljournal/internal/store"
)

type stubArticleStore struct {
	listArticlesFn func(ctx context.Context, limit, skip int64) ([]models.Article, error)
	getBySlugFn    func(ctx context.Context, slug string) (*models.Article, error)
	listEntriesFn  func(ctx context.Context, includePrivate bool) ([]models.Entry, error)
}

func (s *stubArticleStore) ListArticles(ctx context.Context, limit, skip int64) ([]models.Article, error) {
	return s.listArticlesFn(ctx, limit, skip)
}

func (s *stubArticleStore) GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	return s.getBySlugFn(ctx, slug)
}

func (s *stubArticleStore) ListEntries(ctx context.Context, includePrivate bool) ([]models.Entry, error) {
	return s.listEntriesFn(ctx, includePrivate)
}

func newPostsRouter(s ArticleStore) *chi.Mux {
	h := NewPostHandler(s)
	r := chi.NewRouter()
	r.Get("/api/posts", h.ListPosts)
	r.Get("/api/posts/from-entries", h.ListPostsFromEntries)
	r.Get("/api/posts/{slug}", h.GetPost)
	return r
}

func TestListPostsPaging(t *testing.T) {
	var gotLimit, gotSkip int64
	r := newPostsRouter(&stubArticleStore{
		listArticlesFn: func(ctx context.Context, limit, skip int64) ([]models.Article, error) {
			gotLimit, gotSkip = limit, skip
			return []models.Article{}, nil
		},
	})

	rec := doRequest(t, r, http.MethodGet, "/api/posts?limit=3&skip=6", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotLimit != 3 || gotSkip != 6 {
		t.Errorf("limit/skip = %d/%d, want 3/6", gotLimit, gotSkip)
	}
}

func TestListPostsPagingDefaults(t *testing.T) {
	var gotLimit, gotSkip int64
	r := newPostsRouter(&stubArticleStore{
		listArticlesFn: func(ctx context.Context, limit, skip int64) ([]models.Article, error) {
			gotLimit, gotSkip = limit, skip
			return []models.Article{}, nil
		},
	})

	rec := doRequest(t, r, http.MethodGet, "/api/posts?limit=bogus", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotLimit != 10 || gotSkip != 0 {
		t.Errorf("limit/skip = %d/%d, want defaults 10/0", gotLimit, gotSkip)
	}
}

func TestGetPostNotFound(t *testing.T) {
	r := newPostsRouter(&stubArticleStore{
		getBySlugFn: func(ctx context.Context, slug string) (*models.Article, error) {
			return nil, store.ErrNotFound
		},
	})

	rec := doRequest(t, r, http.MethodGet, "/api/posts/missing-slug", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestListPostsFromEntriesExcludesPrivate(t *testing.T) {
	r := newPostsRouter(&stubArticleStore{
		listEntriesFn: func(ctx context.Context, includePrivate bool) ([]models.Entry, error) {
			if includePrivate {
				t.Errorf("public feed must not ask for private entries")
			}
			return []models.Entry{{
				Slug:    "rainy-sunday",
				Title:   "Rainy Sunday",
				Content: "Rain all day.",
				Mood:    "Peaceful",
				Date:    time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			}}, nil
		},
	})

	rec := doRequest(t, r, http.MethodGet, "/api/posts/from-entries", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Posts []models.Article `json:"posts"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if len(resp.Posts) != 1 {
		t.Fatalf("got %d posts, want 1", len(resp.Posts))
	}
	if resp.Posts[0].Category != "Peaceful" {
		t.Errorf("mapped category = %q, want the mood", resp.Posts[0].Category)
	}
	if !strings.Contains(resp.Posts[0].ReadTime, "min read") {
		t.Errorf("readTime = %q", resp.Posts[0].ReadTime)
	}
}
