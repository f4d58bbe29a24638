package routes

import (
	"github.com/go-chi/chi/v5"

	"personaljournal/internal/handlers"
)

// Setup registers all routes. The entry management routes are intentionally
// unauthenticated for now; the site has no login layer.
func Setup(r *chi.Mux, entries *handlers.EntryHandler, posts *handlers.PostHandler, contact *handlers.ContactHandler, upload *handlers.UploadHandler, ai *handlers.AIHandler) {
	// Journal entry management (admin)
	r.Get("/api/entries", entries.ListEntries)
	r.Post("/api/entries", entries.CreateEntry)
	r.Get("/api/entries/{id}", entries.GetEntry)
	r.Put("/api/entries/{id}", entries.UpdateEntry)
	r.Delete("/api/entries/{id}", entries.DeleteEntry)

	// Published posts (public site)
	r.Get("/api/posts", posts.ListPosts)
	r.Get("/api/posts/from-entries", posts.ListPostsFromEntries)
	r.Get("/api/posts/{slug}", posts.GetPost)

	// Contact form
	r.Post("/api/contact", contact.SubmitContact)
	r.Get("/api/admin/contacts", contact.GetContacts)
	r.Delete("/api/admin/contacts", contact.DeleteContact)

	// Cover image uploads
	r.Post("/api/upload", upload.UploadFile)

	// AI writing helpers
	r.Post("/api/ai/generate", ai.Generate)
	r.Post("/api/ai/excerpt", ai.Excerpt)
	r.Post("/api/ai/tags", ai.Tags)
	r.Post("/api/ai/title", ai.Title)
	r.Post("/api/ai/enhance", ai.Enhance)
	r.Post("/api/ai/prompts", ai.Prompts)
}
