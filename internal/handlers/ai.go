package handlers

import (
	"encoding/json"
	"net/http"

	"personaljournal/internal/services"
)

// AIHandler exposes the writing helpers over HTTP for the admin editor. With
// no OPENAI_API_KEY the service is nil and every route answers 500.
type AIHandler struct {
	ai *services.AIService
}

func NewAIHandler(ai *services.AIService) *AIHandler {
	return &AIHandler{ai: ai}
}

func (h *AIHandler) available(w http.ResponseWriter) bool {
	if h.ai == nil {
		writeError(w, http.StatusInternalServerError, "AI service is not available")
		return false
	}
	return true
}

type generateRequest struct {
	Prompt string `json:"prompt"`
	Tone   string `json:"tone"`
}

// Generate drafts a journal entry from a prompt in an optional tone.
func (h *AIHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Prompt == "" {
		writeError(w, http.StatusBadRequest, "Prompt is required")
		return
	}

	text, err := h.ai.GenerateJournalEntry(r.Context(), req.Prompt, req.Tone)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate journal entry")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"text": text})
}

type excerptRequest struct {
	Content   string `json:"content"`
	MaxLength int    `json:"maxLength"`
}

// Excerpt summarizes entry content into a short public excerpt.
func (h *AIHandler) Excerpt(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}

	var req excerptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "Content is required")
		return
	}

	excerpt, err := h.ai.GenerateExcerpt(r.Context(), req.Content, req.MaxLength)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate excerpt")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"excerpt": excerpt})
}

type tagsRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Tags suggests tags for an entry from its title and content.
func (h *AIHandler) Tags(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}

	var req tagsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" && req.Content == "" {
		writeError(w, http.StatusBadRequest, "Title or content is required")
		return
	}

	tags, err := h.ai.SuggestTags(r.Context(), req.Title, req.Content)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to suggest tags")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"tags": tags})
}

type titleRequest struct {
	Prompt string `json:"prompt"`
}

// Title produces an entry title from a prompt or draft content.
func (h *AIHandler) Title(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}

	var req titleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Prompt == "" {
		writeError(w, http.StatusBadRequest, "Prompt is required")
		return
	}

	title, err := h.ai.GenerateTitle(r.Context(), req.Prompt)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate title")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"title": title})
}

type enhanceRequest struct {
	Content     string `json:"content"`
	Instruction string `json:"instruction"`
}

// Enhance reworks entry content following the given instruction.
func (h *AIHandler) Enhance(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}

	var req enhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "Content is required")
		return
	}
	if req.Instruction == "" {
		writeError(w, http.StatusBadRequest, "Instruction is required")
		return
	}

	text, err := h.ai.EnhanceWriting(r.Context(), req.Content, req.Instruction)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to enhance writing")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"text": text})
}

type promptsRequest struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Prompts returns reflective journal prompts for a category.
func (h *AIHandler) Prompts(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}

	var req promptsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	prompts, err := h.ai.GenerateJournalPrompts(r.Context(), req.Category, req.Count)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate journal prompts")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"prompts": prompts})
}
