package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	openAIBaseURL = "https://api.openai.com/v1"
	openAIModel   = "gpt-4-turbo-preview"
)

// ErrGenerationFailed is returned when the completion API errors or comes
// back with no content.
var ErrGenerationFailed = errors.New("generation failed")

// AIService wraps the OpenAI chat completions API for the journal's writing
// helpers. Every method is a single stateless request/response mapping;
// failures surface immediately with no retries and no streaming.
type AIService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewAIService(apiKey string) *AIService {
	return &AIService{
		apiKey:  apiKey,
		baseURL: openAIBaseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// complete sends one chat completion and returns the first choice's content.
func (s *AIService) complete(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: openAIModel,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: completion API returned status %d", ErrGenerationFailed, resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: completion returned no content", ErrGenerationFailed)
	}
	return parsed.Choices[0].Message.Content, nil
}

// GenerateJournalEntry drafts a full journal entry from a writing prompt in
// the given tone. Tone defaults to "warm and intimate".
func (s *AIService) GenerateJournalEntry(ctx context.Context, prompt, tone string) (string, error) {
	if tone == "" {
		tone = "warm and intimate"
	}
	system := fmt.Sprintf("You are a thoughtful personal journal writer. Write in a %s tone that feels authentic, "+
		"vulnerable, and reflective. Use natural, conversational language as if writing in a personal diary. "+
		"Include sensory details, personal observations, and genuine emotions. Avoid cliches and write with "+
		"sincerity and depth.", tone)
	return s.complete(ctx, system, prompt, 0.8, 1000)
}

// GenerateExcerpt summarizes journal content into an excerpt of roughly
// maxLength characters (default 150).
func (s *AIService) GenerateExcerpt(ctx context.Context, content string, maxLength int) (string, error) {
	if maxLength <= 0 {
		maxLength = 150
	}
	system := "Create a compelling excerpt that captures the essence of this journal entry. Make it intriguing and personal."
	user := fmt.Sprintf("Create a %d-character excerpt from this journal entry:\n\n%s", maxLength, content)
	return s.complete(ctx, system, user, 0.7, 100)
}

// SuggestTags asks for 3-5 tags and splits the comma-separated reply into a
// trimmed list.
func (s *AIService) SuggestTags(ctx context.Context, title, content string) ([]string, error) {
	system := "Suggest 3-5 relevant tags for this journal entry. Return only the tags as a comma-separated list."
	user := fmt.Sprintf("Title: %s\n\nContent: %s", title, content)

	reply, err := s.complete(ctx, system, user, 0.5, 50)
	if err != nil {
		return nil, err
	}

	parts := strings.Split(reply, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tags = append(tags, strings.TrimSpace(part))
	}
	return tags, nil
}

// GenerateTitle produces an entry title from a prompt or draft content.
func (s *AIService) GenerateTitle(ctx context.Context, prompt string) (string, error) {
	system := "Create a thoughtful, personal journal entry title. Make it intimate and reflective, not clickbait-y. Keep it under 60 characters."
	return s.complete(ctx, system, prompt, 0.7, 30)
}

// EnhanceWriting reworks content following the caller's instruction while
// keeping the author's voice.
func (s *AIService) EnhanceWriting(ctx context.Context, content, instruction string) (string, error) {
	system := "You are a helpful writing assistant for personal journaling. Maintain the author's authentic voice while providing thoughtful enhancements."
	user := fmt.Sprintf("%s\n\nOriginal text:\n%s", instruction, content)
	return s.complete(ctx, system, user, 0.7, 1500)
}

// GenerateJournalPrompts returns count reflective prompts for a category.
// Defaults: "general", 5.
func (s *AIService) GenerateJournalPrompts(ctx context.Context, category string, count int) (string, error) {
	if category == "" {
		category = "general"
	}
	if count <= 0 {
		count = 5
	}
	system := "Generate thoughtful, introspective journal prompts that encourage deep reflection and personal growth."
	user := fmt.Sprintf("Generate %d journal prompts for the category: %s", count, category)
	return s.complete(ctx, system, user, 0.8, 300)
}
