package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

// newTestAIService points the service at a fake completion API.
func newTestAIService(t *testing.T, handler http.HandlerFunc) *AIService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc := NewAIService("test-key")
	svc.baseURL = srv.URL
	return svc
}

func completionReply(content string) string {
	quoted, _ := json.Marshal(content)
	return `{"choices":[{"message":{"role":"assistant","content":` + string(quoted) + `}}]}`
}

func TestGenerateJournalEntry(t *testing.T) {
	var gotBody chatRequest
	var gotAuth string
	svc := newTestAIService(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotBody)
		w.Write([]byte(completionReply("Today the rain did not stop.")))
	})

	text, err := svc.GenerateJournalEntry(context.Background(), "Write about a rainy day", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Today the rain did not stop." {
		t.Errorf("text = %q", text)
	}

	if gotAuth != "Bearer test-key" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotBody.Model != "gpt-4-turbo-preview" {
		t.Errorf("model = %q", gotBody.Model)
	}
	if len(gotBody.Messages) != 2 || gotBody.Messages[0].Role != "system" || gotBody.Messages[1].Role != "user" {
		t.Fatalf("expected system+user messages, got %+v", gotBody.Messages)
	}
	// Empty tone falls back to the default
	if !strings.Contains(gotBody.Messages[0].Content, "warm and intimate") {
		t.Errorf("system prompt missing default tone: %q", gotBody.Messages[0].Content)
	}
	if gotBody.Messages[1].Content != "Write about a rainy day" {
		t.Errorf("user prompt = %q", gotBody.Messages[1].Content)
	}
}

func TestSuggestTagsSplitsReply(t *testing.T) {
	svc := newTestAIService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionReply("rain, reflection ,  quiet days")))
	})

	tags, err := svc.SuggestTags(context.Background(), "Rainy Sunday", "Rain all day.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"rain", "reflection", "quiet days"}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("tags = %v, want %v", tags, want)
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	svc := newTestAIService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := svc.GenerateTitle(context.Background(), "a title please")
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("err = %v, want ErrGenerationFailed", err)
	}
}

func TestCompleteAPIError(t *testing.T) {
	svc := newTestAIService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := svc.GenerateExcerpt(context.Background(), "content", 0)
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("err = %v, want ErrGenerationFailed", err)
	}
}

func TestGenerateJournalPromptsDefaults(t *testing.T) {
	var gotBody chatRequest
	svc := newTestAIService(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotBody)
		w.Write([]byte(completionReply("1. What made you pause today?")))
	})

	if _, err := svc.GenerateJournalPrompts(context.Background(), "", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(gotBody.Messages[1].Content, "Generate 5 journal prompts") {
		t.Errorf("count default not applied: %q", gotBody.Messages[1].Content)
	}
	if !strings.Contains(gotBody.Messages[1].Content, "category: general") {
		t.Errorf("category default not applied: %q", gotBody.Messages[1].Content)
	}
}
