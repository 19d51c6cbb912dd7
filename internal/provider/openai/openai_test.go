package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/isavita/coderev/internal/provider"
)

func TestNew_RequiresKey(t *testing.T) {
	if _, err := New("", ""); err == nil {
		t.Error("expected error when API key is empty")
	}
}

func TestReview(t *testing.T) {
	var gotReq chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Error("missing or wrong Authorization header")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request: %v", err)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "## Review\n\nFine."}},
			},
			"usage": map[string]any{"total_tokens": 42},
		})
	}))
	defer server.Close()

	p, err := New("test-key", server.URL)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	resp, err := p.Review(context.Background(), &provider.ReviewRequest{
		Model:        "gpt-4o",
		SystemPrompt: "You are a reviewer.",
		UserPrompt:   "Review this diff.",
		Temperature:  0,
	})
	if err != nil {
		t.Fatalf("Review() failed: %v", err)
	}

	if resp.Content != "## Review\n\nFine." {
		t.Errorf("Content = %q", resp.Content)
	}
	if resp.TokensUsed != 42 {
		t.Errorf("TokensUsed = %d, want 42", resp.TokensUsed)
	}

	if gotReq.Model != "gpt-4o" {
		t.Errorf("request model = %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" {
		t.Errorf("unexpected messages: %+v", gotReq.Messages)
	}
	// Temperature zero must still be transmitted.
	if gotReq.Temperature != 0 {
		t.Errorf("Temperature = %v, want 0", gotReq.Temperature)
	}
}

func TestReview_AuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	defer server.Close()

	p, _ := New("bad-key", server.URL)

	_, err := p.Review(context.Background(), &provider.ReviewRequest{Model: "gpt-4o", UserPrompt: "x"})
	if err == nil {
		t.Fatal("expected auth error")
	}
}

func TestReview_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	p, _ := New("test-key", server.URL)

	_, err := p.Review(context.Background(), &provider.ReviewRequest{Model: "gpt-4o", UserPrompt: "x"})
	if err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestReview_NoRetry(t *testing.T) {
	// Failures are fatal for the invocation: exactly one attempt is made.
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer server.Close()

	p, _ := New("test-key", server.URL)

	_, err := p.Review(context.Background(), &provider.ReviewRequest{Model: "gpt-4o", UserPrompt: "x"})
	if err == nil {
		t.Fatal("expected rate limit error")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}
