// Package provider defines the interface for the LLM backends used for code
// review. Implementations exist for Anthropic, OpenAI-compatible APIs, and
// local Ollama servers, all presenting a consistent interface to the rest of
// the application.
package provider

import "context"

// DefaultMaxTokens limits the review response length when the caller does
// not specify one.
const DefaultMaxTokens = 4096

// Provider defines the interface for AI-powered code review backends.
type Provider interface {
	// Name returns the provider identifier (e.g., "claude", "openai").
	Name() string

	// Review sends a review prompt to the model and returns its feedback.
	Review(ctx context.Context, req *ReviewRequest) (*ReviewResponse, error)
}

// ReviewRequest contains one fully-assembled review prompt.
type ReviewRequest struct {
	// Model is the bare model identifier to use for this call.
	Model string

	// SystemPrompt is the reviewer persona system message.
	SystemPrompt string

	// UserPrompt is the assembled review request including the diff.
	UserPrompt string

	// Temperature controls response randomness. The accepted range is
	// [0, 2]; zero is a meaningful value and is always sent.
	Temperature float64

	// MaxTokens limits the response length. Zero means DefaultMaxTokens.
	MaxTokens int
}

// ReviewResponse contains the model's free-text review feedback.
type ReviewResponse struct {
	// Content is the markdown-formatted review.
	Content string

	// TokensUsed is the total token count reported by the backend,
	// when available.
	TokensUsed int
}

// ModelInfo describes an available model.
type ModelInfo struct {
	// ID is the model identifier to use in API calls.
	ID string

	// Description provides additional context about the model.
	Description string
}
