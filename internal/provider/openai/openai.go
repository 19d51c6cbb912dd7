// Package openai provides a review backend for OpenAI's chat completions
// API and for any OpenAI-compatible endpoint configured via base URL.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/isavita/coderev/internal/provider"
)

// DefaultBaseURL is the OpenAI chat completions endpoint.
const DefaultBaseURL = "https://api.openai.com/v1/chat/completions"

// Provider implements the provider.Provider interface using the OpenAI API.
type Provider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a new OpenAI provider. baseURL may be empty to use the
// public endpoint.
func New(apiKey, baseURL string) (*Provider, error) {
	if apiKey == "" {
		return nil, errors.New("openai API key not set; set OPENAI_API_KEY")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Provider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 120 * time.Second},
	}, nil
}

// Name returns "openai".
func (p *Provider) Name() string {
	return "openai"
}

// chatRequest is an OpenAI chat completion request.
// Temperature is always sent: zero is a deliberate review setting, not an
// absent value.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Review sends the prompt to the chat completions endpoint.
func (p *Provider) Review(ctx context.Context, req *provider.ReviewRequest) (*provider.ReviewResponse, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = provider.DefaultMaxTokens
	}

	body := chatRequest{
		Model: req.Model,
		Messages: []chatMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserPrompt},
		},
		MaxTokens:   maxTokens,
		Temperature: req.Temperature,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	httpResp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, apiError(httpResp.StatusCode, respBody)
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	if result.Error != nil {
		return nil, fmt.Errorf("openai API error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return nil, errors.New("empty response from model")
	}

	return &provider.ReviewResponse{
		Content:    result.Choices[0].Message.Content,
		TokensUsed: result.Usage.TotalTokens,
	}, nil
}

// apiError surfaces the backend's own message for credential and server
// failures; the CLI passes it through without retrying.
func apiError(status int, body []byte) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("authentication error (status %d): %s", status, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("rate limited (status %d): %s", status, body)
	default:
		return fmt.Errorf("API error (status %d): %s", status, body)
	}
}

// Models returns the OpenAI models coderev knows about.
func Models() []provider.ModelInfo {
	return []provider.ModelInfo{
		{ID: "gpt-4o", Description: "General-purpose default"},
		{ID: "gpt-4o-mini", Description: "Faster, lower cost"},
		{ID: "gpt-4-turbo", Description: "Previous generation"},
	}
}
