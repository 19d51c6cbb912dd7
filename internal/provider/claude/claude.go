// Package claude provides a review backend using Anthropic's Claude API.
package claude

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/isavita/coderev/internal/provider"
)

// DefaultModel is used when a routed model name is empty.
const DefaultModel = "claude-sonnet-4-20250514"

// Provider implements the provider.Provider interface using Claude.
type Provider struct {
	client anthropic.Client
}

// New creates a new Claude provider with the given API key.
func New(apiKey string) (*Provider, error) {
	if apiKey == "" {
		return nil, errors.New("anthropic API key not set; set ANTHROPIC_API_KEY")
	}

	return &Provider{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
	}, nil
}

// Name returns "claude".
func (p *Provider) Name() string {
	return "claude"
}

// Review sends the prompt to the Messages API and returns the feedback text.
func (p *Provider) Review(ctx context.Context, req *provider.ReviewRequest) (*provider.ReviewResponse, error) {
	model := req.Model
	if model == "" {
		model = DefaultModel
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = provider.DefaultMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   int64(maxTokens),
		Temperature: anthropic.Float(req.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.UserPrompt)),
		},
	}
	if req.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: req.SystemPrompt},
		}
	}

	resp, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("claude API error: %w", err)
	}

	text := extractTextContent(resp)
	if text == "" {
		return nil, errors.New("empty response from Claude")
	}

	return &provider.ReviewResponse{
		Content:    text,
		TokensUsed: int(resp.Usage.InputTokens + resp.Usage.OutputTokens),
	}, nil
}

// Models returns the Claude models coderev knows about.
func Models() []provider.ModelInfo {
	return []provider.ModelInfo{
		{ID: "claude-sonnet-4-20250514", Description: "Balanced speed and quality"},
		{ID: "claude-opus-4-20250514", Description: "Highest quality, slower"},
		{ID: "claude-3-5-haiku-20241022", Description: "Fastest, lower cost"},
	}
}

// extractTextContent extracts the text content from a Claude response.
func extractTextContent(resp *anthropic.Message) string {
	for _, block := range resp.Content {
		if block.Type == "text" {
			return block.Text
		}
	}
	return ""
}
