// Package mock provides a mock review backend for testing.
package mock

import (
	"context"

	"github.com/isavita/coderev/internal/provider"
)

// Provider is a mock review backend for testing.
type Provider struct {
	// ReviewFunc allows customizing the Review behavior.
	ReviewFunc func(ctx context.Context, req *provider.ReviewRequest) (*provider.ReviewResponse, error)

	// ReviewCalls tracks calls to Review.
	ReviewCalls []*provider.ReviewRequest
}

// New creates a new mock provider with default behavior.
func New() *Provider {
	return &Provider{}
}

// Name returns "mock".
func (p *Provider) Name() string {
	return "mock"
}

// Review records the call and returns a canned review, or delegates to
// ReviewFunc when set.
func (p *Provider) Review(ctx context.Context, req *provider.ReviewRequest) (*provider.ReviewResponse, error) {
	p.ReviewCalls = append(p.ReviewCalls, req)

	if p.ReviewFunc != nil {
		return p.ReviewFunc(ctx, req)
	}

	return &provider.ReviewResponse{
		Content: "## Mock Review\n\nLooks good to me.",
	}, nil
}
