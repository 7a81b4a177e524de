package llm

import (
	"context"
	"errors"
)

// Client abstracts generative-language providers behind a single prompt call.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrNotConfigured is returned when no provider credentials are present.
var ErrNotConfigured = errors.New("inference client not configured")

// PlaceholderClient is the stand-in wired when no API key is configured.
// Callers are expected to treat its error as a fallback trigger.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}
