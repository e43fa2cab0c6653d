// Package llm provides the hosted completion client used for scenario
// generation. The Client interface is provider-agnostic; the only concrete
// implementation talks to an OpenAI-compatible chat completions endpoint.
package llm

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrMissingAPIKey is returned at construction, before any request is made.
	ErrMissingAPIKey = errors.New("API key not configured")
	// ErrRequestFailed wraps transport and service failures.
	ErrRequestFailed = errors.New("completion request failed")
)

// Client is the interface for a hosted text-completion service.
// Implementations must be stateless and safe for concurrent use.
type Client interface {
	// Complete sends a system and user instruction pair and returns the
	// model's text reply.
	Complete(ctx context.Context, system, user string) (string, error)
}

// Config holds the completion service settings, read once at initialization.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
	MaxRetries  int
}
