// Package generator orchestrates one generation request: validate the story,
// build the prompts, call the completion service, and parse the reply into a
// suite. Each call is independent; a Generator holds no per-request state and
// is safe for concurrent use.
package generator

import (
	"context"
	"fmt"

	"github.com/testgen-ai/testgen/internal/config"
	"github.com/testgen-ai/testgen/internal/llm"
	"github.com/testgen-ai/testgen/internal/prompt"
	"github.com/testgen-ai/testgen/internal/suite"
)

// Generator runs the validate → prompt → complete → parse pipeline.
type Generator struct {
	client llm.Client
}

// New creates a Generator backed by the OpenAI-compatible client described by
// the configuration. Fails when no API key is configured.
func New(cfg *config.Configuration) (*Generator, error) {
	client, err := llm.NewOpenAIClient(llm.Config{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		Timeout:     cfg.RequestTimeout(),
		MaxRetries:  cfg.MaxRetries,
	})
	if err != nil {
		return nil, err
	}
	return &Generator{client: client}, nil
}

// NewWithClient creates a Generator with a caller-supplied completion client.
func NewWithClient(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Generate produces a test suite for the given user story and optional
// acceptance criteria. There is no partial-success mode: the result is a
// complete suite or an error.
func (g *Generator) Generate(ctx context.Context, story string, criteria []string) (*suite.Suite, error) {
	in, err := suite.ValidateStory(story, criteria)
	if err != nil {
		return nil, err
	}

	reply, err := g.client.Complete(ctx, prompt.System(), prompt.User(in))
	if err != nil {
		return nil, fmt.Errorf("generating test cases: %w", err)
	}

	return suite.Parse(reply)
}
