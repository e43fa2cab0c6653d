package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the OpenAI chat completions endpoint prefix.
const DefaultBaseURL = "https://api.openai.com/v1"

// OpenAIClient implements Client against an OpenAI-compatible
// /chat/completions endpoint.
type OpenAIClient struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	maxTokens   int
	maxRetries  int
	httpClient  *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Temperature is always sent: the configured value may legitimately be 0,
// which must not fall back to the service default.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// NewOpenAIClient creates a completion client. A missing API key fails here,
// before any request is attempted.
func NewOpenAIClient(cfg Config) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}

	return &OpenAIClient{
		apiKey:      cfg.APIKey,
		baseURL:     baseURL,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		maxRetries:  cfg.MaxRetries,
		httpClient:  &http.Client{Timeout: timeout},
	}, nil
}

// Complete sends the instruction pair and returns the model's reply text.
// Rate-limit and server errors are retried with exponential backoff up to the
// configured limit; other failures surface immediately.
func (c *OpenAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	// Apply the client timeout if the context has no deadline of its own.
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.httpClient.Timeout)
		defer cancel()
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(1<<uint(attempt-1)) * time.Second):
			case <-ctx.Done():
				return "", fmt.Errorf("%w: %v", ErrRequestFailed, ctx.Err())
			}
		}

		reply, retryable, err := c.doRequest(ctx, body)
		if err == nil {
			return reply, nil
		}
		if !retryable {
			return "", err
		}
		lastErr = err
	}

	return "", fmt.Errorf("%w: retries exhausted: %v", ErrRequestFailed, lastErr)
}

// doRequest performs a single completion call. The bool result reports
// whether the failure is worth retrying (rate limit, server error, transport).
func (c *OpenAIClient) doRequest(ctx context.Context, body []byte) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", true, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, fmt.Errorf("%w: reading response: %v", ErrRequestFailed, err)
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return "", true, fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}
	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var decoded chatResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return "", false, fmt.Errorf("%w: decoding response: %v", ErrRequestFailed, err)
	}
	if decoded.Error != nil {
		return "", false, fmt.Errorf("%w: %s", ErrRequestFailed, decoded.Error.Message)
	}
	if len(decoded.Choices) == 0 {
		return "", false, fmt.Errorf("%w: no completion returned", ErrRequestFailed)
	}

	return strings.TrimSpace(decoded.Choices[0].Message.Content), false, nil
}
