package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/atamiles/vlures-bench/internal/config"
)

// VLMClient handles HTTP requests to an OpenAI-compatible chat completions
// endpoint. Each call is a single attempt; callers own the retry policy.
type VLMClient struct {
	httpClient      *http.Client
	rateLimiterPool *RateLimiterPool
	cfg             config.EndpointConfig
	apiKey          string
	logger          *slog.Logger
}

// NewVLMClient creates a client for the configured VLM endpoint.
func NewVLMClient(cfg config.EndpointConfig, apiKey string, logger *slog.Logger) *VLMClient {
	return &VLMClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		rateLimiterPool: NewRateLimiterPool(),
		cfg:             cfg,
		apiKey:          apiKey,
		logger:          logger,
	}
}

// ChatCompletion sends one chat completion request and returns the first
// choice's content.
func (c *VLMClient) ChatCompletion(ctx context.Context, messages []Message) (string, error) {
	modelID := fmt.Sprintf("%s:%s", c.cfg.BaseURL, c.cfg.Model)
	if err := c.rateLimiterPool.Wait(ctx, modelID, c.cfg.RateLimitPerMinute); err != nil {
		return "", fmt.Errorf("rate limiter wait failed: %w", err)
	}

	req := ChatCompletionRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
		N:           1,
	}

	resp, err := c.doRequest(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *VLMClient) doRequest(ctx context.Context, req ChatCompletionRequest) (*ChatCompletionResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := c.cfg.BaseURL
	if endpoint[len(endpoint)-1] != '/' {
		endpoint += "/"
	}
	endpoint += "chat/completions"

	httpReq, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	} else {
		c.logger.Warn("API request without key", "endpoint", endpoint)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &APIError{
			Message:    fmt.Sprintf("request failed: %v", err),
			StatusCode: 0,
			Retryable:  true,
		}
	}
	defer func() {
		if err := httpResp.Body.Close(); err != nil {
			c.logger.Warn("Failed to close response body", "error", err)
		}
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		isRetryable := IsStatusCodeRetryable(httpResp.StatusCode)

		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Message != "" {
			return nil, &APIError{
				Message:    errResp.Error.Message,
				StatusCode: httpResp.StatusCode,
				Type:       errResp.Error.Type,
				Code:       errResp.Error.Code,
				Retryable:  isRetryable,
			}
		}

		return nil, &APIError{
			Message:    fmt.Sprintf("API request failed with status %d: %s", httpResp.StatusCode, string(respBody)),
			StatusCode: httpResp.StatusCode,
			Retryable:  isRetryable,
		}
	}

	var resp ChatCompletionResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, &APIError{
			Message:   fmt.Sprintf("failed to parse response: %v", err),
			Retryable: true,
		}
	}

	if len(resp.Choices) == 0 {
		return nil, &APIError{
			Message:   "no choices returned in response",
			Retryable: true,
		}
	}

	return &resp, nil
}

// IsStatusCodeRetryable reports whether an HTTP status indicates a
// transient failure.
func IsStatusCodeRetryable(statusCode int) bool {
	// Retry on rate limits and server errors
	return statusCode == http.StatusTooManyRequests ||
		statusCode == http.StatusInternalServerError ||
		statusCode == http.StatusBadGateway ||
		statusCode == http.StatusServiceUnavailable ||
		statusCode == http.StatusGatewayTimeout
}

// APIError represents an error returned by the API
type APIError struct {
	Message    string
	StatusCode int
	Type       string
	Code       string
	Retryable  bool
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error: %s", e.Message)
}

// IsRetryable reports whether an error is a transient API failure worth
// another attempt.
func IsRetryable(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Retryable
	}
	return false
}
