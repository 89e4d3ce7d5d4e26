package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/atamiles/vlures-bench/internal/config"
)

// harmCategories lists the safety categories relaxed for judge calls. The
// judge only ever sees model output to score, so blocking at the default
// threshold would silently drop evaluations.
var harmCategories = []string{
	"HARM_CATEGORY_DANGEROUS_CONTENT",
	"HARM_CATEGORY_HATE_SPEECH",
	"HARM_CATEGORY_HARASSMENT",
	"HARM_CATEGORY_SEXUALLY_EXPLICIT",
}

// geminiRequest is the generateContent request payload.
type geminiRequest struct {
	Contents         []geminiContent      `json:"contents"`
	GenerationConfig geminiGenConfig      `json:"generationConfig"`
	SafetySettings   []geminiSafetyConfig `json:"safetySettings"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens"`
	Temperature     float64 `json:"temperature"`
}

type geminiSafetyConfig struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

// geminiResponse is the subset of the generateContent response we consume.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// JudgeClient calls the Gemini generateContent endpoint used for
// LLM-as-judge scoring. Each call is a single attempt; callers own the
// retry policy.
type JudgeClient struct {
	httpClient      *http.Client
	rateLimiterPool *RateLimiterPool
	cfg             config.JudgeConfig
	apiKey          string
	logger          *slog.Logger
}

// NewJudgeClient creates a client for the configured judge endpoint.
func NewJudgeClient(cfg config.JudgeConfig, apiKey string, logger *slog.Logger) *JudgeClient {
	return &JudgeClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		rateLimiterPool: NewRateLimiterPool(),
		cfg:             cfg,
		apiKey:          apiKey,
		logger:          logger,
	}
}

// GenerateContent sends one prompt to the judge model and returns the first
// candidate's text.
func (c *JudgeClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	modelID := fmt.Sprintf("%s:%s", c.cfg.BaseURL, c.cfg.Model)
	if err := c.rateLimiterPool.Wait(ctx, modelID, c.cfg.RateLimitPerMinute); err != nil {
		return "", fmt.Errorf("rate limiter wait failed: %w", err)
	}

	safety := make([]geminiSafetyConfig, 0, len(harmCategories))
	for _, cat := range harmCategories {
		safety = append(safety, geminiSafetyConfig{Category: cat, Threshold: "BLOCK_ONLY_HIGH"})
	}

	req := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenConfig{
			MaxOutputTokens: c.cfg.MaxTokens,
			Temperature:     c.cfg.Temperature,
		},
		SafetySettings: safety,
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimSuffix(c.cfg.BaseURL, "/"), c.cfg.Model, url.QueryEscape(c.apiKey))

	httpReq, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &APIError{
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
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		isRetryable := IsStatusCodeRetryable(httpResp.StatusCode)

		var errResp geminiResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != nil {
			return "", &APIError{
				Message:    errResp.Error.Message,
				StatusCode: httpResp.StatusCode,
				Type:       errResp.Error.Status,
				Retryable:  isRetryable,
			}
		}

		return "", &APIError{
			Message:    fmt.Sprintf("judge request failed with status %d: %s", httpResp.StatusCode, string(respBody)),
			StatusCode: httpResp.StatusCode,
			Retryable:  isRetryable,
		}
	}

	var resp geminiResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", &APIError{
			Message:   fmt.Sprintf("failed to parse response: %v", err),
			Retryable: true,
		}
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &APIError{
			Message:   "no candidates returned in response",
			Retryable: true,
		}
	}

	return strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text), nil
}
