// Package llm provides the hosted model client used for event text generation.
package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultURL   = "https://api.anthropic.com/v1/messages"
	apiVersion   = "2023-06-01"
	defaultModel = "claude-haiku-4-5-20251001"

	defaultMaxTokens = 2000
	temperature      = 0.5
)

// GenerationError is the single error variant crossing the generation
// boundary. Auth, network, quota, and malformed-response failures all surface
// as a GenerationError; callers are expected to treat them uniformly.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return "text generation failed: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func genErr(format string, args ...any) error {
	return &GenerationError{Err: fmt.Errorf(format, args...)}
}

// Client wraps the Anthropic Messages API.
type Client struct {
	apiKey     string
	model      string
	maxTokens  int
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a model API client.
// Returns nil if apiKey is empty (remote generation disabled).
func NewClient(apiKey, model string, maxTokens int) *Client {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = defaultModel
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &Client{
		apiKey:    apiKey,
		model:     model,
		maxTokens: maxTokens,
		apiURL:    defaultURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Enabled returns true if the client has a valid API key.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// message is a single chat message.
type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// request is the API request body.
type request struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	Messages    []message `json:"messages"`
}

// response is the API response body.
type response struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// GenerateText sends the prompt as a single user message and returns the
// text of the first content block. An empty content sequence (or a first
// block with no text) is an empty result, not an error. Every failure mode
// is returned as a *GenerationError.
func (c *Client) GenerateText(prompt string) (string, error) {
	if !c.Enabled() {
		return "", &GenerationError{Err: errors.New("client not configured")}
	}

	req := request{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: temperature,
		Messages: []message{
			{Role: "user", Content: prompt},
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", genErr("marshal request: %w", err)
	}

	httpReq, err := http.NewRequest("POST", c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", genErr("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", apiVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", genErr("API call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", genErr("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", genErr("API error %d: %s", resp.StatusCode, string(respBody))
	}

	var apiResp response
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", genErr("unmarshal response: %w", err)
	}

	if len(apiResp.Content) == 0 {
		return "", nil
	}

	slog.Debug("model call",
		"model", c.model,
		"input_tokens", apiResp.Usage.InputTokens,
		"output_tokens", apiResp.Usage.OutputTokens,
	)

	return apiResp.Content[0].Text, nil
}
