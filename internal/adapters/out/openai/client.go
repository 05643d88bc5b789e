// Package openai implements the generative responder against an
// OpenAI-compatible chat completions API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"support/internal/pkg/errs"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-3.5-turbo"

	// Replies are kept short: one or two sentences per the prompt, and a
	// hard token ceiling as a cost guard.
	maxTokens   = 100
	temperature = 0.7

	systemPrompt = "You are a helpful customer support assistant for an e-commerce company. " +
		"Keep responses brief (1-2 sentences), friendly, and professional. " +
		"For order-specific questions, ask for order numbers. " +
		"For general questions, provide helpful information about policies, company info, etc."
)

// Client calls a chat completions endpoint to answer general questions.
// It implements ports.GenerativeResponder.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API host, e.g. a proxy or a
// test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithModel overrides the completion model.
func WithModel(model string) Option {
	return func(c *Client) {
		c.model = model
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a responder authenticated with the given API key.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errs.NewValueIsRequiredError("apiKey")
	}

	client := &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		model:      defaultModel,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Reply sends the customer message with the support system prompt and
// returns the model's answer.
func (c *Client) Reply(ctx context.Context, userText string) (string, error) {
	if strings.TrimSpace(userText) == "" {
		return "", errs.NewValueIsRequiredError("userText")
	}

	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userText},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", errs.NewInfrastructureError("openai", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/chat/completions",
		bytes.NewReader(payload),
	)
	if err != nil {
		return "", errs.NewInfrastructureError("openai", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errs.NewInfrastructureError("openai", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", errs.NewInfrastructureError("openai", err)
	}

	var parsed chatResponse
	if err = json.Unmarshal(body, &parsed); err != nil {
		return "", errs.NewInfrastructureError("openai",
			fmt.Errorf("decoding response (status %d): %w", resp.StatusCode, err))
	}

	if resp.StatusCode != http.StatusOK {
		message := "request failed"
		if parsed.Error != nil {
			message = parsed.Error.Message
		}
		return "", errs.NewInfrastructureError("openai",
			fmt.Errorf("status %d: %s", resp.StatusCode, message))
	}
	if len(parsed.Choices) == 0 {
		return "", errs.NewInfrastructureError("openai",
			fmt.Errorf("response contains no choices"))
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
