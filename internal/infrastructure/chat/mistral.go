// Package chat implements the ChatCompleter port against the Mistral
// chat-completions API. The proxy is stateless: one user message in,
// one reply out.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopstack/storefront-api/internal/core/domain"
)

const (
	defaultBaseURL = "https://api.mistral.ai"
	defaultModel   = "mistral-medium"
	defaultTimeout = 30 * time.Second

	// fallbackReply is returned when the provider answers 200 with no
	// choices.
	fallbackReply = "No response from AI"
)

// Config captures the settings for the Mistral client.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
}

// MistralClient calls the chat-completions endpoint.
type MistralClient struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

func NewMistralClient(cfg Config) *MistralClient {
	c := &MistralClient{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		http:    cfg.HTTPClient,
	}
	if c.model == "" {
		c.model = defaultModel
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: defaultTimeout}
	}
	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends a single user message and returns the first choice's
// content.
func (c *MistralClient) Complete(ctx context.Context, message string) (string, error) {
	if c.apiKey == "" {
		return "", domain.ErrProviderNotConfigured
	}

	body, err := json.Marshal(completionRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: message}},
	})
	if err != nil {
		return "", fmt.Errorf("encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("call completion api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain for connection reuse; the payload is never exposed.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("completion api returned status %d", resp.StatusCode)
	}

	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}

	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return fallbackReply, nil
	}
	return out.Choices[0].Message.Content, nil
}
