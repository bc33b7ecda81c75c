// Package textgen wraps the hosted text-generation collaborator that fills
// the fixed pickup-notification template. The endpoint performs no reasoning:
// it receives the interpolated prompt and is expected to return exactly one
// string field, message.
package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/zerocycle/zerocycle-admin-backend/internal/config"
)

// Generator produces a pickup-notification message for the given input.
type Generator interface {
	GeneratePickupNotification(ctx context.Context, lang string, in PickupNotificationInput) (string, error)
}

// Client calls the hosted text-generation endpoint. With MockAPI enabled it
// returns the interpolated template directly, which is also what a healthy
// endpoint echoes back.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	mock       bool
	httpClient *http.Client
}

var _ Generator = (*Client)(nil)

// NewClient creates a new text-generation client
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.TextGen.BaseURL,
		apiKey:  cfg.TextGen.APIKey,
		model:   cfg.TextGen.Model,
		mock:    cfg.TextGen.MockAPI,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GeneratePickupNotification interpolates the fixed template and submits it
// to the endpoint, returning the resulting message verbatim. The call either
// fully succeeds or fails; nothing is retried here.
func (c *Client) GeneratePickupNotification(ctx context.Context, lang string, in PickupNotificationInput) (string, error) {
	prompt, err := RenderPrompt(lang, in)
	if err != nil {
		return "", err
	}

	if c.mock {
		return prompt, nil
	}

	requestBody := map[string]interface{}{
		"model":  c.model,
		"prompt": prompt,
	}
	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var response struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if response.Message == "" {
		return "", errors.New("endpoint returned an empty message")
	}
	return response.Message, nil
}
