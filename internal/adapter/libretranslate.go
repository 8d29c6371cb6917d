package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	sourceLang = "zh"
	targetLang = "en"
)

// LibreClient talks to a LibreTranslate-compatible endpoint, which is the
// HTTP API the Argos Translate server exposes.
type LibreClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewLibreClient constructs a client for the given endpoint. An empty apiKey
// is valid for self-hosted instances.
func NewLibreClient(baseURL, apiKey string, timeout time.Duration) *LibreClient {
	return &LibreClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error,omitempty"`
}

// Translate submits one text run and returns its translation.
func (c *LibreClient) Translate(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(translateRequest{
		Q:      text,
		Source: sourceLang,
		Target: targetLang,
		APIKey: c.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode translate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build translate request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		slog.Error("translate request failed", "text", text, "error", err)
		return "", fmt.Errorf("translate request failed: %w", err)
	}

	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read translate response: %w", err)
	}

	var decoded translateResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return "", fmt.Errorf("failed to decode translate response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		message := decoded.Error
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}

		slog.Error("translate rejected", "status", resp.StatusCode, "message", message)

		return "", fmt.Errorf("translate failed with status %d: %s", resp.StatusCode, message)
	}

	slog.Debug("translated run", "text", text, "result", decoded.TranslatedText)

	return decoded.TranslatedText, nil
}

// Ready probes the endpoint's language list so an unreachable backend is
// reported before any candidate is processed.
func (c *LibreClient) Ready(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/languages", nil)
	if err != nil {
		return fmt.Errorf("failed to build readiness request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("translator unreachable: %w", err)
	}

	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("translator readiness check failed with status %d", resp.StatusCode)
	}

	return nil
}
