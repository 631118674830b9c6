package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/zeynepecekiris/music-studio-AI-backend/internal/config"
)

// MusicComposer defines the interface for music composition operations
type MusicComposer interface {
	Compose(ctx context.Context, req *ComposeRequest) (*ComposeResult, error)
	IsConfigured() bool
}

// ElevenLabsClient implements MusicComposer for the ElevenLabs music API
type ElevenLabsClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	modelID    string
}

// ComposeRequest represents the request for music composition
type ComposeRequest struct {
	Prompt        string `json:"prompt"`
	MusicLengthMs int    `json:"music_length_ms"`
	ModelID       string `json:"model_id"`
}

// ComposeResult holds the composed track returned by the API
type ComposeResult struct {
	Audio       []byte
	ContentType string
	DurationSec int
}

// PromptSafetyError is returned when the composition API rejects a prompt
// on safety grounds. Suggestion carries the provider's rewrite hint when
// one is present in the error body.
type PromptSafetyError struct {
	Message    string
	Suggestion string
}

func (e *PromptSafetyError) Error() string {
	return e.Message
}

// safetyErrorBody is the JSON shape of a 400 safety rejection
type safetyErrorBody struct {
	Detail struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Data    struct {
			PromptSuggestion string `json:"prompt_suggestion"`
		} `json:"data"`
	} `json:"detail"`
}

// NewElevenLabsClient creates a new ElevenLabs API client
func NewElevenLabsClient(cfg *config.ElevenLabsConfig) *ElevenLabsClient {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if cfg.Timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &ElevenLabsClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		modelID: cfg.ModelID,
	}
}

// Compose sends a composition request and returns the finished track bytes.
// The API composes synchronously; long durations can take minutes.
func (c *ElevenLabsClient) Compose(ctx context.Context, req *ComposeRequest) (*ComposeResult, error) {
	if req.ModelID == "" {
		req.ModelID = c.modelID
	}

	bodyBytes, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/music", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("xi-api-key", c.apiKey)

	log.Printf("[ElevenLabs API] → POST %s (length_ms=%d model=%s)", httpReq.URL.String(), req.MusicLengthMs, req.ModelID)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("[ElevenLabs API] ✗ POST %s — request failed: %v", httpReq.URL.String(), err)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[ElevenLabs API] ✗ POST %s — failed to read response: %v", httpReq.URL.String(), err)
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	log.Printf("[ElevenLabs API] ← %d POST %s (%d bytes)", resp.StatusCode, httpReq.URL.String(), len(respBody))

	if resp.StatusCode == http.StatusBadRequest {
		if safetyErr := parseSafetyError(respBody); safetyErr != nil {
			return nil, safetyErr
		}
		return nil, fmt.Errorf("elevenlabs API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("elevenlabs API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "audio/mpeg"
	}

	return &ComposeResult{
		Audio:       respBody,
		ContentType: contentType,
		DurationSec: req.MusicLengthMs / 1000,
	}, nil
}

// parseSafetyError decodes a 400 body into a PromptSafetyError when the
// status marks a safety rejection. Returns nil for other 400 shapes.
func parseSafetyError(body []byte) *PromptSafetyError {
	var parsed safetyErrorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil
	}

	switch parsed.Detail.Status {
	case "bad_prompt", "prompt_safety":
		msg := parsed.Detail.Message
		if msg == "" {
			msg = "prompt rejected by safety filter"
		}
		return &PromptSafetyError{
			Message:    msg,
			Suggestion: parsed.Detail.Data.PromptSuggestion,
		}
	}
	return nil
}

// IsConfigured returns true if the client has valid configuration
func (c *ElevenLabsClient) IsConfigured() bool {
	return c.apiKey != ""
}
