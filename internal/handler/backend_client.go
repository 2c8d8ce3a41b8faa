package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/idtoken"
)

// ErrBackendStatus marks a non-2xx answer from the search backend, as opposed
// to a transport failure.
var ErrBackendStatus = errors.New("backend returned an error status")

// BackendPoster posts JSON payloads to the search backend and decodes the
// answer into out.
type BackendPoster interface {
	PostJSON(ctx context.Context, path string, payload any, out any, requestID string) error
}

// BackendClient is a thin POST/JSON client for the search/enrichment backend.
// No retries, no backoff; callers decide how a failure surfaces.
type BackendClient struct {
	client  *http.Client
	baseURL string
}

// NewBackendClient builds a backend client, auto-configuring an ID token
// client for Cloud Run → Cloud Run calls when none is injected.
func NewBackendClient(client *http.Client, baseURL string) *BackendClient {
	if baseURL == "" {
		panic("baseURL must not be empty")
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if client == nil {
		idc, err := idtoken.NewClient(context.Background(), baseURL)
		if err != nil {
			client = &http.Client{Timeout: 30 * time.Second}
		} else {
			client = idc
		}
	}
	return &BackendClient{client: client, baseURL: baseURL}
}

// PostJSON posts the payload and decodes a 2xx body into out.
func (c *BackendClient) PostJSON(ctx context.Context, path string, payload any, out any, requestID string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create backend request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s", ErrBackendStatus, extractBackendError(resp.Body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("could not decode backend response: %w", err)
	}
	return nil
}

func extractBackendError(body io.Reader) string {
	data, err := io.ReadAll(body)
	if err != nil || len(data) == 0 {
		return "backend returned an error"
	}

	// FastAPI errors carry {"detail": ...}; tolerate {"error": ...} too.
	var payload struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Detail != "" {
			return payload.Detail
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return string(data)
}

var _ BackendPoster = (*BackendClient)(nil)
