package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// DefaultRequestTimeout bounds a single HTTP round trip, not a whole
// execution (the executor owns that deadline).
const DefaultRequestTimeout = 30 * time.Second

// Transport issues authenticated requests against the server. It is
// immutable after construction and safe for concurrent use; the
// underlying connection pool is shared by all callers.
type Transport struct {
	baseURL string
	token   string
	client  *http.Client
	logger  *zap.Logger
}

// Response is the raw outcome of a successful request. Headers are kept
// alongside the body for the one caller that needs out-of-band
// signaling (the execute submit reads the Location header).
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// New creates a transport for the given base endpoint. token is
// optional; when empty no Authorization header is sent.
func New(baseURL, token string, timeout time.Duration, logger *zap.Logger) *Transport {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Transport{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// BaseURL returns the configured base endpoint.
func (t *Transport) BaseURL() string {
	return t.baseURL
}

// Do issues one request and returns the raw response. A non-2xx status
// is classified and returned as an *APIError; a connection failure
// surfaces as the network kind. No retries happen at this layer.
func (t *Transport) Do(ctx context.Context, method, path string, body any) (*Response, error) {
	url := BuildURL(t.baseURL, path)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.token != "" {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		t.logger.Debug("request failed",
			zap.String("method", method),
			zap.String("url", url),
			zap.Error(err))
		return nil, NewNetworkError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewNetworkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := Classify(resp.StatusCode, data)
		t.logger.Debug("request rejected",
			zap.String("method", method),
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
			zap.String("kind", string(apiErr.Kind)))
		return nil, apiErr
	}

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

// GetJSON issues a GET and decodes the body into out (skipped when out
// is nil or the body is empty).
func (t *Transport) GetJSON(ctx context.Context, path string, out any) error {
	resp, err := t.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decodeBody(resp.Body, out)
}

// PostJSON issues a POST with a JSON body and decodes the response.
func (t *Transport) PostJSON(ctx context.Context, path string, body, out any) error {
	resp, err := t.Do(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	return decodeBody(resp.Body, out)
}

// PutJSON issues a PUT with a JSON body and decodes the response.
func (t *Transport) PutJSON(ctx context.Context, path string, body, out any) error {
	resp, err := t.Do(ctx, http.MethodPut, path, body)
	if err != nil {
		return err
	}
	return decodeBody(resp.Body, out)
}

// Delete issues a DELETE, discarding any response body.
func (t *Transport) Delete(ctx context.Context, path string) error {
	_, err := t.Do(ctx, http.MethodDelete, path, nil)
	return err
}

func decodeBody(data []byte, out any) error {
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}
