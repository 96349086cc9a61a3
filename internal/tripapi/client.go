// Package tripapi is a client for the trip-planning backend's REST API.
package tripapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/Tiliavir/trivial-trip-planner/internal/wire"
)

const (
	// DefaultTimeout bounds a single request when ClientConfig.Timeout is zero.
	DefaultTimeout = 10 * time.Second

	// maxErrorBody caps how much of an error response is kept in APIError.
	maxErrorBody = 512
)

// HTTPDoer executes HTTP requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Session identifies the signed-in user. It is passed explicitly to every
// call; the client holds no credentials of its own.
type Session struct {
	UserID int           `json:"user_id"`
	Token  *oauth2.Token `json:"token"`
}

// ClientConfig holds configuration for the backend client.
type ClientConfig struct {
	// BaseURL is the API root, e.g. "https://trips.example.com/api".
	BaseURL string

	// HTTPClient is the HTTP client to use. If nil, a client with Timeout is
	// created.
	HTTPClient HTTPDoer

	// Timeout is the per-request timeout (default 10s).
	Timeout time.Duration

	// Codec converts between wire and display shapes.
	Codec wire.Codec

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is a trip-planning backend client.
type Client struct {
	baseURL    string
	httpClient HTTPDoer
	codec      wire.Codec
	logger     zerolog.Logger
}

// NewClient creates a new backend client.
func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		codec:      cfg.Codec,
		logger:     cfg.Logger,
	}
}

// do sends one request and decodes a JSON response into out when out is
// non-nil and the response has a body.
func (c *Client) do(ctx context.Context, sess Session, method, path string, query url.Values, in, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// The backend expects the bare token, without an auth scheme.
	if sess.Token != nil && sess.Token.AccessToken != "" {
		req.Header.Set("Authorization", sess.Token.AccessToken)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Msg("backend request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("request_id", requestID).
		Dur("duration", time.Since(start)).
		Msg("backend request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(respBody))
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}
		return &APIError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: msg}
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}
