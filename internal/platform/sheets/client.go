package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/studyforge/planner-api/internal/remote"
)

// contentType is what the Apps Script endpoint expects for POST bodies.
const contentType = "text/plain;charset=utf-8"

// defaultTimeout bounds a single request when the config does not.
const defaultTimeout = 30 * time.Second

// Config contains configuration for the sheets client.
type Config struct {
	// WebAppURL is the deployed Apps Script web app URL.
	WebAppURL string

	// Timeout is the HTTP request timeout. Zero means defaultTimeout.
	Timeout time.Duration

	// Logger for structured logging. Nil means slog.Default().
	Logger *slog.Logger
}

// Client talks to the Apps Script web app. It is stateless and safe for
// concurrent use.
type Client struct {
	webAppURL  string
	httpClient *http.Client
	logger     *slog.Logger
}

// compile-time interface check
var _ remote.Gateway = (*Client)(nil)

// envelope is the wire wrapper every response arrives in.
type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// request is the wire wrapper every request is sent in.
type request struct {
	Action  remote.Action `json:"action"`
	Payload any           `json:"payload"`
}

// NewClient creates a sheets client for the given endpoint.
// Returns remote.ErrNotConfigured if the URL is empty.
func NewClient(cfg Config) (*Client, error) {
	if cfg.WebAppURL == "" {
		return nil, remote.ErrNotConfigured
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Client{
		webAppURL: cfg.WebAppURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: cfg.Logger,
	}, nil
}

// Call sends one action with its payload and normalizes the response
// envelope. A single attempt is made; failures are surfaced to the caller
// rather than retried.
func (c *Client) Call(ctx context.Context, action remote.Action, payload any) (json.RawMessage, error) {
	body, err := json.Marshal(request{Action: action, Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("%w: encode request for %s: %v", remote.ErrRemote, action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webAppURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: create request for %s: %v", remote.ErrRemote, action, err)
	}
	req.Header.Set("Content-Type", contentType)

	c.logger.DebugContext(ctx, "calling remote store",
		"action", string(action),
		"body_bytes", len(body))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "remote store call failed",
			"action", string(action),
			"error", err)
		return nil, fmt.Errorf("%w: %s: %v", remote.ErrUnavailable, action, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.WarnContext(ctx, "failed to close response body", "error", cerr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %d", remote.ErrBadStatus, action, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response for %s: %v", remote.ErrUnavailable, action, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", remote.ErrBadEnvelope, action, err)
	}
	if env.Status == "" {
		return nil, fmt.Errorf("%w: %s: missing status discriminator", remote.ErrBadEnvelope, action)
	}

	if env.Status != "success" {
		message := env.Message
		if message == "" {
			message = "an unknown API error occurred"
		}
		c.logger.WarnContext(ctx, "remote store rejected request",
			"action", string(action),
			"status", env.Status,
			"message", message)
		return nil, fmt.Errorf("%w: %s: %s", remote.ErrRejected, action, message)
	}

	// Data is optional on success; default to an empty object so callers
	// can always unmarshal.
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return json.RawMessage(`{}`), nil
	}

	return env.Data, nil
}
