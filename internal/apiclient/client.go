// Package apiclient is the HTTP layer of the API-backed dashboard. Every
// request carries the session's bearer token and every completed request is
// classified into at most one notification.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MrSnakeDoc/backoffice/internal/logger"
	"github.com/MrSnakeDoc/backoffice/internal/notify"
)

const (
	DefaultBaseURL = "http://localhost:5000/api"
	DefaultTimeout = 10 * time.Second

	maxBodyBytes = 4 << 20
)

var (
	// ErrNoResponse wraps transport failures: the request left but no
	// response came back.
	ErrNoResponse = errors.New("no response from server")
	// ErrRequestSetup wraps failures to build the request.
	ErrRequestSetup = errors.New("request setup failed")
	// ErrNotFound matches a *StatusError with status 404.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized matches a *StatusError with status 401.
	ErrUnauthorized = errors.New("unauthorized")
)

// TokenSource yields the current bearer token, empty when logged out.
type TokenSource interface {
	Token() string
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method  string
	URL     string
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s %s error %d: %s", e.Method, e.URL, e.Status, e.Message)
}

func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	}
	return false
}

// Options configures a Client. Zero values fall back to the defaults.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	Tokens     TokenSource
	Notifier   notify.Notifier
	Logger     logger.Logger
	HTTPClient *http.Client
}

// Client talks JSON to the admin API.
type Client struct {
	base     *url.URL
	http     *http.Client
	tokens   TokenSource
	notifier notify.Notifier
	log      logger.Logger
}

// New validates the base URL and applies defaults.
func New(opts Options) (*Client, error) {
	raw := opts.BaseURL
	if raw == "" {
		raw = DefaultBaseURL
	}
	base, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api base url %q: %w", raw, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid api base url %q: scheme must be http or https", raw)
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}

	c := &Client{
		base:     base,
		http:     hc,
		tokens:   opts.Tokens,
		notifier: opts.Notifier,
		log:      opts.Logger,
	}
	if c.notifier == nil {
		c.notifier = notify.Discard
	}
	if c.log == nil {
		c.log = logger.Nop()
	}
	return c, nil
}

// BaseURL returns the API root every path is resolved against.
func (c *Client) BaseURL() string { return c.base.String() }

// Do sends in (when non-nil) as JSON to path below the base URL and decodes
// a 2xx body into out (when non-nil).
func (c *Client) Do(ctx context.Context, method, path string, in, out any) error {
	target := c.base.JoinPath(path).String()

	req, err := c.newRequest(ctx, method, target, in)
	if err != nil {
		c.notifier.Notify(notify.SetupError(err))
		return fmt.Errorf("%w: %v", ErrRequestSetup, err)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.log.Warn("api request failed",
			logger.String("method", method),
			logger.String("url", target),
			logger.Error(err))
		c.notifier.Notify(notify.NoResponse())
		return fmt.Errorf("%w: %s %s: %v", ErrNoResponse, method, target, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.notifier.Notify(notify.NoResponse())
		return fmt.Errorf("%w: read body: %v", ErrNoResponse, err)
	}

	c.log.Debug("api request",
		logger.String("method", method),
		logger.String("url", target),
		logger.Int("status", resp.StatusCode),
		logger.Duration("duration", time.Since(start)))

	if n, ok := notify.Classify(method, target, resp.StatusCode, body); ok {
		c.notifier.Notify(n)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{
			Method:  method,
			URL:     target,
			Status:  resp.StatusCode,
			Message: errorMessage(resp.StatusCode, body),
		}
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, target, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, target string, in any) (*http.Request, error) {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	return req, nil
}

func errorMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Message != "" {
		return payload.Message
	}
	if text := strings.TrimSpace(string(body)); text != "" && len(text) < 256 {
		return text
	}
	return http.StatusText(status)
}
