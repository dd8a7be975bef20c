package client

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

	"github.com/dmitrijs2005/posclient/internal/common"
	"github.com/dmitrijs2005/posclient/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// APIClient is the HTTP implementation of Client. It is safe for
// concurrent use once configured.
type APIClient struct {
	baseURL     string
	http        *http.Client
	limiter     *rate.Limiter
	tokenSource func() string
	log         logging.Logger
}

type Option func(*APIClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *APIClient) { c.http = hc }
}

// WithRateLimit caps outgoing requests at rps per second with the given
// burst. rps <= 0 leaves requests unlimited.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *APIClient) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *APIClient) { c.log = l }
}

// NewAPIClient builds a client for baseURL ("http://localhost:8080").
// timeout bounds every request; zero disables it.
func NewAPIClient(baseURL string, timeout time.Duration, opts ...Option) (*APIClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api host %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid api host %q: scheme must be http or https", baseURL)
	}

	c := &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SetTokenSource installs a function returning the bearer token to attach
// to requests. An empty token sends no Authorization header.
func (c *APIClient) SetTokenSource(fn func() string) {
	c.tokenSource = fn
}

// BaseURL returns the host the client talks to.
func (c *APIClient) BaseURL() string {
	return c.baseURL
}

func (c *APIClient) Get(ctx context.Context, path string, params url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, params, nil, out)
}

func (c *APIClient) Post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *APIClient) Put(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *APIClient) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

// Ping reports whether the API host answers at all. Any HTTP response,
// including an error status, counts as reachable.
func (c *APIClient) Ping(ctx context.Context) error {
	err := c.do(ctx, http.MethodGet, "/", nil, nil, nil)
	if StatusCode(err) != 0 {
		return nil
	}
	return err
}

func (c *APIClient) do(ctx context.Context, method, path string, params url.Values, body any, out any) error {
	requestID := uuid.NewString()
	log := c.log.With("request_id", requestID, "method", method, "path", path)

	req, err := c.newRequest(ctx, method, path, params, body)
	if err != nil {
		log.Error(ctx, "request setup failed", "error", err)
		return common.WithCause(ErrRequestSetup, err)
	}
	req.Header.Set(common.RequestIDHeaderName, requestID)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			log.Error(ctx, "rate limiter wait failed", "error", err)
			return common.WithCause(ErrRequestSetup, err)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "no response", "error", err, "elapsed", time.Since(start))
		return common.WithCause(ErrNoResponse, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn(ctx, "response body read failed", "error", err)
		return common.WithCause(ErrNoResponse, err)
	}

	log.Debug(ctx, "response received", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := newStatusError(resp.StatusCode, serverMessage(data))
		log.Warn(ctx, "error status", "status", resp.StatusCode, "message", se.Message)
		return se
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Warn(ctx, "response decode failed", "error", err)
		return common.WithCause(ErrUnexpectedResponse, err)
	}
	return nil
}

func (c *APIClient) newRequest(ctx context.Context, method, path string, params url.Values, body any) (*http.Request, error) {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.tokenSource != nil {
		if token := c.tokenSource(); token != "" {
			req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
		}
	}
	return req, nil
}

// serverMessage extracts the "message" field of an error body, if any.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}
