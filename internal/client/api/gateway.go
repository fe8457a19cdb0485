// Package api implements the remote data gateway for the Smart Trace
// Device backend: one HTTP transport that injects bearer credentials from
// the session store on every request, plus typed endpoint modules per
// resource (lost items, found items, contacts, users, matches, auth).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"golang.org/x/time/rate"

	"github.com/smarttrace/smarttrace-cli/internal/client/session"
	"github.com/smarttrace/smarttrace-cli/internal/logging"
)

// Gateway owns the HTTP transport. All resource modules go through it.
type Gateway struct {
	baseURL   string
	timeout   time.Duration
	http      *http.Client
	session   session.Store
	limiter   *rate.Limiter
	log       logging.Logger
	endpoints Endpoints
}

// Option customizes a Gateway.
type Option func(*Gateway)

// WithEndpoints overrides the backend route table.
func WithEndpoints(e Endpoints) Option {
	return func(g *Gateway) { g.endpoints = e }
}

// WithHTTPClient replaces the underlying HTTP client (tests).
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) { g.http = c }
}

// NewGateway builds a gateway bound to the given session store. The store
// is consulted on every request, so credentials written by a later login
// are picked up without rebuilding anything.
func NewGateway(baseURL string, timeout time.Duration, sess session.Store, limiter *rate.Limiter, log logging.Logger, opts ...Option) *Gateway {
	g := &Gateway{
		baseURL:   strings.TrimRight(baseURL, "/"),
		timeout:   timeout,
		http:      &http.Client{},
		session:   sess,
		limiter:   limiter,
		log:       log,
		endpoints: DefaultEndpoints(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Lost returns the lost-items endpoint module.
func (g *Gateway) Lost() *LostAPI { return &LostAPI{g: g, routes: g.endpoints.Lost} }

// Found returns the found-items endpoint module.
func (g *Gateway) Found() *FoundAPI { return &FoundAPI{g: g, routes: g.endpoints.Found} }

// Contacts returns the contact-messages endpoint module.
func (g *Gateway) Contacts() *ContactsAPI { return &ContactsAPI{g: g, routes: g.endpoints.Contacts} }

// Users returns the users endpoint module.
func (g *Gateway) Users() *UsersAPI { return &UsersAPI{g: g, routes: g.endpoints.Users} }

// Matches returns the match-records endpoint module.
func (g *Gateway) Matches() *MatchesAPI { return &MatchesAPI{g: g, routes: g.endpoints.Matches} }

// Auth returns the authentication endpoint module.
func (g *Gateway) Auth() *AuthAPI { return &AuthAPI{g: g, routes: g.endpoints.Auth} }

// getJSON performs a GET with bounded retries. Reads are idempotent, so
// network failures, timeouts and 5xx responses are retried with fibonacci
// backoff; everything else fails immediately.
func (g *Gateway) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	backoff := retry.WithMaxRetries(2, retry.WithCappedDuration(2*time.Second, retry.NewFibonacci(250*time.Millisecond)))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := g.do(ctx, http.MethodGet, path, query, nil, "", out)
		if isRetryable(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

// postJSON performs a POST. Mutations are never retried to avoid
// duplicate creates.
func (g *Gateway) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding request body: %w", err)
	}
	return g.do(ctx, http.MethodPost, path, nil, body, "application/json", out)
}

// patchJSON performs a partial update. Not retried.
func (g *Gateway) patchJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding request body: %w", err)
	}
	return g.do(ctx, http.MethodPatch, path, nil, body, "application/json", out)
}

// postMultipart submits scalar fields plus an optional file part. Not
// retried.
func (g *Gateway) postMultipart(ctx context.Context, path string, fields map[string]string, fileField, filePath string, out any) error {
	body, contentType, err := buildMultipart(fields, fileField, filePath)
	if err != nil {
		return err
	}
	return g.do(ctx, http.MethodPost, path, nil, body, contentType, out)
}

// deleteResource performs a DELETE. Not retried; a repeat delete surfaces
// ErrNotFound, which callers treat as success-shaped (spec of the UI).
func (g *Gateway) deleteResource(ctx context.Context, path string) error {
	return g.do(ctx, http.MethodDelete, path, nil, nil, "", nil)
}

func (g *Gateway) do(ctx context.Context, method, path string, query url.Values, body []byte, contentType string, out any) error {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return &Error{Kind: ErrTimeout, Message: err.Error()}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	u := g.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	// The token is read from the session on every request, never cached,
	// so a refresh or logout takes effect on the next call. When no token
	// is present the header is omitted entirely.
	if s := g.session.Current(); s.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.AccessToken)
	}

	start := time.Now()
	resp, err := g.http.Do(req)
	if err != nil {
		kind := ErrNetworkUnavailable
		var nerr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &nerr) && nerr.Timeout()) {
			kind = ErrTimeout
		}
		g.log.Warn(ctx, "request failed", "method", method, "path", path, "err", err)
		return &Error{Kind: kind, Message: err.Error()}
	}
	defer resp.Body.Close()

	g.log.Debug(ctx, "request finished",
		"method", method, "path", path, "status", resp.StatusCode, "took", time.Since(start))

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: ErrMalformedResponse, StatusCode: resp.StatusCode, Message: err.Error()}
	}
	return nil
}

// decodeAPIError turns a non-2xx response into an *Error, extracting the
// backend's message and any per-field validation errors.
func decodeAPIError(resp *http.Response) error {
	apiErr := &Error{Kind: kindForStatus(resp.StatusCode), StatusCode: resp.StatusCode}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return apiErr
	}

	for _, key := range []string{"message", "detail", "error"} {
		if v, ok := payload[key].(string); ok && v != "" {
			apiErr.Message = v
			delete(payload, key)
			break
		}
	}

	// Remaining string or string-list values are field errors, the shape
	// DRF-style backends use for 400 responses.
	for field, v := range payload {
		switch value := v.(type) {
		case string:
			setField(apiErr, field, value)
		case []any:
			if len(value) > 0 {
				if s, ok := value[0].(string); ok {
					setField(apiErr, field, s)
				}
			}
		}
	}

	return apiErr
}

func setField(e *Error, field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = msg
}

func isRetryable(err error) bool {
	return errors.Is(err, ErrNetworkUnavailable) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrServer)
}
