// Package backend is the typed client for the dealership REST API. All
// persistence, token issuance, file storage and AI handling live behind
// that API; this client only shapes requests and maps errors onto the
// dashboard's error taxonomy.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	apperrors "github.com/agencydesk/go-dealer-admin/internal/errors"
)

// TokenSource supplies the bearer token attached to every protected call.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a plain function to a TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     zerolog.Logger
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = timeout
	}
}

func New(baseURL string, tokens TokenSource, log zerolog.Logger, options ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  tokens,
		log:     log.With().Str("component", "backend").Logger(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// detailBody is the FastAPI-style error envelope: {"detail": "..."}.
type detailBody struct {
	Detail json.RawMessage `json:"detail"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return apperrors.Wrapf(err, "%s %s: marshal body", method, path)
		}
		reqBody = bytes.NewReader(raw)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return apperrors.Wrapf(err, "%s %s: build request", method, path)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrNetwork, "%s %s (%v)", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.statusError(req, resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return apperrors.Wrapf(err, "%s %s: decode response", req.Method, req.URL.Path)
		}
	}
	return nil
}

// statusError maps a non-2xx response to a StatusError carrying the
// backend's detail message verbatim when one is present.
func (c *Client) statusError(req *http.Request, resp *http.Response) error {
	detail := ""
	var envelope detailBody
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && len(envelope.Detail) > 0 {
		// The detail is usually a string but can be a validation structure.
		if err := json.Unmarshal(envelope.Detail, &detail); err != nil {
			detail = string(envelope.Detail)
		}
	}
	c.log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Str("detail", detail).
		Msg("backend request failed")
	return &apperrors.StatusError{Status: resp.StatusCode, Detail: detail}
}
