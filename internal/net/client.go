// Package net issues the dashboard's calls to the NLP service.
//
// The HTTP stack sits behind Transport so the same Client can run on the
// standard library or on a browser-fingerprinted TLS client.
package net

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Alfex4936/nlpdash/internal/model"
)

// ErrNetwork signals a transport failure or a non-2xx answer.
var ErrNetwork = errors.New("net: request failed")

// StatusError is a non-2xx answer. Body is kept so callers can surface the
// server's message.
type StatusError struct {
	Endpoint string
	Status   int
	Body     []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("net: %s: unexpected status %d", e.Endpoint, e.Status)
}

func (e *StatusError) Unwrap() error { return ErrNetwork }

// Request is one outbound call, independent of the HTTP stack.
type Request struct {
	Method      string
	URL         string
	ContentType string
	Header      map[string]string
	Body        []byte
}

// Response is a fully read answer.
type Response struct {
	Status int
	Body   []byte
}

// Transport performs a single round trip.
type Transport interface {
	RoundTrip(ctx context.Context, req *Request) (*Response, error)
}

// Client talks to the service rooted at a base URL.
type Client struct {
	base *url.URL
	tr   Transport
	log  *zap.Logger
}

// New creates a Client. baseURL must be absolute; a missing trailing slash
// is added so endpoints resolve beneath it.
func New(baseURL string, tr Transport, log *zap.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("net: base url: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("net: base url %q is not absolute", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{base: u, tr: tr, log: log.With(zap.String("component", "net"))}, nil
}

// URL resolves endpoint against the base URL.
func (c *Client) URL(endpoint string) string {
	return c.base.ResolveReference(&url.URL{Path: strings.TrimLeft(endpoint, "/")}).String()
}

// PostJSON sends payload as JSON and returns the raw 2xx body.
func (c *Client) PostJSON(ctx context.Context, endpoint string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("net: %s: encode: %w", endpoint, err)
	}
	return c.post(ctx, endpoint, "application/json", body)
}

// PostFile sends f as a multipart form under field and returns the raw 2xx body.
func (c *Client) PostFile(ctx context.Context, endpoint, field string, f model.File) ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filepath.Base(f.Name))
	if err != nil {
		return nil, fmt.Errorf("net: %s: multipart: %w", endpoint, err)
	}
	if _, err := part.Write(f.Data); err != nil {
		return nil, fmt.Errorf("net: %s: multipart: %w", endpoint, err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("net: %s: multipart: %w", endpoint, err)
	}
	return c.post(ctx, endpoint, mw.FormDataContentType(), buf.Bytes())
}

func (c *Client) post(ctx context.Context, endpoint, contentType string, body []byte) ([]byte, error) {
	id := uuid.NewString()
	req := &Request{
		Method:      "POST",
		URL:         c.URL(endpoint),
		ContentType: contentType,
		Header: map[string]string{
			"Accept":       "application/json",
			"User-Agent":   ua,
			"X-Request-ID": id,
		},
		Body: body,
	}
	log := c.log.With(zap.String("endpoint", endpoint), zap.String("request_id", id))
	log.Debug("request", zap.Int("bytes", len(body)))

	resp, err := c.tr.RoundTrip(ctx, req)
	if err != nil {
		log.Debug("transport failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %s: %w", ErrNetwork, endpoint, err)
	}
	log.Debug("response", zap.Int("status", resp.Status), zap.Int("bytes", len(resp.Body)))

	if resp.Status < 200 || resp.Status > 299 {
		return nil, &StatusError{Endpoint: endpoint, Status: resp.Status, Body: resp.Body}
	}
	return resp.Body, nil
}

const ua = "nlpdash/1.0 (+https://github.com/Alfex4936/nlpdash)"
