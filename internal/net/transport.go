package net

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

// Transport kinds accepted by NewTransport.
const (
	TransportStd     = "std"
	TransportBrowser = "browser"
)

// NewTransport builds the transport named by kind.
func NewTransport(kind string, timeout time.Duration) (Transport, error) {
	switch kind {
	case "", TransportStd:
		return NewStdTransport(timeout), nil
	case TransportBrowser:
		t, err := NewBrowserTransport(timeout)
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, fmt.Errorf("net: unknown transport %q", kind)
	}
}

// StdTransport is backed by a keep-alive *http.Client.
type StdTransport struct {
	client *http.Client
}

// NewStdTransport creates a StdTransport with connection reuse.
func NewStdTransport(timeout time.Duration) *StdTransport {
	return &StdTransport{client: &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        32,
			MaxIdleConnsPerHost: 16,
			TLSClientConfig:     &tls.Config{MinVersion: tls.VersionTLS12},
		},
	}}
}

func (t *StdTransport) RoundTrip(ctx context.Context, r *Request) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, bytes.NewReader(r.Body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", r.ContentType)
	for k, v := range r.Header {
		req.Header.Set(k, v)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return &Response{Status: resp.StatusCode, Body: body}, nil
}

// BrowserTransport presents a browser TLS fingerprint, for deployments that
// sit behind bot filtering.
type BrowserTransport struct {
	client tls_client.HttpClient
}

// NewBrowserTransport creates a BrowserTransport with the default profile.
func NewBrowserTransport(timeout time.Duration) (*BrowserTransport, error) {
	secs := int(timeout / time.Second)
	if secs < 1 {
		secs = 1
	}
	c, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(),
		tls_client.WithTimeoutSeconds(secs),
		tls_client.WithClientProfile(profiles.DefaultClientProfile),
		tls_client.WithNotFollowRedirects(),
	)
	if err != nil {
		return nil, fmt.Errorf("net: browser transport: %w", err)
	}
	return &BrowserTransport{client: c}, nil
}

func (t *BrowserTransport) RoundTrip(ctx context.Context, r *Request) (*Response, error) {
	req, err := fhttp.NewRequestWithContext(ctx, r.Method, r.URL, bytes.NewReader(r.Body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", r.ContentType)
	for k, v := range r.Header {
		req.Header.Set(k, v)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return &Response{Status: resp.StatusCode, Body: body}, nil
}
