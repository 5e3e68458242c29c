// Package http provides the HTTP side of urlinfo: a Fetcher that retrieves
// pages with browser-like headers and a Server that exposes the pipeline as
// a JSON API.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/urlinfo"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout bounds a single fetch, including reading the body.
const DefaultFetchTimeout = 10 * time.Second

// MaxResponseBody caps how much of a response body is read.
const MaxResponseBody = 10 << 20

const maxRedirects = 10

// Browser-like request headers. Accept-Encoding is left to the transport
// so compressed bodies are decoded transparently.
const (
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	acceptHeader   = "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8"
	acceptLanguage = "en-US,en;q=0.5"
)

var errBlockedRedirect = errors.New("redirect to non-http(s) scheme blocked")

// Ensure Fetcher implements urlinfo.Fetcher at compile time.
var _ urlinfo.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content with a single GET per call. It never
// retries.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout overrides DefaultFetchTimeout. Intended for tests.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout:       f.timeout,
		CheckRedirect: redirectPolicy,
	}

	return f
}

// redirectPolicy keeps the standard library's redirect limit and refuses to
// leave http(s).
func redirectPolicy(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("stopped after %d redirects", maxRedirects)
	}
	if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
		return fmt.Errorf("%w: %s", errBlockedRedirect, req.URL.Scheme)
	}
	return nil
}

// Fetch retrieves the page at url and decodes its body to UTF-8.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*urlinfo.RawDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &urlinfo.FetchError{URL: url, Reason: urlinfo.FetchNetwork, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Accept-Language", acceptLanguage)
	req.Header.Set("Upgrade-Insecure-Requests", "1")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fetchError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &urlinfo.FetchError{
			URL:        url,
			Reason:     urlinfo.FetchHTTPStatus,
			StatusCode: resp.StatusCode,
		}
	}

	contentType := resp.Header.Get("Content-Type")
	body, err := charset.NewReader(io.LimitReader(resp.Body, MaxResponseBody), contentType)
	if err != nil {
		return nil, fetchError(url, err)
	}

	html, err := io.ReadAll(body)
	if err != nil {
		return nil, fetchError(url, err)
	}

	return &urlinfo.RawDocument{
		URL:         url,
		HTML:        string(html),
		ContentType: contentType,
		StatusCode:  resp.StatusCode,
	}, nil
}

// fetchError classifies a transport failure as a timeout or a network error.
func fetchError(url string, err error) *urlinfo.FetchError {
	reason := urlinfo.FetchNetwork
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		reason = urlinfo.FetchTimeout
	}
	return &urlinfo.FetchError{URL: url, Reason: reason, Err: err}
}
