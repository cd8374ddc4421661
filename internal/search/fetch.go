// Package search fetches raw catalogue search results from an iTunes-style
// HTTP endpoint. Each fetch is a single attempt; callers decide on retries.
package search

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// DefaultBaseURL is the public iTunes search host.
const DefaultBaseURL = "https://itunes.apple.com"

// EnvBaseURL overrides DefaultBaseURL.
const EnvBaseURL = "ROSTERCORE_SEARCH_BASE_URL"

// Common errors.
var (
	ErrEmptyQuery           = errors.New("search query is empty")
	ErrUnexpectedStatusCode = errors.New("received unexpected status")
)

// Fetcher returns the raw response body for a search term.
type Fetcher interface {
	Fetch(ctx context.Context, query string) ([]byte, error)
}

// HTTPFetcher issues GET <base>/search?term=<query>.
type HTTPFetcher struct {
	base   *url.URL
	client *http.Client
}

var _ Fetcher = (*HTTPFetcher)(nil)

// BaseURLFromEnv returns the configured base URL or DefaultBaseURL.
func BaseURLFromEnv() string {
	if v := strings.TrimSpace(os.Getenv(EnvBaseURL)); v != "" {
		return v
	}
	return DefaultBaseURL
}

// NewHTTPFetcher parses baseURL (empty means DefaultBaseURL). A nil client
// uses http.DefaultClient.
func NewHTTPFetcher(baseURL string, client *http.Client) (*HTTPFetcher, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse search URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("search URL %q must be absolute", baseURL)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{base: u, client: client}, nil
}

// Fetch performs one request and returns the body of a 2xx response.
func (f *HTTPFetcher) Fetch(ctx context.Context, query string) ([]byte, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	u := *f.base
	u.Path = strings.TrimSuffix(u.Path, "/") + "/search"
	u.RawQuery = url.Values{"term": {query}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %q: %w", u.String(), err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %q: %w", u.String(), err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("search %q: %w: %s", query, ErrUnexpectedStatusCode, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", u.String(), err)
	}
	return buf.Bytes(), nil
}
