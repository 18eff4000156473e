package resolver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/ziadkadry99/foodee/internal/content"
)

// HTTPFetcher requests the content document over HTTP, bypassing caches.
type HTTPFetcher struct {
	URL    string
	Client *http.Client
}

// NewHTTPFetcher returns a fetcher for url. A zero timeout means the request
// is bounded only by the caller's context.
func NewHTTPFetcher(url string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{URL: url, Client: &http.Client{Timeout: timeout}}
}

// Source implements Fetcher.
func (f *HTTPFetcher) Source() string { return "http" }

// Location implements Fetcher.
func (f *HTTPFetcher) Location() string { return f.URL }

// Fetch performs a single GET. Any status outside 2xx is a failure.
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, &content.FetchError{Source: f.URL, Err: err}
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Accept", "application/json")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &content.FetchError{Source: f.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &content.FetchError{Source: f.URL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &content.FetchError{Source: f.URL, Err: fmt.Errorf("reading body: %w", err)}
	}
	return body, nil
}

// FileFetcher reads the content document from a local file.
type FileFetcher struct {
	Path string
}

// Source implements Fetcher.
func (f FileFetcher) Source() string { return "file" }

// Location implements Fetcher.
func (f FileFetcher) Location() string { return f.Path }

// Fetch reads the whole file.
func (f FileFetcher) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &content.FetchError{Source: f.Path, Err: err}
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, &content.FetchError{Source: f.Path, Err: err}
	}
	return data, nil
}
