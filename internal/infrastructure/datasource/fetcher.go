// Package datasource fetches the doctor dataset from the remote JSON endpoint.
package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-doctor-directory/internal/domain/entity"
)

// DefaultFetchTimeout is the default timeout for the dataset request
const DefaultFetchTimeout = 10 * time.Second

// Fetcher retrieves the doctor dataset with a single HTTP GET.
// It never retries; callers decide what a failure means.
type Fetcher struct {
	client  *http.Client
	url     string
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for the request.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithHTTPClient replaces the underlying client. The timeout option is ignored.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a Fetcher for the given dataset URL.
func NewFetcher(url string, opts ...Option) *Fetcher {
	f := &Fetcher{
		url:     url,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// URL returns the endpoint the fetcher reads from
func (f *Fetcher) URL() string {
	return f.url
}

// FetchDoctors downloads and decodes the dataset.
func (f *Fetcher) FetchDoctors(ctx context.Context) ([]entity.Doctor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build dataset request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, f.url)
	}

	var doctors []entity.Doctor
	if err := json.NewDecoder(resp.Body).Decode(&doctors); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	return doctors, nil
}
