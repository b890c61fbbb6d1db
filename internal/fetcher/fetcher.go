// Package fetcher implements the HTTP retrieval used by the crawler. It
// adapts the teacher's crawler/fetcher package, dropping the in-band link
// parsing (handled separately by internal/urlutil against the fetched body)
// and tightening the timeout to the spec's 15-second budget.
package fetcher

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/rehttp"
)

// Timeout is the total per-request budget: connection, TLS handshake,
// redirects and body read.
const Timeout = 15 * time.Second

// Fetcher issues HTTP GET requests with retry-on-temporary-error and
// exponential jitter backoff, mirroring the teacher's stdHttpFetcher.
type Fetcher struct {
	userAgent string
	client    *http.Client
}

// New creates a Fetcher. userAgent is sent on every request.
func New(userAgent string) *Fetcher {
	transport := rehttp.NewTransport(
		&http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
		rehttp.RetryAll(rehttp.RetryMaxRetries(3), rehttp.RetryTemporaryErr()),
		rehttp.ExpJitterDelay(1, 10*time.Second),
	)
	return &Fetcher{
		userAgent: userAgent,
		client:    &http.Client{Timeout: Timeout, Transport: transport},
	}
}

// Fetch performs a GET against u, following redirects, and returns the
// response body in full along with how long the round-trip took.
func (f *Fetcher) Fetch(u string) (body []byte, elapsed time.Duration, err error) {
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("fetching %s failed: %w", u, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	start := time.Now()
	resp, err := f.client.Do(req)
	elapsed = time.Since(start)
	if err != nil {
		return nil, elapsed, fmt.Errorf("fetching %s failed: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, elapsed, fmt.Errorf("fetching %s failed: %s", u, resp.Status)
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, elapsed, fmt.Errorf("fetching %s failed: %w", u, err)
	}
	return body, elapsed, nil
}
