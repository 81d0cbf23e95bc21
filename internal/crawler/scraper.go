// Package crawler fetches feeds and turns them into normalized articles.
package crawler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"foxfeed/internal/config"
	"foxfeed/pkg/utils"
)

// Scraper errors.
var (
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	ErrBodyTooLarge         = errors.New("response body exceeds size limit")
)

// Scraper performs single-attempt HTTP GETs.
type Scraper struct {
	client  *http.Client
	headers *utils.HTTPHelper
	maxBody int64
}

// NewScraper creates a new scraper instance with default config.
func NewScraper() *Scraper {
	return NewScraperWithConfig(config.Default().Reader.HTTP)
}

// NewScraperWithConfig creates a scraper honoring the http config block.
// A zero timeout leaves requests bounded only by their context.
func NewScraperWithConfig(cfg config.HTTPConfig) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: cfg.GetTimeout(),
		},
		headers: utils.NewHTTPHelper(cfg.UserAgent),
		maxBody: cfg.GetMaxBodyBytes(),
	}
}

// NewScraperWithClient creates a scraper around an existing HTTP client.
func NewScraperWithClient(client *http.Client, userAgent string, maxBody int64) *Scraper {
	return &Scraper{
		client:  client,
		headers: utils.NewHTTPHelper(userAgent),
		maxBody: maxBody,
	}
}

// FetchWithMetrics returns (body, statusCode, duration, error).
func (s *Scraper) FetchWithMetrics(ctx context.Context, url string) ([]byte, int, time.Duration, error) {
	startTime := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, 0, time.Since(startTime), fmt.Errorf("failed to create request: %w", err)
	}

	req.Header = s.headers.BuildHeaders(nil)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, 0, time.Since(startTime), fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, time.Since(startTime), fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)
	}

	// Read one byte past the limit so oversize bodies are detected, not truncated.
	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBody+1))
	if err != nil {
		return nil, resp.StatusCode, time.Since(startTime), fmt.Errorf("failed to read response body: %w", err)
	}

	if int64(len(body)) > s.maxBody {
		return nil, resp.StatusCode, time.Since(startTime), fmt.Errorf("%w: %d bytes", ErrBodyTooLarge, s.maxBody)
	}

	return body, resp.StatusCode, time.Since(startTime), nil
}

// Fetch returns the body of url.
func (s *Scraper) Fetch(ctx context.Context, url string) ([]byte, error) {
	body, _, _, err := s.FetchWithMetrics(ctx, url)

	return body, err
}
