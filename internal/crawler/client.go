package crawler

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"foxfeed/internal/config"
	"foxfeed/internal/logger"
	"foxfeed/internal/models"
	"foxfeed/internal/normalizer"
)

// DefaultConcurrency bounds LoadAll when no limit is given.
const DefaultConcurrency = 4

// Client loads feeds from a Source and normalizes them.
type Client struct {
	source    Source
	processor *normalizer.Processor
	log       *logger.Logger
}

// NewClient creates a client using the rss2json proxy with default settings.
func NewClient(log *logger.Logger) *Client {
	scraper := NewScraper()

	return NewClientWithDeps(NewProxySource(config.DefaultProxyEndpoint, scraper), normalizer.NewProcessor(), log)
}

// NewClientWithDeps creates a client with injected dependencies.
func NewClientWithDeps(source Source, processor *normalizer.Processor, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Discard()
	}

	return &Client{
		source:    source,
		processor: processor,
		log:       log.With("source", source.Name()),
	}
}

// Load fetches and normalizes one feed. It never panics on malformed input;
// every failure is reported as a failed Result.
func (c *Client) Load(ctx context.Context, feedURL string) Result {
	log := c.log.With("feed", feedURL)
	startTime := time.Now()

	log.Debug("fetching feed")

	body, err := c.source.Fetch(ctx, feedURL)
	if err != nil {
		log.Warn("feed fetch failed", "error", err)

		return failed(feedURL, fmt.Errorf("failed to fetch feed: %w", err))
	}

	articles, err := c.processor.Process(body)
	if err != nil {
		log.Warn("feed normalization failed", "error", err)

		return failed(feedURL, fmt.Errorf("failed to normalize feed: %w", err))
	}

	log.Debug("feed loaded", "items", len(articles), "duration", time.Since(startTime))

	return loaded(feedURL, articles)
}

// Normalize returns the articles of feedURL, or an empty slice on any failure.
func (c *Client) Normalize(ctx context.Context, feedURL string) []models.Article {
	result := c.Load(ctx, feedURL)
	if result.Failed() {
		return []models.Article{}
	}

	return result.Articles
}

// LoadAll loads every feed with at most concurrency requests in flight.
// Results keep the order of feedURLs. One feed failing does not cancel the others.
func (c *Client) LoadAll(ctx context.Context, feedURLs []string, concurrency int) []Result {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}

	results := make([]Result, len(feedURLs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, feedURL := range feedURLs {
		i, feedURL := i, feedURL
		g.Go(func() error {
			results[i] = c.Load(gctx, feedURL)

			return nil
		})
	}

	// Load reports failures in its Result, so Wait never returns an error.
	_ = g.Wait()

	return results
}
