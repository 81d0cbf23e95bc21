package crawler

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"foxfeed/internal/config"
)

// ErrUnknownSource is returned for a source name other than proxy or direct.
var ErrUnknownSource = errors.New("unknown feed source")

// Source produces a conversion-service style JSON envelope for a feed URL.
type Source interface {
	Name() string
	Fetch(ctx context.Context, feedURL string) ([]byte, error)
}

// ProxySource converts feeds through the rss2json conversion endpoint.
type ProxySource struct {
	scraper  *Scraper
	endpoint string
}

// NewProxySource creates a proxy source for the given endpoint.
func NewProxySource(endpoint string, scraper *Scraper) *ProxySource {
	return &ProxySource{endpoint: endpoint, scraper: scraper}
}

// Name returns the source name.
func (p *ProxySource) Name() string {
	return config.SourceProxy
}

// BuildURL returns the conversion request URL for feedURL.
func (p *ProxySource) BuildURL(feedURL string) string {
	sep := "?"
	if strings.Contains(p.endpoint, "?") {
		sep = "&"
	}

	return p.endpoint + sep + "rss_url=" + url.QueryEscape(feedURL)
}

// Fetch requests the converted feed.
func (p *ProxySource) Fetch(ctx context.Context, feedURL string) ([]byte, error) {
	body, err := p.scraper.Fetch(ctx, p.BuildURL(feedURL))
	if err != nil {
		return nil, fmt.Errorf("conversion request failed: %w", err)
	}

	return body, nil
}

// NewSource builds the source selected by cfg.Reader.Source.
func NewSource(cfg *config.Config, scraper *Scraper) (Source, error) {
	switch cfg.Reader.Source {
	case config.SourceProxy:
		return NewProxySource(cfg.Reader.Proxy.Endpoint, scraper), nil
	case config.SourceDirect:
		return NewDirectSource(scraper), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Reader.Source)
}
