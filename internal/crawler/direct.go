package crawler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"

	"foxfeed/internal/config"
)

// ErrFeedParse is returned when a directly fetched document is not RSS, Atom or JSON Feed.
var ErrFeedParse = errors.New("failed to parse feed")

// DirectSource fetches the feed itself and re-encodes its items in the
// conversion-service shape, so the same normalizer handles both sources.
type DirectSource struct {
	scraper *Scraper
	parser  *gofeed.Parser
}

// NewDirectSource creates a direct source.
func NewDirectSource(scraper *Scraper) *DirectSource {
	return &DirectSource{scraper: scraper, parser: gofeed.NewParser()}
}

// Name returns the source name.
func (d *DirectSource) Name() string {
	return config.SourceDirect
}

// Fetch downloads and parses feedURL.
func (d *DirectSource) Fetch(ctx context.Context, feedURL string) ([]byte, error) {
	body, err := d.scraper.Fetch(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}

	feed, err := d.parser.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFeedParse, err)
	}

	return EncodeFeed(feed)
}

// EncodeFeed renders a parsed feed as a conversion-service envelope.
func EncodeFeed(feed *gofeed.Feed) ([]byte, error) {
	items := make([]map[string]any, 0, len(feed.Items))
	for _, item := range feed.Items {
		items = append(items, encodeItem(item))
	}

	envelope := map[string]any{
		"status": "ok",
		"feed": map[string]any{
			"title":       feed.Title,
			"link":        feed.Link,
			"description": feed.Description,
		},
		"items": items,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to encode feed: %w", err)
	}

	return data, nil
}

func encodeItem(item *gofeed.Item) map[string]any {
	raw := map[string]any{
		"title":       item.Title,
		"description": item.Description,
		"content":     item.Content,
		"link":        item.Link,
		"pubDate":     publishDate(item),
	}

	if len(item.Categories) > 0 {
		categories := make([]any, 0, len(item.Categories))
		for _, c := range item.Categories {
			categories = append(categories, c)
		}

		raw["categories"] = categories
	}

	for _, enclosure := range item.Enclosures {
		if enclosure != nil && enclosure.URL != "" {
			raw["enclosure"] = map[string]any{"link": enclosure.URL, "type": enclosure.Type}

			break
		}
	}

	if media, ok := item.Extensions["media"]; ok {
		if refs := mediaRefs(media["content"]); refs != nil {
			raw["media:content"] = refs
		}

		if refs := mediaRefs(media["thumbnail"]); refs != nil {
			raw["media:thumbnail"] = refs
		}
	}

	if _, ok := raw["media:thumbnail"]; !ok && item.Image != nil && item.Image.URL != "" {
		raw["media:thumbnail"] = map[string]any{"url": item.Image.URL}
	}

	return raw
}

// publishDate prefers the parsed publish time, then the updated time, then the raw strings.
func publishDate(item *gofeed.Item) string {
	switch {
	case item.PublishedParsed != nil:
		return item.PublishedParsed.UTC().Format(time.RFC3339)
	case item.UpdatedParsed != nil:
		return item.UpdatedParsed.UTC().Format(time.RFC3339)
	case item.Published != "":
		return item.Published
	}

	return item.Updated
}

// mediaRefs converts media:content / media:thumbnail extension elements into
// attribute objects keyed the way the conversion service nests them.
func mediaRefs(elements []ext.Extension) []any {
	var refs []any

	for _, el := range elements {
		if url := el.Attrs["url"]; url != "" {
			refs = append(refs, map[string]any{"$": map[string]any{"url": url}})
		}
	}

	return refs
}
