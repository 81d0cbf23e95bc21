package normalizer

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"foxfeed/internal/models"
)

// Transformer maps raw feed items to articles.
type Transformer struct {
	now func() time.Time
}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{now: time.Now}
}

// NewTransformerWithClock creates a transformer that stamps undated items with now().
func NewTransformerWithClock(now func() time.Time) *Transformer {
	return &Transformer{now: now}
}

// Transform converts one raw item into an article.
func (t *Transformer) Transform(raw map[string]any) models.Article {
	item := DecodeItem(raw)

	article := models.Article{
		Title:       item.Title,
		Description: firstNonEmpty(item.Description, item.Content, item.Summary),
		Link:        item.Link,
		Date:        t.parseDate(item.PubDate),
		Category:    normalizeCategory(item.Category),
	}

	if article.Title == "" {
		article.Title = models.DefaultTitle
	}

	if media := ResolveMedia(item); media.Kind != models.MediaNone {
		url := media.URL
		article.ImageURL = &url
	}

	return article
}

// TransformAll converts items in order.
func (t *Transformer) TransformAll(raws []map[string]any) []models.Article {
	articles := make([]models.Article, 0, len(raws))
	for _, raw := range raws {
		articles = append(articles, t.Transform(raw))
	}

	return articles
}

// parseDate accepts the many publish-date layouts feeds use. Unparseable or
// missing dates fall back to the current instant.
func (t *Transformer) parseDate(pubDate string) time.Time {
	pubDate = strings.TrimSpace(pubDate)
	if pubDate == "" {
		return t.now()
	}

	parsed, err := dateparse.ParseIn(pubDate, time.UTC)
	if err != nil {
		return t.now()
	}

	return parsed
}

func normalizeCategory(category any) string {
	s, ok := category.(string)
	if !ok || s == "" {
		return models.DefaultCategory
	}

	return strings.ToUpper(s)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
