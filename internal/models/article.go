// Package models defines data structures shared by the crawler, normalizer and formatter.
package models

import "time"

// DefaultTitle is used when a feed item carries no title.
const DefaultTitle = "Untitled"

// DefaultCategory is used when a feed item carries no usable category.
const DefaultCategory = "GENERAL"

// Article is the canonical record produced for every feed item.
type Article struct {
	Date        time.Time `json:"date"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	Category    string    `json:"category"`
}

// HasImage reports whether an image URL was resolved for the article.
func (a Article) HasImage() bool {
	return a.ImageURL != nil && *a.ImageURL != ""
}

// Image returns the resolved image URL or an empty string.
func (a Article) Image() string {
	if a.ImageURL == nil {
		return ""
	}

	return *a.ImageURL
}
