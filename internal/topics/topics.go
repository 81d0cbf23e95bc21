// Package topics lists the curated feed sources served by the local topic backend.
package topics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"foxfeed/internal/crawler"
	"foxfeed/internal/logger"
	"foxfeed/internal/models"
	"foxfeed/pkg/utils"
)

// ErrLoadTopics wraps every topic listing failure.
var ErrLoadTopics = errors.New("failed to load topics")

// Client fetches topics from the listing endpoint.
type Client struct {
	scraper  *crawler.Scraper
	log      *logger.Logger
	endpoint string
}

// NewClient creates a topic client.
func NewClient(endpoint string, scraper *crawler.Scraper, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Discard()
	}

	return &Client{endpoint: endpoint, scraper: scraper, log: log}
}

// List returns the topics, with URLs cleaned for use as feed URLs.
func (c *Client) List(ctx context.Context) ([]models.Topic, error) {
	body, err := c.scraper.Fetch(ctx, c.endpoint)
	if err != nil {
		c.log.Warn("topic request failed", "endpoint", c.endpoint, "error", err)

		return nil, fmt.Errorf("%w: %w", ErrLoadTopics, err)
	}

	topics, err := Decode(body)
	if err != nil {
		c.log.Warn("topic response rejected", "endpoint", c.endpoint, "error", err)

		return nil, err
	}

	c.log.Debug("topics loaded", "count", len(topics))

	return topics, nil
}

// Decode parses a topic envelope. The envelope must carry statusCode 200 and
// an array in data.
func Decode(body []byte) ([]models.Topic, error) {
	var env models.TopicEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadTopics, err)
	}

	if env.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: statusCode %d", ErrLoadTopics, env.StatusCode)
	}

	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || data[0] != '[' {
		return nil, fmt.Errorf("%w: data is not an array", ErrLoadTopics)
	}

	var topics []models.Topic
	if err := json.Unmarshal(data, &topics); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadTopics, err)
	}

	for i := range topics {
		topics[i].URL = CleanURL(topics[i].URL)
	}

	return topics, nil
}

// CleanURL strips backticks, quotes and whitespace from a stored topic URL.
func CleanURL(raw string) string {
	return utils.NewStringHelper().StripURLNoise(raw)
}
