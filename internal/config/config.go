// Package config provides configuration management for the feed reader.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"foxfeed/internal/logger"
	"foxfeed/pkg/utils"
)

// Source names.
const (
	SourceProxy  = "proxy"
	SourceDirect = "direct"
)

// Defaults applied by Default and by LoadConfig for omitted values.
const (
	DefaultProxyEndpoint    = "https://api.rss2json.com/v1/api.json"
	DefaultTopicsEndpoint   = "http://localhost:9091/api/v1/feed"
	DefaultTimeoutSec       = 30
	DefaultMaxBodyKb        = 4096
	DefaultUserAgent        = "foxfeed/1.0"
	DefaultLimit            = 20
	DefaultDescriptionWidth = 60
)

// Configuration validation errors.
var (
	ErrInvalidSource         = errors.New("reader.source must be 'proxy' or 'direct'")
	ErrInvalidProxyEndpoint  = errors.New("reader.proxy.endpoint must be an absolute http(s) URL")
	ErrInvalidTopicsEndpoint = errors.New("reader.topics.endpoint must be an absolute http(s) URL")
	ErrInvalidTimeout        = errors.New("reader.http.timeout_sec must be non-negative")
	ErrInvalidMaxBody        = errors.New("reader.http.max_body_kb must be at least 1")
	ErrFeedMissingURL        = errors.New("feed url is required")
	ErrFeedInvalidURL        = errors.New("feed url must be an absolute http(s) URL")
	ErrInvalidLimit          = errors.New("reader.display.limit must be non-negative")
	ErrInvalidWidth          = errors.New("reader.display.description_width must be at least 10")
	ErrInvalidLogLevel       = errors.New("reader.logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete reader configuration.
type Config struct {
	Reader ReaderConfig `yaml:"reader"`
}

// ReaderConfig contains reader-specific settings.
type ReaderConfig struct {
	Source  string        `yaml:"source"`
	Proxy   ProxyConfig   `yaml:"proxy"`
	Topics  TopicsConfig  `yaml:"topics"`
	Logging LoggingConfig `yaml:"logging"`
	Feeds   []FeedConfig  `yaml:"feeds"`
	Display DisplayConfig `yaml:"display"`
	HTTP    HTTPConfig    `yaml:"http"`
}

// ProxyConfig configures the feed-to-JSON conversion service.
type ProxyConfig struct {
	Endpoint string `yaml:"endpoint"`
}

// TopicsConfig configures the local topic listing backend.
type TopicsConfig struct {
	Endpoint string `yaml:"endpoint"`
}

// HTTPConfig configures outbound requests.
type HTTPConfig struct {
	TimeoutSec *int   `yaml:"timeout_sec"`
	UserAgent  string `yaml:"user_agent"`
	MaxBodyKb  int    `yaml:"max_body_kb"`
}

// FeedConfig is a named feed the reader can load without a URL on the command line.
type FeedConfig struct {
	Name    string `yaml:"name"`
	URL     string `yaml:"url"`
	Enabled bool   `yaml:"enabled"`
}

// DisplayConfig controls terminal output.
type DisplayConfig struct {
	Limit            int `yaml:"limit"`
	DescriptionWidth int `yaml:"description_width"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns a configuration usable without a file.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// LoadConfig loads configuration from YAML file.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyDefaults()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault loads filepath, or returns Default when filepath is empty.
func LoadOrDefault(filepath string) (*Config, error) {
	if filepath == "" {
		return Default(), nil
	}

	return LoadConfig(filepath)
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyDefaults fills omitted values. An explicit timeout_sec of 0 is kept.
func (c *Config) applyDefaults() {
	r := &c.Reader
	if r.Source == "" {
		r.Source = SourceProxy
	}

	if r.Proxy.Endpoint == "" {
		r.Proxy.Endpoint = DefaultProxyEndpoint
	}

	if r.Topics.Endpoint == "" {
		r.Topics.Endpoint = DefaultTopicsEndpoint
	}

	if r.HTTP.MaxBodyKb == 0 {
		r.HTTP.MaxBodyKb = DefaultMaxBodyKb
	}

	if r.HTTP.UserAgent == "" {
		r.HTTP.UserAgent = DefaultUserAgent
	}

	if r.Display.Limit == 0 {
		r.Display.Limit = DefaultLimit
	}

	if r.Display.DescriptionWidth == 0 {
		r.Display.DescriptionWidth = DefaultDescriptionWidth
	}

	if r.Logging.Level == "" {
		r.Logging.Level = "info"
	}

	if r.HTTP.TimeoutSec == nil {
		timeout := DefaultTimeoutSec
		r.HTTP.TimeoutSec = &timeout
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	r := c.Reader

	if r.Source != SourceProxy && r.Source != SourceDirect {
		return ErrInvalidSource
	}

	if !isHTTPURL(r.Proxy.Endpoint) {
		return ErrInvalidProxyEndpoint
	}

	if !isHTTPURL(r.Topics.Endpoint) {
		return ErrInvalidTopicsEndpoint
	}

	if r.HTTP.TimeoutSec != nil && *r.HTTP.TimeoutSec < 0 {
		return ErrInvalidTimeout
	}

	if r.HTTP.MaxBodyKb < 1 {
		return ErrInvalidMaxBody
	}

	for i, feed := range r.Feeds {
		if feed.URL == "" {
			return fmt.Errorf("%w: feeds[%d]", ErrFeedMissingURL, i)
		}

		if !isHTTPURL(feed.URL) {
			return fmt.Errorf("%w: feeds[%d]", ErrFeedInvalidURL, i)
		}
	}

	if r.Display.Limit < 0 {
		return ErrInvalidLimit
	}

	if r.Display.DescriptionWidth < 10 {
		return ErrInvalidWidth
	}

	if _, ok := logger.ParseLevel(r.Logging.Level); !ok {
		return ErrInvalidLogLevel
	}

	return nil
}

// GetEnabledFeeds returns only enabled feeds.
func (c *Config) GetEnabledFeeds() []FeedConfig {
	var enabled []FeedConfig

	for _, feed := range c.Reader.Feeds {
		if feed.Enabled {
			enabled = append(enabled, feed)
		}
	}

	return enabled
}

// FindFeed returns the feed with the given name.
func (c *Config) FindFeed(name string) (FeedConfig, bool) {
	for _, feed := range c.Reader.Feeds {
		if feed.Name == name {
			return feed, true
		}
	}

	return FeedConfig{}, false
}

// GetTimeout returns the HTTP timeout; zero means no timeout.
func (h HTTPConfig) GetTimeout() time.Duration {
	if h.TimeoutSec == nil {
		return DefaultTimeoutSec * time.Second
	}

	return time.Duration(*h.TimeoutSec) * time.Second
}

// GetMaxBodyBytes returns the response size limit in bytes.
func (h HTTPConfig) GetMaxBodyBytes() int64 {
	return int64(h.MaxBodyKb) * 1024
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Source: %s, Feeds: %d, Proxy: %s, Topics: %s}",
		c.Reader.Source,
		len(c.Reader.Feeds),
		c.Reader.Proxy.Endpoint,
		c.Reader.Topics.Endpoint,
	)
}

func isHTTPURL(raw string) bool {
	return utils.NewHTTPHelper("").IsValidURL(raw)
}
