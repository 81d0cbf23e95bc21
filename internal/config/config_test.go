package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Helper to create a temp config file.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}

	return configPath
}

// validConfigYAML is a complete valid configuration.
const validConfigYAML = `
reader:
  source: direct
  proxy:
    endpoint: "https://api.rss2json.com/v1/api.json"
  topics:
    endpoint: "http://localhost:9091/api/v1/feed"
  http:
    timeout_sec: 10
    max_body_kb: 512
    user_agent: "foxfeed-test/1.0"
  feeds:
    - name: google-blog
      url: "https://blog.google/rss/"
      enabled: true
    - name: archived
      url: "https://example.com/old.xml"
      enabled: false
  display:
    limit: 5
    description_width: 40
  logging:
    level: debug
`

func validConfig() *Config {
	cfg := Default()
	cfg.Reader.Feeds = []FeedConfig{{Name: "blog", URL: "https://example.com/rss", Enabled: true}}

	return cfg
}

func TestLoadConfig_Valid(t *testing.T) {
	configPath := createTempConfigFile(t, validConfigYAML)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Reader.Source != SourceDirect {
		t.Errorf("Source = %q, want direct", cfg.Reader.Source)
	}

	if len(cfg.Reader.Feeds) != 2 {
		t.Errorf("Expected 2 feeds, got %d", len(cfg.Reader.Feeds))
	}

	if got := cfg.Reader.HTTP.GetTimeout(); got != 10*time.Second {
		t.Errorf("GetTimeout() = %v, want 10s", got)
	}

	if got := cfg.Reader.HTTP.GetMaxBodyBytes(); got != 512*1024 {
		t.Errorf("GetMaxBodyBytes() = %d, want %d", got, 512*1024)
	}
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	configPath := createTempConfigFile(t, "reader:\n  logging:\n    level: warn\n")

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Reader.Source != SourceProxy {
		t.Errorf("Source = %q, want proxy", cfg.Reader.Source)
	}

	if cfg.Reader.Proxy.Endpoint != DefaultProxyEndpoint {
		t.Errorf("Proxy.Endpoint = %q", cfg.Reader.Proxy.Endpoint)
	}

	if cfg.Reader.Topics.Endpoint != DefaultTopicsEndpoint {
		t.Errorf("Topics.Endpoint = %q", cfg.Reader.Topics.Endpoint)
	}

	if got := cfg.Reader.HTTP.GetTimeout(); got != DefaultTimeoutSec*time.Second {
		t.Errorf("GetTimeout() = %v, want default", got)
	}

	if cfg.Reader.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Reader.Logging.Level)
	}
}

func TestLoadConfig_ExplicitZeroTimeout(t *testing.T) {
	configPath := createTempConfigFile(t, "reader:\n  http:\n    timeout_sec: 0\n")

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if got := cfg.Reader.HTTP.GetTimeout(); got != 0 {
		t.Errorf("GetTimeout() = %v, want 0 (disabled)", got)
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("Expected error for nonexistent file, got nil")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	configPath := createTempConfigFile(t, "invalid: yaml: content: [}")

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("Expected error for invalid YAML, got nil")
	}
}

func TestConfig_Validate(t *testing.T) {
	negative := -1

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{"valid", func(c *Config) {}, nil},
		{"unknown source", func(c *Config) { c.Reader.Source = "ftp" }, ErrInvalidSource},
		{"relative proxy endpoint", func(c *Config) { c.Reader.Proxy.Endpoint = "/api.json" }, ErrInvalidProxyEndpoint},
		{"bad topics endpoint", func(c *Config) { c.Reader.Topics.Endpoint = "localhost:9091" }, ErrInvalidTopicsEndpoint},
		{"negative timeout", func(c *Config) { c.Reader.HTTP.TimeoutSec = &negative }, ErrInvalidTimeout},
		{"zero body limit", func(c *Config) { c.Reader.HTTP.MaxBodyKb = 0 }, ErrInvalidMaxBody},
		{"feed without url", func(c *Config) { c.Reader.Feeds[0].URL = "" }, ErrFeedMissingURL},
		{"feed with bad url", func(c *Config) { c.Reader.Feeds[0].URL = "ftp://example.com/rss" }, ErrFeedInvalidURL},
		{"negative limit", func(c *Config) { c.Reader.Display.Limit = -3 }, ErrInvalidLimit},
		{"narrow description", func(c *Config) { c.Reader.Display.DescriptionWidth = 4 }, ErrInvalidWidth},
		{"bad log level", func(c *Config) { c.Reader.Logging.Level = "verbose" }, ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}

				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_GetEnabledFeeds(t *testing.T) {
	cfg := &Config{
		Reader: ReaderConfig{
			Feeds: []FeedConfig{
				{Name: "a", Enabled: true},
				{Name: "b", Enabled: false},
				{Name: "c", Enabled: true},
			},
		},
	}

	enabled := cfg.GetEnabledFeeds()
	if len(enabled) != 2 {
		t.Fatalf("Expected 2 enabled feeds, got %d", len(enabled))
	}
}

func TestConfig_FindFeed(t *testing.T) {
	cfg := validConfig()

	feed, ok := cfg.FindFeed("blog")
	if !ok || feed.URL != "https://example.com/rss" {
		t.Errorf("FindFeed(blog) = %+v, %v", feed, ok)
	}

	if _, ok := cfg.FindFeed("missing"); ok {
		t.Error("FindFeed(missing) reported a match")
	}
}

func TestConfig_String(t *testing.T) {
	if str := validConfig().String(); str == "" {
		t.Error("Expected non-empty string representation")
	}
}

func TestConfig_SaveConfig(t *testing.T) {
	cfg := validConfig()

	tmpDir := t.TempDir()
	savePath := filepath.Join(tmpDir, "saved_config.yaml")

	if err := cfg.SaveConfig(savePath); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	// Verify we can load it back
	loaded, err := LoadConfig(savePath)
	if err != nil {
		t.Fatalf("Failed to load saved config: %v", err)
	}

	if loaded.Reader.Feeds[0].Name != "blog" {
		t.Error("Loaded config does not match saved config")
	}

	if loaded.Reader.HTTP.GetTimeout() != cfg.Reader.HTTP.GetTimeout() {
		t.Error("Loaded timeout does not match saved timeout")
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault(\"\") failed: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() does not validate: %v", err)
	}

	if _, err := LoadOrDefault("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}
