package utils

import "testing"

func TestHTTPHelper_IsValidURL(t *testing.T) {
	h := NewHTTPHelper("test/1.0")

	tests := []struct {
		in   string
		want bool
	}{
		{"https://blog.google/rss/", true},
		{"http://localhost:9091/api/v1/feed", true},
		{"ftp://example.com/feed", false},
		{"/relative/path", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := h.IsValidURL(tt.in); got != tt.want {
			t.Errorf("IsValidURL(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHTTPHelper_BuildHeaders(t *testing.T) {
	h := NewHTTPHelper("foxfeed-test/1.0")

	headers := h.BuildHeaders(map[string]string{"Accept": "application/json"})
	if got := headers.Get("User-Agent"); got != "foxfeed-test/1.0" {
		t.Errorf("User-Agent = %q", got)
	}

	if got := headers.Get("Accept"); got != "application/json" {
		t.Errorf("Accept = %q, want override", got)
	}
}

func TestStringHelper(t *testing.T) {
	s := NewStringHelper()

	if got := s.NormalizeWhitespace("  a \n\t b  c "); got != "a b c" {
		t.Errorf("NormalizeWhitespace = %q", got)
	}

	if got := s.StripURLNoise(" `https://blog.google/rss/`\n"); got != "https://blog.google/rss/" {
		t.Errorf("StripURLNoise = %q", got)
	}

	if got := s.StripURLNoise(`"https://example.com/a'b"`); got != "https://example.com/ab" {
		t.Errorf("StripURLNoise = %q", got)
	}
}
