package crawler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestScraper_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "foxfeed-test/1.0" {
			t.Errorf("User-Agent = %q", got)
		}

		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer server.Close()

	s := NewScraperWithClient(server.Client(), "foxfeed-test/1.0", 1024)

	body, status, _, err := s.FetchWithMetrics(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchWithMetrics failed: %v", err)
	}

	if status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}

	if string(body) != `{"items":[]}` {
		t.Errorf("body = %q", body)
	}
}

func TestScraper_Fetch_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer server.Close()

	s := NewScraperWithClient(server.Client(), "foxfeed-test/1.0", 1024)

	_, status, _, err := s.FetchWithMetrics(context.Background(), server.URL)
	if !errors.Is(err, ErrUnexpectedStatusCode) {
		t.Fatalf("error = %v, want ErrUnexpectedStatusCode", err)
	}

	if status != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", status)
	}
}

func TestScraper_Fetch_BodyTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 2048)))
	}))
	defer server.Close()

	s := NewScraperWithClient(server.Client(), "foxfeed-test/1.0", 1024)

	if _, err := s.Fetch(context.Background(), server.URL); !errors.Is(err, ErrBodyTooLarge) {
		t.Fatalf("error = %v, want ErrBodyTooLarge", err)
	}
}

func TestScraper_Fetch_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{}"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewScraperWithClient(server.Client(), "foxfeed-test/1.0", 1024)
	if _, err := s.Fetch(ctx, server.URL); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}
