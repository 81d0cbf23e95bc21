package crawler

import "foxfeed/internal/models"

// Status tells a loaded feed apart from a failed one.
type Status int

// Load outcomes.
const (
	StatusLoaded Status = iota
	StatusFailed
)

// String returns the status name.
func (s Status) String() string {
	if s == StatusFailed {
		return "failed"
	}

	return "loaded"
}

// Result is the outcome of loading one feed. A loaded feed may hold zero
// articles; a failed one always holds none and carries Err.
type Result struct {
	Err      error
	FeedURL  string
	Articles []models.Article
	Status   Status
}

// Failed reports whether the load failed.
func (r Result) Failed() bool {
	return r.Status == StatusFailed
}

func loaded(feedURL string, articles []models.Article) Result {
	if articles == nil {
		articles = []models.Article{}
	}

	return Result{FeedURL: feedURL, Articles: articles, Status: StatusLoaded}
}

func failed(feedURL string, err error) Result {
	return Result{FeedURL: feedURL, Err: err, Status: StatusFailed}
}
