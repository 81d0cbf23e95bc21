package formatter

import (
	"strings"

	"foxfeed/internal/models"
)

// FormatTopics renders topics as a table.
func FormatTopics(topics []models.Topic) string {
	rows := make([][]string, 0, len(topics))

	for _, t := range topics {
		polled := "never"
		if t.LastPolledAt != nil && *t.LastPolledAt != "" {
			polled = *t.LastPolledAt
		}

		rows = append(rows, []string{cell(t.ID, 0), cell(t.Title, DefaultTitleWidth), cell(t.URL, 0), polled})
	}

	return strings.Join(renderTable([]string{"ID", "TITLE", "URL", "LAST POLLED"}, rows), "\n")
}
