package formatter

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"foxfeed/internal/models"
	"foxfeed/pkg/utils"
)

// Default column widths.
const (
	DefaultTitleWidth       = 50
	DefaultDescriptionWidth = 60
)

// Options controls article table layout.
type Options struct {
	Limit            int
	TitleWidth       int
	DescriptionWidth int
	ShowLinks        bool
}

// DefaultOptions returns the layout used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		TitleWidth:       DefaultTitleWidth,
		DescriptionWidth: DefaultDescriptionWidth,
	}
}

var (
	textPolicy   = bluemonday.StrictPolicy()
	stringHelper = utils.NewStringHelper()
)

// Excerpt converts description HTML to a single line of plain text.
func Excerpt(description string) string {
	text := html.UnescapeString(textPolicy.Sanitize(description))

	return stringHelper.NormalizeWhitespace(text)
}

// CardDate formats a date the way article cards show it, e.g. "NOV 21".
func CardDate(a models.Article) string {
	return strings.ToUpper(a.Date.Format("Jan 02"))
}

// FormatArticles renders articles as a table. A positive Limit keeps only the
// first Limit articles.
func FormatArticles(articles []models.Article, opts Options) string {
	if opts.Limit > 0 && len(articles) > opts.Limit {
		articles = articles[:opts.Limit]
	}

	header := []string{"DATE", "CATEGORY", "TITLE", "DESCRIPTION", "IMAGE"}
	if opts.ShowLinks {
		header = append(header, "LINK")
	}

	rows := make([][]string, 0, len(articles))

	for _, a := range articles {
		image := "-"
		if a.HasImage() {
			image = "yes"
		}

		row := []string{
			CardDate(a),
			cell(a.Category, 0),
			cell(a.Title, opts.TitleWidth),
			cell(Excerpt(a.Description), opts.DescriptionWidth),
			image,
		}

		if opts.ShowLinks {
			row = append(row, cell(a.Link, 0))
		}

		rows = append(rows, row)
	}

	return strings.Join(renderTable(header, rows), "\n")
}
