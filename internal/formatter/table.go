// Package formatter renders articles and topics as aligned terminal tables.
package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// minColumnWidth is the shortest separator written under a header.
const minColumnWidth = 3

// renderTable lays out a header and rows as a pipe table padded by display
// width, so CJK titles and emoji line up.
func renderTable(header []string, rows [][]string) []string {
	colCount := len(header)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	// 1. Calculate max widths (using display width)
	colWidths := make([]int, colCount)

	for _, row := range append([][]string{header}, rows...) {
		for i := 0; i < len(row); i++ {
			if width := runewidth.StringWidth(row[i]); width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	for i := range colWidths {
		if colWidths[i] < minColumnWidth {
			colWidths[i] = minColumnWidth
		}
	}

	// 2. Reconstruct lines
	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, renderRow(header, colWidths))

	separator := make([]string, colCount)
	for i, w := range colWidths {
		separator[i] = strings.Repeat("-", w)
	}

	lines = append(lines, renderRow(separator, colWidths))

	for _, row := range rows {
		lines = append(lines, renderRow(row, colWidths))
	}

	return lines
}

func renderRow(row []string, colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, width := range colWidths {
		content := ""
		if j < len(row) {
			content = row[j]
		}

		sb.WriteString(" ")
		sb.WriteString(runewidth.FillRight(content, width))
		sb.WriteString(" |")
	}

	return sb.String()
}

// cell prepares a value for a table cell: single line, no pipes, at most
// width display columns.
func cell(value string, width int) string {
	value = strings.Join(strings.Fields(value), " ")
	value = strings.ReplaceAll(value, "|", "/")

	if width > 0 && runewidth.StringWidth(value) > width {
		return runewidth.Truncate(value, width, "…")
	}

	return value
}
