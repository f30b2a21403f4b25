// File: internal/ui/table.go
// Brief: Internal ui package implementation for 'tables'.

package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var headerCaser = cases.Upper(language.Und)

// Table renders rows in padded columns. Highlight marks rows drawn in the
// accent color when Colorize is set.
type Table struct {
	Headers   []string
	Rows      [][]string
	Highlight map[int]bool
	Colorize  bool
}

var (
	tableHeader = color.New(color.Bold).SprintFunc()
	tableAccent = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// Write renders the table to w.
func (t Table) Write(w io.Writer) error {
	widths := make([]int, len(t.Headers))
	headers := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		headers[i] = headerCaser.String(h)
		widths[i] = runewidth.StringWidth(headers[i])
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(cell))
			}
		}
	}
	if len(headers) > 0 {
		line := formatRow(headers, widths)
		if t.Colorize {
			line = tableHeader(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	for idx, row := range t.Rows {
		line := formatRow(row, widths)
		if t.Colorize && t.Highlight[idx] {
			line = tableAccent(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// formatRow pads every cell but the last; trailing blanks are trimmed.
func formatRow(cells []string, widths []int) string {
	parts := make([]string, 0, len(cells))
	for i, cell := range cells {
		if i == len(cells)-1 || i >= len(widths) {
			parts = append(parts, cell)
			continue
		}
		parts = append(parts, runewidth.FillRight(cell, widths[i]))
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}
