package cellbuf

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Render converts the buffer into a styled string, rows joined with
// "\n". Consecutive cells sharing a StyleKey are rendered as one run
// with a single Style.Render call. Keys missing from styles render as
// plain text. An empty buffer renders as "".
func (b *Buffer) Render(styles map[StyleKey]lipgloss.Style) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}
	lines := make([]string, b.H)
	var run, line strings.Builder
	for y, row := range b.Cells {
		line.Reset()
		flush := func(key StyleKey) {
			if run.Len() == 0 {
				return
			}
			if s, ok := styles[key]; ok {
				line.WriteString(s.Render(run.String()))
			} else {
				line.WriteString(run.String())
			}
			run.Reset()
		}
		key := row[0].Style
		for _, c := range row {
			if c.Style != key {
				flush(key)
				key = c.Style
			}
			run.WriteRune(c.Ch)
		}
		flush(key)
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

// Plain returns the buffer's characters without any styling.
func (b *Buffer) Plain() string {
	return b.Render(nil)
}
