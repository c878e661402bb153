package explore

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// resultRow is one rendered record: the range descriptor plus the text
// columns (one for errors, three for bindings, with an optional leading
// module column when browsing all modules).
type resultRow struct {
	Range string
	Cols  []string
}

// resultsPane is a scrollable list of filtered records.
type resultsPane struct {
	title   string
	rows    []resultRow
	cursor  int
	offset  int
	width   int
	height  int
	focused bool
}

func newResultsPane(title string) resultsPane {
	return resultsPane{title: title}
}

// setRows swaps in a fresh filter pass, clamping cursor and scroll.
func (rp *resultsPane) setRows(rows []resultRow) {
	rp.rows = rows
	if rp.cursor >= len(rp.rows) {
		rp.cursor = max(0, len(rp.rows)-1)
	}
	rp.ensureVisible()
}

func (rp resultsPane) Update(msg tea.Msg) (resultsPane, tea.Cmd) {
	if !rp.focused {
		return rp, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case keyMatches(msg, defaultKeys.Up):
			if rp.cursor > 0 {
				rp.cursor--
				rp.ensureVisible()
			}
		case keyMatches(msg, defaultKeys.Down):
			if rp.cursor < len(rp.rows)-1 {
				rp.cursor++
				rp.ensureVisible()
			}
		case keyMatches(msg, defaultKeys.PageDown):
			rp.cursor = min(rp.cursor+rp.visibleRows(), max(0, len(rp.rows)-1))
			rp.ensureVisible()
		case keyMatches(msg, defaultKeys.PageUp):
			rp.cursor = max(rp.cursor-rp.visibleRows(), 0)
			rp.ensureVisible()
		}
	}

	return rp, nil
}

func (rp resultsPane) View() string {
	if rp.width <= 0 || rp.height <= 0 {
		return ""
	}

	var b strings.Builder
	visibleEnd := min(rp.offset+rp.visibleRows(), len(rp.rows))

	for i := rp.offset; i < visibleEnd; i++ {
		row := rp.rows[i]

		rangeCell := rangeStyle.Render(padRight(row.Range, 12))
		line := " " + rangeCell + " " + truncateString(strings.Join(row.Cols, "  "), rp.width-17)

		if i == rp.cursor && rp.focused {
			line = selectedRowStyle.Width(rp.width - 2).Render(stripAnsi(line))
		}

		line = padRight(line, rp.width-2)
		b.WriteString(line)
		if i < visibleEnd-1 {
			b.WriteString("\n")
		}
	}

	// Fill remaining lines
	for i := visibleEnd - rp.offset; i < rp.visibleRows(); i++ {
		b.WriteString(strings.Repeat(" ", rp.width-2))
		if i < rp.visibleRows()-1 {
			b.WriteString("\n")
		}
	}

	title := titleStyle.Render(fmt.Sprintf(" %s ", rp.title)) +
		countStyle.Render(fmt.Sprintf(" %d", len(rp.rows)))

	borderStyle := inactiveBorderStyle
	if rp.focused {
		borderStyle = activeBorderStyle
	}

	content := borderStyle.
		Width(rp.width - 2).
		Height(rp.height - 3).
		Render(b.String())

	return lipgloss.JoinVertical(lipgloss.Left, title, content)
}

func (rp resultsPane) visibleRows() int {
	return max(1, rp.height-4) // account for title + border
}

func (rp *resultsPane) ensureVisible() {
	if rp.cursor < rp.offset {
		rp.offset = rp.cursor
	}
	if rp.cursor >= rp.offset+rp.visibleRows() {
		rp.offset = rp.cursor - rp.visibleRows() + 1
	}
}

func (rp *resultsPane) setSize(w, h int) {
	rp.width = w
	rp.height = h
}

// Helper functions

func truncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, width int) string {
	visLen := lipgloss.Width(s)
	if visLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visLen)
}

// stripAnsi removes ANSI escape sequences for re-styling.
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
