package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3AA99F"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFCF0"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6F6E69"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#575653"))
)

// table is a bordered text table for terminal output. The first column is
// left-aligned, all others right-aligned.
type table struct {
	title   string
	headers []string
	rows    [][]string
}

func (t table) render() string {
	numCols := len(t.headers)
	widths := make([]int, numCols)
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < numCols && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder

	if t.title != "" {
		b.WriteString(headerStyle.Render(t.title))
		b.WriteString("\n")
	}

	writeRule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	writeRule("╭", "┬", "╮")

	b.WriteString(dimStyle.Render("│"))
	for i, h := range t.headers {
		b.WriteString(headerStyle.Render(fmt.Sprintf(" %-*s ", widths[i], h)))
		b.WriteString(dimStyle.Render("│"))
	}
	b.WriteString("\n")
	writeRule("├", "┼", "┤")

	for _, row := range t.rows {
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			var padded string
			if i == 0 {
				padded = fmt.Sprintf(" %-*s ", widths[i], cell)
			} else {
				padded = fmt.Sprintf(" %*s ", widths[i], cell)
			}
			b.WriteString(valueStyle.Render(padded))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
	}

	writeRule("╰", "┴", "╯")
	return b.String()
}
