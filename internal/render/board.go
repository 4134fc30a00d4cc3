// Package render turns grids into terminal output: the plain machine-checkable
// form used for solutions, and a styled board for human-facing commands.
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rmerry/dusudoku/internal/domain"
)

// Plain writes the solved grid as nine rows of nine space-separated digits,
// preceded by a blank line. Each row carries a trailing space.
func Plain(w io.Writer, g domain.Grid) error {
	var b strings.Builder
	for p, d := range g {
		if p%domain.Size == 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('0' + d)
		b.WriteByte(' ')
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

var (
	digitStyle = lipgloss.NewStyle().Bold(true)
	emptyStyle = lipgloss.NewStyle().Faint(true)
	frameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

const divider = "──────┼───────┼──────"

// Boxed renders the grid as a bordered board with 3x3 block separators.
// Empty cells show as a faint dot.
func Boxed(g domain.Grid) string {
	rows := make([]string, 0, domain.Size+2)
	for r := 0; r < domain.Size; r++ {
		var b strings.Builder
		for c := 0; c < domain.Size; c++ {
			if c > 0 {
				b.WriteByte(' ')
				if c%3 == 0 {
					b.WriteString("│ ")
				}
			}
			d := g[r*domain.Size+c]
			if d == 0 {
				b.WriteString(emptyStyle.Render("·"))
			} else {
				b.WriteString(digitStyle.Render(string('0' + d)))
			}
		}
		rows = append(rows, b.String())
		if r == 2 || r == 5 {
			rows = append(rows, divider)
		}
	}
	return frameStyle.Render(strings.Join(rows, "\n"))
}
