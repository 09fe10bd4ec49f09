package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table lays out venue listings and score breakdowns in aligned columns.
// Rows added with AddScored are tinted by their comfort score, so calm and
// lively entries stand apart at a glance.
type Table struct {
	columns []string
	rows    []tableRow
}

type tableRow struct {
	cells  []string
	scored bool
	score  int
}

// NewTable returns an empty table with the given column headings.
func NewTable(columns ...string) *Table {
	return &Table{columns: columns}
}

// AddRow appends an unstyled row. Missing cells render empty; extras are
// dropped.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, tableRow{cells: t.fit(cells)})
}

// AddScored appends a row rendered in the style tier for the given 0-100
// comfort score.
func (t *Table) AddScored(score int, cells ...string) {
	t.rows = append(t.rows, tableRow{cells: t.fit(cells), scored: true, score: score})
}

func (t *Table) fit(cells []string) []string {
	fitted := make([]string, len(t.columns))
	copy(fitted, cells)
	return fitted
}

// columnWidths measures each column against its heading and widest cell.
func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.columns))
	for i, c := range t.columns {
		widths[i] = len(c)
	}
	for _, r := range t.rows {
		for i, cell := range r.cells {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

// Render returns the table as a string: styled headings, a rule, then the
// rows in insertion order.
func (t *Table) Render() string {
	if len(t.columns) == 0 {
		return ""
	}
	widths := t.columnWidths()

	var b strings.Builder
	for i, c := range t.columns {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(StyleHeader.Render(pad(c, widths[i])))
	}
	b.WriteByte('\n')

	for i, w := range widths {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(StyleMuted.Render(strings.Repeat("─", w)))
	}
	b.WriteByte('\n')

	for _, r := range t.rows {
		style := lipgloss.NewStyle()
		if r.scored {
			style = ScoreStyle(r.score)
		}
		for i, cell := range r.cells {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(style.Render(pad(cell, widths[i])))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String implements fmt.Stringer.
func (t *Table) String() string {
	return t.Render()
}

// Print writes the table to stdout.
func (t *Table) Print() {
	fmt.Print(t.Render())
}

// pad right-pads a string to the given width.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
