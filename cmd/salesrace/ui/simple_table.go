package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SimpleTable is a simple table component for rendering static rows.
type SimpleTable struct {
	Headers []string
	Rows    [][]string
	// RowStyle picks the style for row i. Nil uses the body style.
	RowStyle func(i int) lipgloss.Style
	// AlignRight marks columns rendered flush right.
	AlignRight map[int]bool
}

// NewSimpleTable creates a new SimpleTable with the given headers.
func NewSimpleTable(headers ...string) *SimpleTable {
	return &SimpleTable{
		Headers:    headers,
		Rows:       make([][]string, 0),
		AlignRight: map[int]bool{},
	}
}

// AddRow adds a row to the table.
func (t *SimpleTable) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

// View renders the table using the provided styles.
func (t *SimpleTable) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	colWidths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				colWidths[i] = max(colWidths[i], lipgloss.Width(cell))
			}
		}
	}
	// lipgloss Width includes padding
	for i := range colWidths {
		colWidths[i] += 2
	}

	var sb strings.Builder
	headerStyle := styles.Muted.Padding(0, 1)
	for i, h := range t.Headers {
		sb.WriteString(t.align(headerStyle, i).Width(colWidths[i]).Render(h))
	}
	sb.WriteString("\n")

	total := 0
	for _, w := range colWidths {
		total += w
	}
	sb.WriteString(styles.RenderDivider(total) + "\n")

	for r, row := range t.Rows {
		rowStyle := styles.Body
		if t.RowStyle != nil {
			rowStyle = t.RowStyle(r)
		}
		rowStyle = rowStyle.Padding(0, 1)
		for i, cell := range row {
			if i < len(colWidths) {
				sb.WriteString(t.align(rowStyle, i).Width(colWidths[i]).Render(cell))
			}
		}
		if r < len(t.Rows)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (t *SimpleTable) align(st lipgloss.Style, col int) lipgloss.Style {
	if t.AlignRight[col] {
		return st.Align(lipgloss.Right)
	}
	return st.Align(lipgloss.Left)
}
