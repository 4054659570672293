package components

import "strings"

// Column is one fixed-width table column.
type Column struct {
	Title string
	Width int
}

// Table draws rows of plain cells under a header. The header is followed
// by one blank row. Cells are cut or padded to their column width and
// columns separated by Spacing blanks. Anything past the render width or
// height is clipped.
type Table struct {
	Columns     []Column
	Rows        [][]string
	Spacing     int
	HeaderStyle Style
	RowStyle    Style
}

// headerGap is the number of blank rows between the header and the body.
const headerGap = 1

// Render draws the table.
func (t Table) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	titles := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		titles[i] = c.Title
	}

	lines := make([]string, 0, len(t.Rows)+1+headerGap)
	lines = append(lines, t.renderRow(titles, t.HeaderStyle))
	for i := 0; i < headerGap; i++ {
		lines = append(lines, "")
	}
	for _, row := range t.Rows {
		if len(lines) >= height {
			break
		}
		lines = append(lines, t.renderRow(row, t.RowStyle))
	}
	return frame(lines, width, height)
}

// Width returns the total width the columns ask for.
func (t Table) Width() int {
	if len(t.Columns) == 0 {
		return 0
	}
	total := t.spacing() * (len(t.Columns) - 1)
	for _, c := range t.Columns {
		total += max(c.Width, 0)
	}
	return total
}

func (t Table) spacing() int {
	return max(t.Spacing, 0)
}

func (t Table) renderRow(cells []string, style Style) string {
	gap := strings.Repeat(" ", t.spacing())
	var buf strings.Builder
	for i, col := range t.Columns {
		if i > 0 {
			buf.WriteString(gap)
		}
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		buf.WriteString(style.Render(fitLine(cell, col.Width)))
	}
	return buf.String()
}
