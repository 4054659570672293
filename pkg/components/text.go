package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VisibleLen returns the visible character width of s in terminal cells.
// ANSI escape sequences are ignored and wide characters count as two.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts s to at most maxWidth visible cells, keeping the escape
// sequences that precede the cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "")
}

// TruncateWithTail cuts s to at most maxWidth cells, ending in tail when
// anything was removed. The tail counts toward maxWidth.
func TruncateWithTail(s string, maxWidth int, tail string) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, tail)
}

// PadRight pads s with trailing spaces to width cells.
func PadRight(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vis)
}

// PadLeft pads s with leading spaces to width cells.
func PadLeft(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	return strings.Repeat(" ", width-vis) + s
}

// PadCenter centers s within width cells. An odd remainder goes on the
// right.
func PadCenter(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	total := width - vis
	left := total / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", total-left)
}

// AlignText places s within exactly width cells according to align,
// truncating when it does not fit.
func AlignText(s string, width int, align Align) string {
	if width <= 0 {
		return ""
	}
	if VisibleLen(s) > width {
		return Truncate(s, width)
	}
	switch align {
	case AlignCenter:
		return PadCenter(s, width)
	case AlignRight:
		return PadLeft(s, width)
	default:
		return PadRight(s, width)
	}
}

// fitLine truncates or right-pads line to exactly targetWidth cells.
func fitLine(line string, targetWidth int) string {
	if targetWidth <= 0 {
		return ""
	}
	vis := VisibleLen(line)
	if vis > targetWidth {
		line = Truncate(line, targetWidth)
		vis = VisibleLen(line)
	}
	if vis < targetWidth {
		return line + strings.Repeat(" ", targetWidth-vis)
	}
	return line
}

// frame joins lines into a block of exactly width x height cells. Missing
// lines are blank and extra lines are dropped.
func frame(lines []string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	out := make([]string, height)
	for i := range out {
		if i < len(lines) {
			out[i] = fitLine(lines[i], width)
		} else {
			out[i] = strings.Repeat(" ", width)
		}
	}
	return strings.Join(out, "\n")
}
