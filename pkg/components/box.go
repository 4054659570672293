package components

import (
	"fmt"
	"strings"
)

// BorderStyle selects which set of box-drawing characters to use.
type BorderStyle int

const (
	// BorderNone renders no border at all.
	BorderNone BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters.
	BorderSingle
	// BorderDouble uses double-line box-drawing characters.
	BorderDouble
	// BorderRounded uses single-line characters with rounded corners.
	BorderRounded
	// BorderHeavy uses heavy (thick) box-drawing characters.
	BorderHeavy
	// BorderDashed uses dashed box-drawing characters.
	BorderDashed
)

var borderNames = map[BorderStyle]string{
	BorderNone:    "none",
	BorderSingle:  "plain",
	BorderDouble:  "double",
	BorderRounded: "rounded",
	BorderHeavy:   "heavy",
	BorderDashed:  "dashed",
}

// String returns the configuration name of the border style.
func (b BorderStyle) String() string {
	if name, ok := borderNames[b]; ok {
		return name
	}
	return fmt.Sprintf("BorderStyle(%d)", int(b))
}

// ParseBorderStyle maps a configuration name to a BorderStyle. "single"
// and "thick" are accepted as aliases.
func ParseBorderStyle(name string) (BorderStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return BorderNone, nil
	case "plain", "single", "":
		return BorderSingle, nil
	case "double":
		return BorderDouble, nil
	case "rounded":
		return BorderRounded, nil
	case "heavy", "thick":
		return BorderHeavy, nil
	case "dashed":
		return BorderDashed, nil
	default:
		return BorderNone, fmt.Errorf("unknown border style %q", name)
	}
}

// borderChars holds the six characters that draw a box outline.
type borderChars struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
}

var borderSets = map[BorderStyle]borderChars{
	BorderSingle: {
		TopLeft: "┌", TopRight: "┐",
		BottomLeft: "└", BottomRight: "┘",
		Horizontal: "─", Vertical: "│",
	},
	BorderDouble: {
		TopLeft: "╔", TopRight: "╗",
		BottomLeft: "╚", BottomRight: "╝",
		Horizontal: "═", Vertical: "║",
	},
	BorderRounded: {
		TopLeft: "╭", TopRight: "╮",
		BottomLeft: "╰", BottomRight: "╯",
		Horizontal: "─", Vertical: "│",
	},
	BorderHeavy: {
		TopLeft: "┏", TopRight: "┓",
		BottomLeft: "┗", BottomRight: "┛",
		Horizontal: "━", Vertical: "┃",
	},
	BorderDashed: {
		TopLeft: "┌", TopRight: "┐",
		BottomLeft: "└", BottomRight: "┘",
		Horizontal: "┄", Vertical: "┆",
	},
}

// BoxStyle controls the visual appearance of a rendered box.
type BoxStyle struct {
	Border      BorderStyle
	Title       string
	TitleAlign  Align
	BorderStyle Style
	TitleStyle  Style
}

// RenderBox renders content inside a border, returning exactly height
// lines of exactly width cells. Content lines are truncated or padded to
// the interior width; missing lines are blank.
//
// A box needs at least 2x2 cells for its border. Smaller areas render as
// blank space.
func RenderBox(content string, width, height int, style BoxStyle) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	var contentLines []string
	if content != "" {
		contentLines = strings.Split(content, "\n")
	}

	if style.Border == BorderNone {
		return frame(contentLines, width, height)
	}
	if width < 2 || height < 2 {
		return frame(nil, width, height)
	}

	chars := borderSets[style.Border]
	edge := style.BorderStyle.Render
	fill := width - 2
	vertical := edge(chars.Vertical)

	lines := make([]string, 0, height)

	top := edge(chars.TopLeft)
	if style.Title != "" {
		top += renderTitleBar(style, fill, chars.Horizontal)
	} else {
		top += edge(strings.Repeat(chars.Horizontal, fill))
	}
	top += edge(chars.TopRight)
	lines = append(lines, top)

	for i := 0; i < height-2; i++ {
		inner := strings.Repeat(" ", fill)
		if i < len(contentLines) {
			inner = fitLine(contentLines[i], fill)
		}
		lines = append(lines, vertical+inner+vertical)
	}

	lines = append(lines, edge(chars.BottomLeft+strings.Repeat(chars.Horizontal, fill)+chars.BottomRight))
	return strings.Join(lines, "\n")
}

// renderTitleBar draws the top border's horizontal run with the title
// embedded in it. The title touches the corner on its aligned side, the
// way a ratatui block title does. A title that does not fit is cut.
func renderTitleBar(style BoxStyle, barWidth int, hChar string) string {
	edge := style.BorderStyle.Render
	if barWidth <= 0 {
		return ""
	}

	title := style.Title
	if VisibleLen(title) > barWidth {
		title = Truncate(title, barWidth)
	}
	remaining := barWidth - VisibleLen(title)

	var left int
	switch style.TitleAlign {
	case AlignCenter:
		left = remaining / 2
	case AlignRight:
		left = remaining
	}
	right := remaining - left

	var buf strings.Builder
	if left > 0 {
		buf.WriteString(edge(strings.Repeat(hChar, left)))
	}
	buf.WriteString(style.TitleStyle.Render(title))
	if right > 0 {
		buf.WriteString(edge(strings.Repeat(hChar, right)))
	}
	return buf.String()
}

// Block is an empty bordered box with an optional title. Its children are
// painted over its interior afterwards.
type Block struct {
	Title      string
	TitleAlign Align
	Border     BorderStyle
	Style      Style
	TitleStyle Style
}

// Render draws the border.
func (b Block) Render(width, height int) string {
	return RenderBox("", width, height, BoxStyle{
		Border:      b.Border,
		Title:       b.Title,
		TitleAlign:  b.TitleAlign,
		BorderStyle: b.Style,
		TitleStyle:  b.TitleStyle,
	})
}
