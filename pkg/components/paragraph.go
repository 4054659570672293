package components

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Span is a run of text drawn with one style.
type Span struct {
	Text  string
	Style Style
}

// Raw returns an unstyled span.
func Raw(text string) Span {
	return Span{Text: text}
}

// Styled returns a span drawn with style.
func Styled(text string, style Style) Span {
	return Span{Text: text, Style: style}
}

// Paragraph is a block of styled text. A "\n" inside any span starts a new
// line. With Wrap set, lines longer than the width break at spaces and
// words wider than the width are split; otherwise long lines are cut.
type Paragraph struct {
	Spans []Span
	Align Align
	Wrap  bool
	// Style is applied under every span's own style.
	Style Style
}

// NewParagraph builds a paragraph from spans.
func NewParagraph(spans ...Span) Paragraph {
	return Paragraph{Spans: spans}
}

// Lines returns the paragraph's visual lines for the given width, before
// alignment and height clipping.
func (p Paragraph) Lines(width int) [][]Span {
	logical := splitLines(p.Spans)
	if !p.Wrap || width <= 0 {
		return logical
	}
	var out [][]Span
	for _, line := range logical {
		out = append(out, wrapLine(line, width)...)
	}
	return out
}

// Render draws the paragraph into width x height cells.
func (p Paragraph) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	visual := p.Lines(width)
	if len(visual) > height {
		visual = visual[:height]
	}

	lines := make([]string, len(visual))
	for i, spans := range visual {
		lines[i] = p.renderLine(spans, width)
	}
	return frame(lines, width, height)
}

func (p Paragraph) renderLine(spans []Span, width int) string {
	spans = clipSpans(spans, width)
	used := spansWidth(spans)

	var lead int
	switch p.Align {
	case AlignCenter:
		lead = (width - used) / 2
	case AlignRight:
		lead = width - used
	}

	var buf strings.Builder
	buf.WriteString(strings.Repeat(" ", lead))
	for _, s := range spans {
		buf.WriteString(p.Style.Merge(s.Style).Render(s.Text))
	}
	return buf.String()
}

// splitLines breaks spans into logical lines at every "\n".
func splitLines(spans []Span) [][]Span {
	lines := [][]Span{nil}
	for _, s := range spans {
		parts := strings.Split(s.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part != "" {
				last := len(lines) - 1
				lines[last] = append(lines[last], Span{Text: part, Style: s.Style})
			}
		}
	}
	return lines
}

// token is a word or a run of spaces carrying its span's style.
type token struct {
	text  string
	style Style
	space bool
}

func tokenize(spans []Span) []token {
	var toks []token
	for _, s := range spans {
		var cur strings.Builder
		curSpace := false
		flush := func() {
			if cur.Len() > 0 {
				toks = append(toks, token{text: cur.String(), style: s.Style, space: curSpace})
				cur.Reset()
			}
		}
		for _, r := range s.Text {
			isSpace := r == ' ' || r == '\t'
			if cur.Len() > 0 && isSpace != curSpace {
				flush()
			}
			curSpace = isSpace
			if r == '\t' {
				r = ' '
			}
			cur.WriteRune(r)
		}
		flush()
	}
	return toks
}

// wrapLine greedily fills lines of at most width cells. Spaces at a break
// are dropped.
func wrapLine(spans []Span, width int) [][]Span {
	var (
		out  [][]Span
		line []Span
		used int
	)
	emit := func() {
		out = append(out, trimTrailingSpace(line))
		line, used = nil, 0
	}

	for _, tok := range tokenize(spans) {
		w := runewidth.StringWidth(tok.text)
		if tok.space {
			if used == 0 {
				continue
			}
			if used+w > width {
				emit()
				continue
			}
			line = append(line, Span{Text: tok.text, Style: tok.style})
			used += w
			continue
		}

		if used > 0 && used+w > width {
			emit()
		}
		for w > width {
			head, rest := splitAtWidth(tok.text, width)
			if head == "" {
				_, size := utf8.DecodeRuneInString(tok.text)
				head, rest = tok.text[:size], tok.text[size:]
			}
			line = append(line, Span{Text: head, Style: tok.style})
			emit()
			tok.text = rest
			w = runewidth.StringWidth(rest)
		}
		if tok.text != "" {
			line = append(line, Span{Text: tok.text, Style: tok.style})
			used += w
		}
	}
	if len(line) > 0 || len(out) == 0 {
		emit()
	}
	return out
}

// splitAtWidth splits s so that head is at most width cells wide.
func splitAtWidth(s string, width int) (head, rest string) {
	used := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if used+rw > width {
			return s[:i], s[i:]
		}
		used += rw
	}
	return s, ""
}

func trimTrailingSpace(spans []Span) []Span {
	for len(spans) > 0 {
		last := spans[len(spans)-1]
		trimmed := strings.TrimRight(last.Text, " ")
		if trimmed != "" {
			spans[len(spans)-1].Text = trimmed
			return spans
		}
		spans = spans[:len(spans)-1]
	}
	return spans
}

// clipSpans cuts spans so their total width is at most width.
func clipSpans(spans []Span, width int) []Span {
	var (
		out  []Span
		used int
	)
	for _, s := range spans {
		w := runewidth.StringWidth(s.Text)
		if used+w <= width {
			out = append(out, s)
			used += w
			continue
		}
		head, _ := splitAtWidth(s.Text, width-used)
		if head != "" {
			out = append(out, Span{Text: head, Style: s.Style})
		}
		break
	}
	return out
}

func spansWidth(spans []Span) int {
	n := 0
	for _, s := range spans {
		n += runewidth.StringWidth(s.Text)
	}
	return n
}
