// Package components provides the paint primitives of the character
// sheet: bordered blocks, styled paragraphs, fixed-column tables and tab
// bars. Every widget renders to a block of text that is exactly as wide
// and as tall as it is asked to be, so the canvas can splice it into a
// frame without measuring it again.
package components

// Align controls horizontal text alignment within a box or cell.
type Align int

const (
	// AlignLeft aligns text to the left edge (default).
	AlignLeft Align = iota
	// AlignCenter centers text horizontally.
	AlignCenter
	// AlignRight aligns text to the right edge.
	AlignRight
)

// String returns the alignment name.
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}
