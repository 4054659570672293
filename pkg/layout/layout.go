// Package layout provides the constraint-based region solver used to place
// every widget of the character sheet. It splits a rectangular area into
// sub-regions along one axis according to declarative constraints, in the
// manner of ratatui's layout system.
//
// Constraint types:
//   - Percentage(p): p percent of the usable length, rounded down
//   - Fixed(n): exactly n cells, never grows
//   - Min(n): at least n cells, grows from spare space
//   - Max(n): at most n cells, grows from spare space up to n
//
// The solver runs in three passes:
//  1. Resolve every constraint to a base length against the usable length.
//  2. If the bases over-subscribe, cut from the last constraint backwards.
//  3. Otherwise hand unclaimed space out one cell at a time, in input
//     order, to the constraints that may grow.
//
// Anything left over is an implicit gap after the last region.
//
// Spare space is measured against what the constraints asked for, not
// against the sum of their floored bases: unclaimed = L - (fixed and min
// bases + floor(L*sum(p)/100)). The cells lost by flooring each
// percentage separately therefore stay in the trailing gap. With 100%
// asked on 10 cells, [33,33,34] resolves to 3,3,3 and leaves one cell
// free, while [33,33,33] asks for 99% and hands its one unclaimed cell to
// the first region: 4,3,3.
package layout

// Rect represents a rectangular area in terminal cells.
type Rect struct {
	X, Y, Width, Height int
}

// NewRect returns a Rect, clamping negative sizes to zero.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, Width: clampNonNeg(w), Height: clampNonNeg(h)}
}

// Area returns the number of cells in this rectangle.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Empty returns true if this rectangle has zero area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Right returns the X coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the Y coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Inner returns a new Rect shrunk by margin on all sides. Usable
// dimensions bottom out at zero and the origin never moves past the
// parent's far edge.
func (r Rect) Inner(margin int) Rect {
	margin = clampNonNeg(margin)
	return Rect{
		X:      r.X + minInt(margin, r.Width),
		Y:      r.Y + minInt(margin, r.Height),
		Width:  clampNonNeg(r.Width - 2*margin),
		Height: clampNonNeg(r.Height - 2*margin),
	}
}

// WithHeight returns a copy of r with its height replaced, clamped to r's
// own height.
func (r Rect) WithHeight(h int) Rect {
	r.Height = clampRange(h, 0, r.Height)
	return r
}

// Contains returns true if the point (px, py) lies within this rectangle.
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px < r.Right() && py >= r.Y && py < r.Bottom()
}

// Intersect returns the overlapping region of two rectangles.
// If there is no overlap, returns a zero-size Rect.
func (r Rect) Intersect(other Rect) Rect {
	x1 := maxInt(r.X, other.X)
	y1 := maxInt(r.Y, other.Y)
	x2 := minInt(r.Right(), other.Right())
	y2 := minInt(r.Bottom(), other.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Direction controls the axis along which a Layout splits space.
type Direction int

const (
	// Horizontal splits left-to-right (constraints control width).
	Horizontal Direction = iota
	// Vertical splits top-to-bottom (constraints control height).
	Vertical
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Constraint is the interface satisfied by all layout constraint types.
// The marker method prevents external implementations.
type Constraint interface {
	constraint() // sealed marker
}

// Percentage allocates Value percent of the usable length. Values above
// 100 are treated as 100, negative values as 0.
type Percentage struct{ Value int }

func (Percentage) constraint() {}

// Fixed allocates exactly Value cells. It is cut when the list does not
// fit, but never grows.
type Fixed struct{ Value int }

func (Fixed) constraint() {}

// Min allocates at least Value cells and takes a share of spare space.
type Min struct{ Value int }

func (Min) constraint() {}

// Max allocates at most Value cells. It starts empty and grows from spare
// space until it reaches Value.
type Max struct{ Value int }

func (Max) constraint() {}

// Layout splits a Rect into sub-regions according to constraints.
type Layout struct {
	direction   Direction
	constraints []Constraint
	margin      int
}

// NewLayout creates a Layout with the given direction and constraints.
func NewLayout(dir Direction, constraints ...Constraint) *Layout {
	return &Layout{
		direction:   dir,
		constraints: constraints,
	}
}

// WithMargin sets the outer margin (in cells) on all sides of the input area.
func (l *Layout) WithMargin(m int) *Layout {
	l.margin = clampNonNeg(m)
	return l
}

// Direction returns the split axis.
func (l *Layout) Direction() Direction { return l.direction }

// Margin returns the outer margin.
func (l *Layout) Margin() int { return l.margin }

// Split divides area into len(constraints) non-overlapping Rects.
func (l *Layout) Split(area Rect) []Rect {
	return Split(area, l.direction, l.margin, l.constraints...)
}

// Split divides parent along dir into one Rect per constraint, in order,
// after insetting parent by margin on every side.
//
// The returned regions are contiguous from the inset origin, never
// overlap, each spans the full usable cross-axis length, and their lengths
// along dir sum to at most the usable length. Split never fails: degenerate
// input yields zero-size regions.
func Split(parent Rect, dir Direction, margin int, constraints ...Constraint) []Rect {
	n := len(constraints)
	if n == 0 {
		return nil
	}

	inner := parent.Inner(margin)
	total := axisSize(inner, dir)

	lengths := resolve(constraints, total)

	rects := make([]Rect, n)
	pos := 0
	for i, length := range lengths {
		switch dir {
		case Vertical:
			rects[i] = Rect{X: inner.X, Y: inner.Y + pos, Width: inner.Width, Height: length}
		default:
			rects[i] = Rect{X: inner.X + pos, Y: inner.Y, Width: length, Height: inner.Height}
		}
		pos += length
	}
	return rects
}

// resolve turns constraints into lengths that sum to at most available.
func resolve(constraints []Constraint, available int) []int {
	n := len(constraints)
	lengths := make([]int, n)
	caps := make([]int, n)
	growable := make([]bool, n)

	// --- Pass 1: base lengths ---
	claimedFixed := 0
	pctSum := 0
	for i, c := range constraints {
		switch v := c.(type) {
		case Percentage:
			p := clampRange(v.Value, 0, 100)
			lengths[i] = available * p / 100
			pctSum += p
			growable[i] = p > 0
			caps[i] = -1
		case Fixed:
			lengths[i] = clampNonNeg(v.Value)
			claimedFixed += lengths[i]
		case Min:
			lengths[i] = clampNonNeg(v.Value)
			claimedFixed += lengths[i]
			growable[i] = true
			caps[i] = -1
		case Max:
			caps[i] = clampNonNeg(v.Value)
			growable[i] = caps[i] > 0
		}
	}

	used := 0
	for _, length := range lengths {
		used += length
	}

	// --- Pass 2: over-subscription, last constraints give way first ---
	if used > available {
		excess := used - available
		for i := n - 1; i >= 0 && excess > 0; i-- {
			cut := minInt(excess, lengths[i])
			lengths[i] -= cut
			excess -= cut
		}
		return lengths
	}

	// --- Pass 3: spare space, first constraints gain first ---
	// Space lost to flooring individual percentages is not redistributed;
	// only space no constraint asked for is.
	claimed := claimedFixed + available*pctSum/100
	spare := available - claimed
	for spare > 0 {
		gave := false
		for i := 0; i < n && spare > 0; i++ {
			if !growable[i] {
				continue
			}
			if caps[i] >= 0 && lengths[i] >= caps[i] {
				growable[i] = false
				continue
			}
			lengths[i]++
			spare--
			gave = true
		}
		if !gave {
			break
		}
	}

	return lengths
}

// axisSize returns the size of rect along the layout direction.
func axisSize(r Rect, dir Direction) int {
	if dir == Horizontal {
		return r.Width
	}
	return r.Height
}

func clampNonNeg(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func clampRange(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
