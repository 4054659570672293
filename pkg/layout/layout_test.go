package layout

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// area is a test helper that creates a Rect at origin with the given size.
func area(w, h int) Rect {
	return Rect{X: 0, Y: 0, Width: w, Height: h}
}

// widths extracts the width of every rect.
func widths(rects []Rect) []int {
	out := make([]int, len(rects))
	for i, r := range rects {
		out[i] = r.Width
	}
	return out
}

// heights extracts the height of every rect.
func heights(rects []Rect) []int {
	out := make([]int, len(rects))
	for i, r := range rects {
		out[i] = r.Height
	}
	return out
}

// --- Worked example ---

func TestSplitCharacterSheetRoot(t *testing.T) {
	rects := Split(area(100, 50), Vertical, 1,
		Percentage{15}, Percentage{10}, Percentage{70}, Percentage{5})

	assert.Equal(t, []Rect{
		{X: 1, Y: 1, Width: 98, Height: 7},
		{X: 1, Y: 8, Width: 98, Height: 4},
		{X: 1, Y: 12, Width: 98, Height: 33},
		{X: 1, Y: 45, Width: 98, Height: 2},
	}, rects)
}

// --- Percentage constraints ---

func TestPercentage(t *testing.T) {
	tests := []struct {
		name        string
		constraints []Constraint
		length      int
		want        []int
	}{
		{"zero alone", []Constraint{Percentage{0}}, 100, []int{0}},
		{"zero beside growable", []Constraint{Percentage{0}, Percentage{50}}, 100, []int{0, 100}},
		{"hundred fills", []Constraint{Percentage{100}}, 100, []int{100}},
		{"hundred odd length", []Constraint{Percentage{100}}, 37, []int{37}},
		{"exact split", []Constraint{Percentage{30}, Percentage{70}}, 100, []int{30, 70}},
		{"above hundred clamped", []Constraint{Percentage{150}}, 100, []int{100}},
		{"negative clamped", []Constraint{Percentage{-10}}, 100, []int{0}},
		{"rounding loss is trailing gap", []Constraint{Percentage{50}, Percentage{50}}, 101, []int{50, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rects := Split(area(tt.length, 10), Horizontal, 0, tt.constraints...)
			assert.Equal(t, tt.want, widths(rects))
		})
	}
}

func TestOverSubscriptionShrinksLaterFirst(t *testing.T) {
	rects := Split(area(100, 20), Horizontal, 0, Percentage{60}, Percentage{60})

	assert.Equal(t, []Rect{
		{X: 0, Y: 0, Width: 60, Height: 20},
		{X: 60, Y: 0, Width: 40, Height: 20},
	}, rects)
}

func TestOverSubscriptionCutsPastZero(t *testing.T) {
	// 50 + 40 + 30 against 60: the last loses 30, the middle loses 30.
	rects := Split(area(60, 1), Horizontal, 0, Fixed{50}, Fixed{40}, Fixed{30})
	assert.Equal(t, []int{50, 10, 0}, widths(rects))
	assert.Equal(t, 60, rects[2].X, "zero-length tail still sits at the end")
}

func TestUnderSubscriptionGrowsFirstFirst(t *testing.T) {
	rects := Split(area(100, 20), Horizontal, 0, Percentage{10}, Percentage{10})
	assert.Equal(t, []int{50, 50}, widths(rects))

	rects = Split(area(100, 20), Horizontal, 0, Percentage{10}, Percentage{10}, Percentage{10})
	assert.Equal(t, []int{34, 33, 33}, widths(rects))
}

// --- Fixed constraints ---

func TestFixedNeverGrows(t *testing.T) {
	rects := Split(area(100, 5), Horizontal, 0, Fixed{10}, Fixed{20})
	assert.Equal(t, []Rect{
		{X: 0, Y: 0, Width: 10, Height: 5},
		{X: 10, Y: 0, Width: 20, Height: 5},
	}, rects)
}

func TestFixedClampedToRemaining(t *testing.T) {
	rects := Split(area(100, 5), Horizontal, 0, Fixed{80}, Fixed{80})
	assert.Equal(t, []int{80, 20}, widths(rects))
}

func TestFixedNegativeIsZero(t *testing.T) {
	rects := Split(area(10, 5), Horizontal, 0, Fixed{-3}, Fixed{4})
	assert.Equal(t, []int{0, 4}, widths(rects))
}

// --- Min / Max constraints ---

func TestMinAbsorbsSpare(t *testing.T) {
	rects := Split(area(100, 5), Horizontal, 0, Fixed{10}, Min{20})
	assert.Equal(t, []int{10, 90}, widths(rects))
}

func TestMinRespectedWhenTight(t *testing.T) {
	rects := Split(area(50, 10), Horizontal, 0, Min{20}, Min{20})
	assert.GreaterOrEqual(t, rects[0].Width, 20)
	assert.GreaterOrEqual(t, rects[1].Width, 20)
	assert.Equal(t, 50, rects[0].Width+rects[1].Width)
}

func TestMaxStopsAtCap(t *testing.T) {
	rects := Split(area(100, 5), Horizontal, 0, Max{10})
	assert.Equal(t, []int{10}, widths(rects), "remaining 90 cells stay as a trailing gap")
}

func TestMaxSharesThenYields(t *testing.T) {
	rects := Split(area(50, 5), Horizontal, 0, Max{10}, Min{5})
	assert.Equal(t, []int{10, 40}, widths(rects))

	rects = Split(area(100, 5), Horizontal, 0, Percentage{50}, Max{10})
	assert.Equal(t, []int{90, 10}, widths(rects))
}

func TestMaxZeroStaysEmpty(t *testing.T) {
	rects := Split(area(30, 5), Horizontal, 0, Max{0}, Min{0})
	assert.Equal(t, []int{0, 30}, widths(rects))
}

// --- Margin ---

func TestMarginInsetsAllSides(t *testing.T) {
	rects := Split(area(20, 10), Horizontal, 3, Percentage{100})
	assert.Equal(t, []Rect{{X: 3, Y: 3, Width: 14, Height: 4}}, rects)
}

func TestMarginOffsetOrigin(t *testing.T) {
	parent := Rect{X: 7, Y: 4, Width: 30, Height: 12}
	rects := Split(parent, Vertical, 2, Percentage{100})
	assert.Equal(t, []Rect{{X: 9, Y: 6, Width: 26, Height: 8}}, rects)
}

func TestMarginLargerThanHalf(t *testing.T) {
	rects := Split(area(5, 5), Horizontal, 4, Percentage{50}, Fixed{3})
	require.Len(t, rects, 2)
	for _, r := range rects {
		assert.Equal(t, 0, r.Width)
		assert.Equal(t, 0, r.Height)
		assert.LessOrEqual(t, r.X, 5, "origin stays inside the parent")
		assert.LessOrEqual(t, r.Y, 5)
	}
}

func TestNegativeMarginIsZero(t *testing.T) {
	got := Split(area(40, 10), Horizontal, -2, Percentage{50}, Percentage{50})
	want := Split(area(40, 10), Horizontal, 0, Percentage{50}, Percentage{50})
	assert.Equal(t, want, got)
}

// --- Degenerate input ---

func TestEmptyConstraints(t *testing.T) {
	assert.Empty(t, Split(area(100, 50), Vertical, 1))
}

func TestZeroSizeParent(t *testing.T) {
	parent := Rect{X: 5, Y: 5, Width: 0, Height: 0}
	rects := Split(parent, Horizontal, 0, Percentage{50}, Fixed{10}, Min{3}, Max{4})

	require.Len(t, rects, 4)
	for i, r := range rects {
		assert.Equal(t, Rect{X: 5, Y: 5}, r, "rect %d", i)
	}
}

func TestZeroSizeRecursionTerminates(t *testing.T) {
	r := Rect{X: 2, Y: 2}
	for depth := 0; depth < 8; depth++ {
		rects := Split(r, Direction(depth%2), 1, Percentage{30}, Percentage{70})
		require.Len(t, rects, 2)
		assert.True(t, rects[1].Empty())
		r = rects[1]
	}
}

func TestVerticalCrossAxisIsFullWidth(t *testing.T) {
	rects := Split(area(33, 21), Vertical, 1, Percentage{35}, Percentage{65})
	for _, r := range rects {
		assert.Equal(t, 1, r.X)
		assert.Equal(t, 31, r.Width)
	}
	assert.Equal(t, []int{6, 12}, heights(rects))
}

// --- Invariants over random input ---

func TestSplitInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	randomConstraint := func() Constraint {
		v := rng.Intn(130) - 10
		switch rng.Intn(4) {
		case 0:
			return Percentage{v}
		case 1:
			return Fixed{v}
		case 2:
			return Min{v}
		default:
			return Max{v}
		}
	}

	for iter := 0; iter < 2000; iter++ {
		parent := Rect{
			X:      rng.Intn(10),
			Y:      rng.Intn(10),
			Width:  rng.Intn(150),
			Height: rng.Intn(80),
		}
		dir := Direction(rng.Intn(2))
		margin := rng.Intn(6)
		cs := make([]Constraint, rng.Intn(7))
		for i := range cs {
			cs[i] = randomConstraint()
		}

		rects := Split(parent, dir, margin, cs...)
		require.Len(t, rects, len(cs))

		inner := parent.Inner(margin)
		length := axisSize(inner, dir)
		pos, sum := 0, 0
		for i, r := range rects {
			require.GreaterOrEqual(t, r.Width, 0)
			require.GreaterOrEqual(t, r.Height, 0)
			if dir == Horizontal {
				require.Equal(t, inner.X+pos, r.X, "iter %d rect %d contiguous", iter, i)
				require.Equal(t, inner.Y, r.Y)
				require.Equal(t, inner.Height, r.Height, "cross axis")
				pos += r.Width
				sum += r.Width
			} else {
				require.Equal(t, inner.Y+pos, r.Y, "iter %d rect %d contiguous", iter, i)
				require.Equal(t, inner.X, r.X)
				require.Equal(t, inner.Width, r.Width, "cross axis")
				pos += r.Height
				sum += r.Height
			}
		}
		require.LessOrEqual(t, sum, length, "iter %d: %v over %d", iter, cs, length)
	}
}

// --- Layout / builder front ends ---

func TestLayoutMatchesSplit(t *testing.T) {
	parent := area(120, 40)
	want := Split(parent, Horizontal, 1, Percentage{25}, Percentage{25}, Percentage{50})

	assert.Equal(t, want, NewLayout(Horizontal, Percentage{25}, Percentage{25}, Percentage{50}).WithMargin(1).Split(parent))
	assert.Equal(t, want, Percentages(Horizontal, 1, 25, 25, 50).Split(parent))
	assert.Equal(t, want, NewLayoutBuilder().
		Direction(Horizontal).
		Margin(1).
		Constraints(Percentage{25}, Percentage{25}, Percentage{50}).
		Split(parent))
}

func TestPercentageFloorLossStaysTrailing(t *testing.T) {
	tests := []struct {
		name     string
		percents []int
		want     []int
		gap      int
	}{
		{"99 percent asked", []int{33, 33, 33}, []int{4, 3, 3}, 0},
		{"100 percent asked", []int{33, 33, 34}, []int{3, 3, 3}, 1},
		{"root sections", []int{15, 10, 70, 5}, []int{1, 1, 7, 0}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rects := Percentages(Vertical, 0, tt.percents...).Split(area(4, 10))
			got := make([]int, len(rects))
			sum := 0
			for i, r := range rects {
				got[i] = r.Height
				sum += r.Height
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.gap, 10-sum)
		})
	}
}

func TestBuilderDefaultsToVertical(t *testing.T) {
	b := NewLayoutBuilder().Constraints(Percentage{100}).Margin(1).Build()
	assert.Equal(t, Vertical, b.Direction())
	assert.Equal(t, 1, b.Margin())
	assert.Equal(t, Percentages(Vertical, 1, 100).Split(area(14, 3)), b.Split(area(14, 3)))
}

func TestSplitVerticalFixedThenMin(t *testing.T) {
	rects := Split(area(10, 30), Vertical, 0, Fixed{3}, Min{0})
	assert.Equal(t, []Rect{
		{X: 0, Y: 0, Width: 10, Height: 3},
		{X: 0, Y: 3, Width: 10, Height: 27},
	}, rects)
}

// --- Rect helpers ---

func TestRectInner(t *testing.T) {
	assert.Equal(t, Rect{X: 1, Y: 1, Width: 8, Height: 3}, area(10, 5).Inner(1))
	assert.Equal(t, Rect{X: 2, Y: 2, Width: 0, Height: 0}, area(2, 2).Inner(5))
}

func TestRectWithHeight(t *testing.T) {
	r := Rect{X: 4, Y: 2, Width: 10, Height: 8}
	assert.Equal(t, Rect{X: 4, Y: 2, Width: 10, Height: 3}, r.WithHeight(3))
	assert.Equal(t, r, r.WithHeight(20))
	assert.Equal(t, 0, r.WithHeight(-1).Height)
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 10, Height: 10}
	assert.Equal(t, Rect{X: 5, Y: 5, Width: 5, Height: 5}, a.Intersect(b))
	assert.Equal(t, Rect{}, a.Intersect(Rect{X: 20, Y: 20, Width: 1, Height: 1}))
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 4, Height: 2}
	assert.True(t, r.Contains(2, 3))
	assert.True(t, r.Contains(5, 4))
	assert.False(t, r.Contains(6, 4))
	assert.False(t, r.Contains(2, 5))
}

func TestNewRectClampsNegative(t *testing.T) {
	r := NewRect(-1, -1, -5, 3)
	assert.Equal(t, Rect{X: -1, Y: -1, Width: 0, Height: 3}, r)
	assert.True(t, r.Empty())
	assert.Equal(t, 0, r.Area())
}
