package layout

import "testing"

// benchConstraints returns a mixed list of n constraints.
func benchConstraints(n int) []Constraint {
	cs := make([]Constraint, n)
	for i := range cs {
		switch i % 4 {
		case 0:
			cs[i] = Percentage{Value: 10}
		case 1:
			cs[i] = Min{Value: 5}
		case 2:
			cs[i] = Max{Value: 20}
		case 3:
			cs[i] = Fixed{Value: 6}
		}
	}
	return cs
}

// BenchmarkSplitRoot times the sheet's root split.
func BenchmarkSplitRoot(b *testing.B) {
	l := Percentages(Vertical, 1, 15, 10, 70, 5)
	area := Rect{Width: 200, Height: 60}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Split(area)
	}
}

// BenchmarkSplit20 times a split with many mixed constraints.
func BenchmarkSplit20(b *testing.B) {
	l := NewLayout(Horizontal, benchConstraints(20)...)
	area := Rect{Width: 400, Height: 60}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Split(area)
	}
}

// BenchmarkCacheHit times the cached path with a pre-warmed cache.
func BenchmarkCacheHit(b *testing.B) {
	l := Percentages(Horizontal, 1, 25, 25, 50)
	area := Rect{Width: 200, Height: 60}
	cache := NewLayoutCache()
	cache.SplitCached(l, area)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cache.SplitCached(l, area)
	}
}
