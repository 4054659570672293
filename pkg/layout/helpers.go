package layout

// Percentages builds a Layout whose constraints are all Percentage values.
// Most screen sections are described this way.
func Percentages(dir Direction, margin int, percents ...int) *Layout {
	cs := make([]Constraint, len(percents))
	for i, p := range percents {
		cs[i] = Percentage{p}
	}
	return NewLayout(dir, cs...).WithMargin(margin)
}

// LayoutBuilder provides a fluent API for constructing layouts.
type LayoutBuilder struct {
	layout *Layout
}

// NewLayoutBuilder creates a new builder with sensible defaults.
func NewLayoutBuilder() *LayoutBuilder {
	return &LayoutBuilder{
		layout: &Layout{
			direction: Vertical,
		},
	}
}

// Direction sets the split direction.
func (b *LayoutBuilder) Direction(d Direction) *LayoutBuilder {
	b.layout.direction = d
	return b
}

// Constraints sets the constraint list.
func (b *LayoutBuilder) Constraints(cs ...Constraint) *LayoutBuilder {
	b.layout.constraints = cs
	return b
}

// Margin sets the outer margin.
func (b *LayoutBuilder) Margin(m int) *LayoutBuilder {
	b.layout.WithMargin(m)
	return b
}

// Split runs the solver on the given area.
func (b *LayoutBuilder) Split(area Rect) []Rect {
	return b.layout.Split(area)
}

// Build returns the underlying Layout for reuse.
func (b *LayoutBuilder) Build() *Layout {
	return b.layout
}
