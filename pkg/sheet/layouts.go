package sheet

import "gitlab.com/tinyland/lab/charsheet/pkg/layout"

// The screen tree. Each entry is split once per frame against the region
// its parent produced.
var (
	rootLayout = layout.Percentages(layout.Vertical, 1, 15, 10, 70, 5)

	// The header columns ask for 110%; the rests column absorbs the cut.
	headerLayout = layout.Percentages(layout.Horizontal, 1, 10, 30, 30, 40)
	restsLayout  = layout.Percentages(layout.Horizontal, 1, 50, 50)
	buttonLayout = layout.NewLayoutBuilder().
		Constraints(layout.Percentage{Value: 100}).
		Margin(1).
		Build()

	statsLayout = layout.Percentages(layout.Horizontal, 1, 70, 30)

	mainLayout      = layout.Percentages(layout.Horizontal, 1, 25, 25, 50)
	leftLayout      = layout.Percentages(layout.Vertical, 1, 35, 65)
	savingLayout    = layout.Percentages(layout.Vertical, 2, 80, 20)
	profsLayout     = layout.Percentages(layout.Vertical, 2, 100)
	centerLayout    = layout.Percentages(layout.Vertical, 1, 80, 20)
	skillsLayout    = layout.Percentages(layout.Vertical, 1, 100)
	sensesLayout    = layout.Percentages(layout.Vertical, 1, 80, 20)
	panelLayout     = layout.Percentages(layout.Vertical, 1, 10, 90)
	spellsTabLayout = layout.Percentages(layout.Vertical, 2, 10, 90)
	spellListLayout = layout.Percentages(layout.Vertical, 2, 100)

	footerLayout = layout.Percentages(layout.Vertical, 1, 100)
)

// buttonHeight is the height of a rest button's box.
const buttonHeight = 3
