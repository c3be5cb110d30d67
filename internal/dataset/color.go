package dataset

// Color is the semantic role of an element, node or edge in the current step.
// Renderers map it to a concrete color through a theme.
type Color uint8

const (
	Default Color = iota
	CompareLeft
	CompareRight
	Compared
	Swapped
	Current
	Sorted
	Active
)

var colorNames = [...]string{
	Default:      "default",
	CompareLeft:  "compare-left",
	CompareRight: "compare-right",
	Compared:     "compared",
	Swapped:      "swapped",
	Current:      "current",
	Sorted:       "sorted",
	Active:       "active",
}

// NumColors is the number of defined roles.
const NumColors = len(colorNames)

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
