// Package schema has the display enums and activity model for all parts of gad.
package schema

// Custom string types for type safety.
type (
	// BorderStyle represents the table border character set.
	BorderStyle string

	// DisplayType represents how day cells are drawn.
	DisplayType string

	// Orientation represents the axis mapping of the activity grid.
	Orientation string
)

// All border styles supported.
const (
	ASCIIBorder  BorderStyle = "ascii" // default
	SingleBorder BorderStyle = "single"
	DoubleBorder BorderStyle = "double"
)

// All display types supported.
const (
	NumericDisplay DisplayType = "numeric"
	BlockDisplay   DisplayType = "block" // default
)

// All orientations supported.
const (
	VerticalOrientation   Orientation = "vertical" // default
	HorizontalOrientation Orientation = "horizontal"
)

// ValidBorderStyles lists all valid border styles.
var ValidBorderStyles = map[BorderStyle]struct{}{
	ASCIIBorder:  {},
	SingleBorder: {},
	DoubleBorder: {},
}

// ValidDisplayTypes lists all valid display types.
var ValidDisplayTypes = map[DisplayType]struct{}{
	NumericDisplay: {},
	BlockDisplay:   {},
}

// ValidOrientations lists all valid orientations.
var ValidOrientations = map[Orientation]struct{}{
	VerticalOrientation:   {},
	HorizontalOrientation: {},
}

// DaysPerWeek is the number of day columns in one week stride.
const DaysPerWeek = 7

// LegendSubject is the label used for the synthetic legend row.
const LegendSubject = "Legend"
