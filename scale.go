// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

// Scale maps grid cells to SVG user units. It is created once per
// conversion and passed explicitly into the parser and into Point
// construction; nothing in this package keeps a process-wide singleton, so
// independent conversions with different scales never interfere with each
// other (spec.md §5).
type Scale struct {
	X float64
	Y float64
}

// DefaultScale matches the historical CLI defaults: 9 user units per grid
// column, 16 per grid row.
var DefaultScale = Scale{X: 9, Y: 16}

// NewScale returns a Scale for the given grid-cell-to-user-unit factors.
// Non-positive factors fall back to DefaultScale's corresponding axis.
func NewScale(x, y float64) Scale {
	s := DefaultScale
	if x > 0 {
		s.X = x
	}
	if y > 0 {
		s.Y = y
	}
	return s
}

// apply returns the scaled canvas coordinates for a grid coordinate.
func (s Scale) apply(gridX, gridY int) (x, y float64) {
	return float64(gridX) * s.X, float64(gridY) * s.Y
}
