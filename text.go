// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

// Text is a single anchor Point plus a display string and options
// (spec.md §3). The anchor is offset by (-0.6, +0.3) grid units from the
// cell containing the first glyph of the run — an empirical baseline
// adjustment for monospaced text.
type Text struct {
	Anchor  Point
	String  string
	Options map[string]string
}

const (
	textAnchorDX = -0.6
	textAnchorDY = 0.3
)

// NewText builds a Text anchored at the given grid cell.
func NewText(s Scale, gridRow, gridCol int, str string) *Text {
	x, y := s.apply(gridCol, gridRow)
	x += textAnchorDX * s.X
	y += textAnchorDY * s.Y
	return &Text{
		Anchor:  Point{GridX: gridCol, GridY: gridRow, X: x, Y: y},
		String:  str,
		Options: map[string]string{},
	}
}
