// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

// Canvas is the geometry a diagram was parsed into: a set of closed
// polygons (boxes), open polylines (lines), and free-form text runs, all
// already scaled to SVG user units (spec.md §3).
type Canvas struct {
	Scale  Scale
	Boxes  []*Path
	Lines  []*Path
	Texts  []*Text
	Width  float64
	Height float64
}

// Parse runs the full extraction pipeline over data: strip the trailing
// command table, build the grid, find boxes, find lines, erase both from
// the grid, then read whatever text remains (spec.md §2's component
// order: Grid, BoxParser, LineParser, Clearer, TextParser).
//
// tabWidth controls how embedded tab characters are expanded before the
// grid is built; it has no other effect on parsing.
func Parse(data []byte, s Scale, tabWidth int) *Canvas {
	body, commands := extractCommandTable(data)
	g := newGrid(body, tabWidth)

	boxes := parseBoxes(g, s, commands)
	lines := parseLines(g, s, boxes)
	clearGrid(g, boxes, lines)
	texts := parseText(g, s, boxes)

	// spec.md §6: the document viewport carries a 30-unit margin beyond the
	// raw grid extent so strokes and drop shadows at the outer edge aren't
	// clipped.
	w, h := s.apply(g.colCount(), g.rowCount())
	w += 30
	h += 30
	return &Canvas{
		Scale:  s,
		Boxes:  boxes,
		Lines:  lines,
		Texts:  texts,
		Width:  w,
		Height: h,
	}
}
