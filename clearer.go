// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

// clearGrid implements spec.md §4.6: erase every accepted box and line
// from the grid so the TextParser only sees what's left over. Cells
// between consecutive vertices and terminal markers are blanked as each
// path is cleared; the remaining vertex (corner) cells, which two shapes
// can share, are collected into one list and blanked after every box and
// line has been cleared. It runs only after both parsers have finished.
func clearGrid(g *grid, boxes, lines []*Path) {
	var corners []wallKey

	for _, p := range boxes {
		clearPath(g, p, &corners)
	}
	for _, p := range lines {
		clearPath(g, p, &corners)
	}

	for _, k := range corners {
		g.blank(k.row, k.col)
	}
}

func clearPath(g *grid, p *Path, corners *[]wallKey) {
	n := len(p.Points)
	if n == 0 {
		return
	}

	limit := n - 1
	if p.IsClosed {
		limit = n
	}
	for i := 0; i < limit; i++ {
		clearRun(g, p.Points[i], p.Points[(i+1)%n])
	}

	for _, pt := range p.Points {
		if pt.Flags.has(FlagSMarker) || pt.Flags.has(FlagIMarker) {
			g.blank(pt.GridY, pt.GridX)
			continue
		}
		*corners = append(*corners, wallKey{pt.GridY, pt.GridX})
	}
}

func clearRun(g *grid, p1, p2 Point) {
	switch {
	case p1.GridY == p2.GridY:
		lo, hi := p1.GridX, p2.GridX
		if lo > hi {
			lo, hi = hi, lo
		}
		for x := lo + 1; x < hi; x++ {
			g.blank(p1.GridY, x)
		}
	case p1.GridX == p2.GridX:
		lo, hi := p1.GridY, p2.GridY
		if lo > hi {
			lo, hi = hi, lo
		}
		for y := lo + 1; y < hi; y++ {
			g.blank(y, p1.GridX)
		}
	}
}
