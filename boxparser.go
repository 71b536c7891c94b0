// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

// parseBoxes implements spec.md §4.2: scan the grid for corner cells in
// reading order, run the WallFollower from each, and keep whichever
// distinct closed polygons result. It also resolves each accepted box's
// "[N]" option reference against the command table.
func parseBoxes(g *grid, s Scale, commands map[string][]byte) []*Path {
	var boxes []*Path

	for row := 0; row < g.rowCount(); row++ {
		for col := 0; col < g.colCount(); col++ {
			c := g.at(row, col)
			if !c.isCorner() {
				continue
			}

			path := NewPath()
			flag := FlagPoint
			if c.isSlantedCorner() {
				flag = FlagControl
			}
			path.AddPoint(NewPoint(s, col, row, flag))

			wallFollow(g, s, path, row, col+1, DirRight, wallBucket{}, 0)
			if !path.IsClosed || len(path.Points) < 3 {
				continue
			}
			if duplicateBox(boxes, path) {
				continue
			}

			resolveBoxOptions(g, path, commands)
			boxes = append(boxes, path)
		}
	}

	return boxes
}

// duplicateBox reports whether path has the same vertex set (in order, up
// to its natural starting point) as one already in boxes. The WallFollower
// can rediscover the same polygon from more than one of its corners.
func duplicateBox(boxes []*Path, path *Path) bool {
	for _, existing := range boxes {
		if samePolygon(existing, path) {
			return true
		}
	}
	return false
}

func samePolygon(a, b *Path) bool {
	if len(a.Points) != len(b.Points) {
		return false
	}
	start := -1
	for i, p := range a.Points {
		if p.sameCoord(b.Points[0]) {
			start = i
			break
		}
	}
	if start == -1 {
		return false
	}
	n := len(a.Points)
	for i := 0; i < n; i++ {
		if !a.Points[(start+i)%n].sameCoord(b.Points[i]) {
			return false
		}
	}
	return true
}

// resolveBoxOptions implements spec.md §6: a box carrying a "[N]" reference
// one row below and one column right of its top-left corner has that
// reference's JSON object
// from the command table merged into its options, and the reference text
// is blanked from the grid so TextParser never sees it.
func resolveBoxOptions(g *grid, path *Path, commands map[string][]byte) {
	top := path.Points[0]
	row, col := top.GridY+1, top.GridX+1

	var runeBuf []rune
	for i := 0; i < 16; i++ {
		c := g.at(row, col+i)
		if c.isSpace() {
			break
		}
		runeBuf = append(runeBuf, rune(c))
	}
	match := inGridRef.FindStringSubmatch(string(runeBuf))
	if match == nil {
		return
	}

	blob, ok := commands[match[1]]
	if !ok {
		return
	}
	if err := path.MergeOptions(blob); err != nil {
		return
	}
	for i := range match[0] {
		g.blank(row, col+i)
	}
}
