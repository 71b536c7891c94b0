// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

import "strings"

// parseText implements spec.md §4.7: scan whatever the grid has left
// after boxes and lines are cleared, greedily grouping each run of
// non-blank cells (tolerating a single interior blank, so multi-word
// labels survive) into a Text anchored at the run's first cell.
func parseText(g *grid, s Scale, boxes []*Path) []*Text {
	var texts []*Text

	for row := 0; row < g.rowCount(); row++ {
		for col := 0; col < g.colCount(); {
			if !g.at(row, col).isTextStart() {
				col++
				continue
			}

			start := col
			var b strings.Builder
			blanks := 0
			for col < g.colCount() {
				c := g.at(row, col)
				if c.isSpace() {
					blanks++
					if blanks > 1 {
						break
					}
					b.WriteByte(' ')
					col++
					continue
				}
				blanks = 0
				b.WriteRune(rune(c))
				col++
			}

			str := strings.TrimRight(b.String(), " ")
			if str == "" {
				continue
			}
			t := NewText(s, row, start, str)
			applyTextContrast(t, boxes)
			texts = append(texts, t)
		}
	}

	return texts
}

// applyTextContrast implements spec.md §4.7's fill-contrast rule: a label
// whose anchor falls inside a filled box gets an accessible text color
// computed against that box's fill, instead of the default.
func applyTextContrast(t *Text, boxes []*Path) {
	for _, b := range boxes {
		if !hasPoint(b, t.Anchor.X, t.Anchor.Y) {
			continue
		}
		fill, ok := b.Options["fill"]
		if !ok {
			continue
		}
		if c, err := textColor(fill); err == nil {
			t.Options["fill"] = c
		}
	}
}
