// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerticalStart_SingleDirectionOnly(t *testing.T) {
	g := newGrid([]byte("|\n|\n|\n"), 8)

	dir, ok := verticalStart(g, 0, 0)
	assert.True(t, ok)
	assert.Equal(t, DirDown, dir)

	// a middle cell has edgy neighbors on both sides, so it isn't a start.
	_, ok = verticalStart(g, 1, 0)
	assert.False(t, ok)
}

func TestHorizontalStart_SingleDirectionOnly(t *testing.T) {
	g := newGrid([]byte("---\n"), 8)

	dir, ok := horizontalStart(g, 0, 0)
	assert.True(t, ok)
	assert.Equal(t, DirRight, dir)

	_, ok = horizontalStart(g, 0, 1)
	assert.False(t, ok)
}

func TestCornerStart_RequiresExactlyOneContinuation(t *testing.T) {
	// a '.' with only a line going down from it starts a line upward... er,
	// downward, since its one live neighbor is south.
	g := newGrid([]byte(".\n|\n"), 8)

	dir, ok := cornerStart(g, 0, 0)
	assert.True(t, ok)
	assert.Equal(t, DirDown, dir)
}

func TestCornerStart_AmbiguousCornerRejected(t *testing.T) {
	// a '+' with edges on all four sides is a junction, not a start.
	g := newGrid([]byte(" |  \n-+--\n |  \n"), 8)
	_, ok := cornerStart(g, 1, 1)
	assert.False(t, ok)
}

func TestLineStart_MarkerWalksOppositeItsArrow(t *testing.T) {
	g := newGrid([]byte("-->\n"), 8)
	dir, ok := lineStart(g, 0, 2, g.at(0, 2))
	assert.True(t, ok)
	assert.Equal(t, DirLeft, dir)
}

func TestParseLines_SimpleHorizontalArrow(t *testing.T) {
	g := newGrid([]byte("A-->B\n"), 8)
	lines := parseLines(g, DefaultScale, nil)
	assert.Len(t, lines, 1)
	assert.True(t, lines[0].Points[len(lines[0].Points)-1].Flags.has(FlagSMarker))
}

func TestParseLines_SkipsCellsClaimedByBoxes(t *testing.T) {
	g := newGrid([]byte("+-+\n| |\n+-+\n"), 8)
	boxes := parseBoxes(g, DefaultScale, nil)
	assert.Len(t, boxes, 1)

	lines := parseLines(g, DefaultScale, boxes)
	assert.Empty(t, lines, "a fully-claimed box boundary should yield no separate lines")
}

func TestClaimedCells_CoversEveryEdgeCell(t *testing.T) {
	p := NewPath()
	p.Points = []Point{
		NewPoint(DefaultScale, 0, 0, FlagPoint),
		NewPoint(DefaultScale, 2, 0, FlagPoint),
		NewPoint(DefaultScale, 2, 2, FlagPoint),
		NewPoint(DefaultScale, 0, 2, FlagPoint),
	}
	p.IsClosed = true

	claimed := claimedCells([]*Path{p})
	assert.True(t, claimed[wallKey{0, 1}], "midpoint of the top edge should be claimed")
	assert.True(t, claimed[wallKey{1, 0}], "midpoint of the left edge should be claimed")
	assert.False(t, claimed[wallKey{1, 1}], "interior cell should not be claimed")
}
