// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

import "fmt"

// PointFlag is a bitset of hints a Point carries for the Renderer. A Point
// carries at most one of Point/Control, and at most one of SMarker/IMarker.
type PointFlag uint8

const (
	// FlagPoint marks an ordinary vertex, rendered as a straight line-to.
	FlagPoint PointFlag = 1 << iota
	// FlagControl marks a vertex that should be replaced with a quadratic
	// Bézier curve at render time (a rounded or slanted corner).
	FlagControl
	// FlagSMarker marks a terminal arrow in standard orientation, rendered
	// with the Pointer marker.
	FlagSMarker
	// FlagIMarker marks a terminal arrow in inverted orientation, rendered
	// with the iPointer marker.
	FlagIMarker
)

func (f PointFlag) has(bit PointFlag) bool { return f&bit != 0 }

// Point is a grid coordinate paired with its scaled canvas coordinate and
// render flags. Points are immutable once constructed.
type Point struct {
	GridX, GridY int
	X, Y         float64
	Flags        PointFlag
}

// NewPoint builds a Point at the given grid coordinate, scaled by s.
func NewPoint(s Scale, gridX, gridY int, flags PointFlag) Point {
	x, y := s.apply(gridX, gridY)
	return Point{GridX: gridX, GridY: gridY, X: x, Y: y, Flags: flags}
}

// String implements fmt.Stringer on Point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.GridX, p.GridY)
}

// sameCoord reports whether two points occupy the same grid cell.
func (p Point) sameCoord(o Point) bool {
	return p.GridX == o.GridX && p.GridY == o.GridY
}
