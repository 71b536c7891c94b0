// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func square(s Scale) *Path {
	p := NewPath()
	p.Points = []Point{
		NewPoint(s, 0, 0, FlagPoint),
		NewPoint(s, 10, 0, FlagPoint),
		NewPoint(s, 10, 10, FlagPoint),
		NewPoint(s, 0, 10, FlagPoint),
	}
	p.IsClosed = true
	return p
}

func TestHasPoint(t *testing.T) {
	s := NewScale(1, 1)
	box := square(s)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 5, 5, true},
		{"outside right", 15, 5, false},
		{"outside above", 5, -5, false},
		{"on left edge", 0, 5, false},
		{"on right edge", 10, 5, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, hasPoint(box, tc.x, tc.y))
		})
	}
}

func TestHasPoint_OpenPathAlwaysFalse(t *testing.T) {
	s := NewScale(1, 1)
	box := square(s)
	box.IsClosed = false
	assert.False(t, hasPoint(box, 5, 5))
}

func TestHasPoint_StableUnderRotation(t *testing.T) {
	s := NewScale(1, 1)
	box := square(s)
	rotated := NewPath()
	rotated.Points = append([]Point{}, box.Points[1:]...)
	rotated.Points = append(rotated.Points, box.Points[0])
	rotated.IsClosed = true

	assert.Equal(t, hasPoint(box, 5, 5), hasPoint(rotated, 5, 5))
	assert.Equal(t, hasPoint(box, 15, 5), hasPoint(rotated, 15, 5))
}
