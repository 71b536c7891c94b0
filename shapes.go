// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

import (
	"strconv"
	"strings"
)

// customShape names a path-template substitution selected via a box's
// "a2s:type" option (spec.md §4.9).
type customShape string

const (
	shapeStorage  customShape = "storage"
	shapeDocument customShape = "document"
)

// shapeTemplates holds each custom shape's path data authored against a
// fixed 100x100 viewport. transformPath rescales a template to fill the
// box's actual bounding rectangle at render time.
var shapeTemplates = map[customShape]string{
	shapeStorage: "M0,10 C0,4.477 22.386,0 50,0 C77.614,0 100,4.477 100,10 " +
		"L100,90 C100,95.523 77.614,100 50,100 C22.386,100 0,95.523 0,90 Z",
	shapeDocument: "M0,0 L100,0 L100,80 " +
		"C83.333,95 66.667,70 50,85 C33.333,100 16.667,75 0,90 Z",
}

// customShapePath returns the transformed path data for a named custom
// shape, or ok=false if the name isn't recognized.
func customShapePath(name string, minX, minY, maxX, maxY float64) (d string, ok bool) {
	tmpl, ok := shapeTemplates[customShape(name)]
	if !ok {
		return "", false
	}
	return transformPath(tmpl, minX, minY, maxX, maxY), true
}

// transformPath rescales and repositions a 100x100-viewport path template
// into [minX,minY]-[maxX,maxY]. Absolute command operands are scaled then
// translated; relative operands are only scaled, alternating the X and Y
// factor per operand the same way the source commands alternate axes
// (spec.md §9: relative Y operands use pY, relative X operands use pX).
func transformPath(d string, minX, minY, maxX, maxY float64) string {
	pX := (maxX - minX) / 100
	pY := (maxY - minY) / 100

	var out strings.Builder
	var cmd byte
	axis := 0 // 0 = x, 1 = y

	for _, tok := range splitPathTokens(d) {
		if len(tok) == 1 && isPathCommandLetter(tok[0]) {
			cmd = tok[0]
			axis = 0
			out.WriteByte(cmd)
			out.WriteByte(' ')
			continue
		}

		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			continue
		}

		relative := cmd >= 'a' && cmd <= 'z'
		var scaled float64
		if axis == 0 {
			scaled = v * pX
			if !relative {
				scaled += minX
			}
		} else {
			scaled = v * pY
			if !relative {
				scaled += minY
			}
		}
		out.WriteString(strconv.FormatFloat(scaled, 'f', 3, 64))
		out.WriteByte(' ')
		axis = 1 - axis
	}

	return strings.TrimSpace(out.String())
}

func splitPathTokens(d string) []string {
	var b strings.Builder
	for _, r := range d {
		switch {
		case isPathCommandLetter(byte(r)):
			b.WriteByte(' ')
			b.WriteRune(r)
			b.WriteByte(' ')
		case r == ',':
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}
	return strings.Fields(b.String())
}

func isPathCommandLetter(b byte) bool {
	switch b {
	case 'M', 'm', 'L', 'l', 'C', 'c', 'Z', 'z', 'H', 'h', 'V', 'v', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a':
		return true
	}
	return false
}
