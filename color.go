// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// colorToRGB parses a "#rgb" or "#rrggbb" hex color into 0-255 components,
// using go-colorful's hex parser rather than hand-rolled nibble math.
func colorToRGB(c string) (r, g, b int, err error) {
	if len(c) == 0 || c[0] != '#' {
		return 0, 0, 0, fmt.Errorf("color %q can't be parsed", c)
	}
	col, err := colorful.Hex(c)
	if err != nil {
		return 0, 0, 0, err
	}
	cr, cg, cb := col.RGB255()
	return int(cr), int(cg), int(cb), nil
}

// textColor returns an accessible text color to use on top of a supplied
// background color, per spec.md §4.7. The formula comes from a W3 working
// group paper on accessibility: perceived brightness Y=(299R+587G+114B)/1000
// and color-difference sum R+G+B. If either falls below the recommended
// threshold, white text is used instead of the default black.
func textColor(c string) (string, error) {
	r, g, b, err := colorToRGB(c)
	if err != nil {
		return "#000", err
	}

	brightness := (r*299 + g*587 + b*114) / 1000
	difference := r + g + b
	if brightness < 125 || difference < 500 {
		return "#fff", nil
	}

	return "#000", nil
}
