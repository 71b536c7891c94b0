// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

// Package a2svg provides functionality for parsing ASCII diagrams. It supports diagrams
// containing UTF-8 content, custom styling of polygons and special shapes, line segments
// with arrowheads, and free-form text.
//
// The main interface to the library is through Parse, which builds a Canvas from a byte
// slice representing the diagram. The byte slice is interpreted as a newline-delimited
// file, each line representing a row of the diagram. Tabs within the diagram are expanded
// to spaces based on a specified tab width. Render then serializes the Canvas to SVG.
//
// Example usage:
//
//	import (
//	    "fmt"
//
//	    "github.com/a2svg/a2svg"
//	)
//
//	...
//
//	scale := a2svg.NewScale(9, 16)
//	c := a2svg.Parse(diagram, scale, 8)
//	svg := a2svg.Render(c, a2svg.RenderOptions{})
//	written, err := fd.Write(svg)
//
//	...
package a2svg
