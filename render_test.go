// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

import (
	"strings"
	"testing"

	"github.com/srwiley/oksvg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_ProducesWellFormedSVG(t *testing.T) {
	diagram := []byte("+-----+\n|     |\n+-----+\n")
	c := Parse(diagram, DefaultScale, 8)

	svg := Render(c, RenderOptions{})
	out := string(svg)

	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Contains(t, out, `class="boxes"`)
	assert.Contains(t, out, `class="lines"`)
	assert.Contains(t, out, `class="text"`)
	assert.Contains(t, out, "dsFilter")
}

func TestRender_DisableDropShadow(t *testing.T) {
	diagram := []byte("+-+\n+-+\n")
	c := Parse(diagram, DefaultScale, 8)

	svg := Render(c, RenderOptions{DisableDropShadow: true})
	assert.NotContains(t, string(svg), "dsFilter")
}

// TestBuildPathData_IsValidSVGPath round-trips every generated box path
// through oksvg's path compiler, confirming the Renderer only ever emits
// syntactically valid SVG path data.
func TestBuildPathData_IsValidSVGPath(t *testing.T) {
	diagrams := [][]byte{
		[]byte("+-----+\n|     |\n+-----+\n"),
		[]byte(".-----.\n|     |\n'-----'\n"),
	}

	for _, d := range diagrams {
		c := Parse(d, DefaultScale, 8)
		require.NotEmpty(t, c.Boxes)
		for _, box := range c.Boxes {
			pathData := buildPathData(box.Points, true)
			require.NotEmpty(t, pathData)

			var cursor oksvg.PathCursor
			err := cursor.CompilePath(pathData)
			assert.NoError(t, err, "path data %q should be valid SVG", pathData)
		}
	}
}

func TestTransformPath_ScalesToTargetBounds(t *testing.T) {
	d, ok := customShapePath("storage", 0, 0, 200, 100)
	require.True(t, ok)
	assert.Contains(t, d, "M 0.000 10.000")
}

func TestTransformPath_UnknownShape(t *testing.T) {
	_, ok := customShapePath("nonexistent", 0, 0, 100, 100)
	assert.False(t, ok)
}
