// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorToRGB(t *testing.T) {
	r, g, b, err := colorToRGB("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, 255, r)
	assert.Equal(t, 0, g)
	assert.Equal(t, 0, b)
}

func TestColorToRGB_Invalid(t *testing.T) {
	_, _, _, err := colorToRGB("not-a-color")
	assert.Error(t, err)
}

func TestTextColor(t *testing.T) {
	tests := []struct {
		name string
		bg   string
		want string
	}{
		{"black background needs white text", "#000000", "#fff"},
		{"white background needs black text", "#ffffff", "#000"},
		{"pure red is dark enough for white text", "#ff0000", "#fff"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := textColor(tc.bg)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
