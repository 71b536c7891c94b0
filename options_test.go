// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCommandTable(t *testing.T) {
	data := []byte("+--+\n|  |\n+--+\n[1]: {\"fill\": \"#f00\", \"stroke\": \"#000\"}\n")

	rest, table := extractCommandTable(data)

	assert.NotContains(t, string(rest), "[1]:")
	require.Contains(t, table, "1")
	assert.Contains(t, string(table["1"]), "#f00")
}

func TestExtractCommandTable_NoTable(t *testing.T) {
	data := []byte("+--+\n|  |\n+--+\n")
	rest, table := extractCommandTable(data)
	assert.Equal(t, data, rest)
	assert.Empty(t, table)
}

func TestPathMergeOptions(t *testing.T) {
	p := NewPath()
	p.SetOption("stroke", "#000")

	err := p.MergeOptions([]byte(`{"fill": "#f00"}`))
	require.NoError(t, err)

	assert.Equal(t, "#000", p.Options["stroke"])
	assert.Equal(t, "#f00", p.Options["fill"])
}

func TestPathMergeOptions_Overwrites(t *testing.T) {
	p := NewPath()
	p.SetOption("fill", "#fff")

	err := p.MergeOptions([]byte(`{"fill": "#000"}`))
	require.NoError(t, err)

	assert.Equal(t, "#000", p.Options["fill"])
}
