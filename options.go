// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

import "regexp"

// commandRefLine matches a trailing option-reference line of the form
// "[N]: {json}" or "[N] {json}" (spec.md §6). The JSON value may not
// itself contain braces.
var commandRefLine = regexp.MustCompile(`(?m)^\[(\d+)\]:?[ \t]+(\{[^{}]*\})[ \t]*$\n?`)

// extractCommandTable strips trailing "[N]: {json}" lines from data and
// returns the remaining text plus a map from decimal key to the raw JSON
// blob (spec.md §3, "Command table").
func extractCommandTable(data []byte) ([]byte, map[string][]byte) {
	table := map[string][]byte{}
	rest := commandRefLine.ReplaceAllFunc(data, func(m []byte) []byte {
		sub := commandRefLine.FindSubmatch(m)
		table[string(sub[1])] = append([]byte(nil), sub[2]...)
		return nil
	})
	return rest, table
}

// inGridRef matches the "[N]" reference syntax a box may carry at
// (topRow+1, topLeftCol+1) inside the grid itself.
var inGridRef = regexp.MustCompile(`^\[(\d+)\]`)
