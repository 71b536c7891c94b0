// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

import (
	"encoding/json"
	"fmt"

	jsonpatch "gopkg.in/evanphx/json-patch.v4"
)

// AddResult reports what AddPoint actually did, mirroring spec.md §3's
// Path invariants (a) and (b).
type AddResult int

const (
	// Added means the point was appended normally.
	Added AddResult = iota
	// Deduped means the point duplicated a non-initial existing point and
	// was dropped.
	Deduped
	// Closed means the point equaled the first point; the Path's Closed
	// flag was set and the point was not appended.
	Closed
)

// Path is an ordered sequence of Points plus a closed flag and a set of
// string options (spec.md §3).
type Path struct {
	Points  []Point
	IsClosed bool
	Options map[string]string
}

// NewPath returns an empty, open Path.
func NewPath() *Path {
	return &Path{Options: map[string]string{}}
}

// AddPoint appends a vertex, honoring the dedup/closure invariants: adding
// a duplicate of a non-initial point is a no-op; re-adding the first point
// closes the Path instead of appending it.
func (p *Path) AddPoint(pt Point) AddResult {
	if len(p.Points) > 0 && pt.sameCoord(p.Points[0]) {
		p.IsClosed = true
		return Closed
	}
	for i, existing := range p.Points {
		if i == 0 {
			continue
		}
		if pt.sameCoord(existing) {
			return Deduped
		}
	}
	p.Points = append(p.Points, pt)
	return Added
}

// AddMarker appends a marker point unconditionally (spec.md §4.2 step 4,
// §4.4: "Marker points are appended unconditionally").
func (p *Path) AddMarker(pt Point) {
	p.Points = append(p.Points, pt)
}

// PopPoint removes the most recently added vertex. Used by the
// WallFollower to backtrack a corner that led nowhere.
func (p *Path) PopPoint() {
	if len(p.Points) == 0 {
		return
	}
	p.Points = p.Points[:len(p.Points)-1]
}

// Last returns the Path's most recently added vertex.
func (p *Path) Last() Point { return p.Points[len(p.Points)-1] }

// SetOption sets a single string option.
func (p *Path) SetOption(key, value string) {
	p.Options[key] = value
}

// MergeOptions merges a JSON object's keys into the Path's option set,
// using an RFC 7396 JSON merge patch: keys in blob overwrite keys already
// present, keys absent from blob are left untouched. Values are
// flattened to their string representation, since SVG attributes are
// always textual.
func (p *Path) MergeOptions(blob []byte) error {
	base, err := json.Marshal(stringMapToInterface(p.Options))
	if err != nil {
		return err
	}
	merged, err := jsonpatch.MergePatch(base, blob)
	if err != nil {
		return err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(merged, &out); err != nil {
		return err
	}
	for k, v := range out {
		p.Options[k] = fmt.Sprint(v)
	}
	return nil
}

func stringMapToInterface(m map[string]string) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
