// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

// group is a named bag of Paths and Texts plus group-level SVG attributes
// (spec.md §3). Render emits groups in insertion order: boxes, lines, text.
type group struct {
	Name    string
	Options map[string]string
	Paths   []*Path
	Texts   []*Text
}

// groupSet is a push/pop stack of groups, tracking the active group the
// way the teacher's SVGGroup did with PushGroup/PopGroup.
type groupSet struct {
	groups []*group
	stack  []*group
}

func newGroupSet() *groupSet {
	return &groupSet{}
}

// push starts a new named group and makes it the active one.
func (gs *groupSet) push(name string) *group {
	g := &group{Name: name, Options: map[string]string{}}
	gs.groups = append(gs.groups, g)
	gs.stack = append(gs.stack, g)
	return g
}

// pop ends the active group.
func (gs *groupSet) pop() {
	if len(gs.stack) == 0 {
		return
	}
	gs.stack = gs.stack[:len(gs.stack)-1]
}

// active returns the currently open group, or nil if none is open.
func (gs *groupSet) active() *group {
	if len(gs.stack) == 0 {
		return nil
	}
	return gs.stack[len(gs.stack)-1]
}

// addPath appends a Path to the active group.
func (gs *groupSet) addPath(p *Path) {
	if g := gs.active(); g != nil {
		g.Paths = append(g.Paths, p)
	}
}

// addText appends a Text to the active group.
func (gs *groupSet) addText(t *Text) {
	if g := gs.active(); g != nil {
		g.Texts = append(g.Texts, t)
	}
}
