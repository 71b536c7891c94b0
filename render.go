// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

import (
	"fmt"
	"html"
	"math"
	"strings"
)

// cornerRadius is the fixed quadratic-Bézier trim distance used to round
// CONTROL-flagged corners (spec.md §4.9).
const cornerRadius = 10.0

// RenderOptions controls cosmetic aspects of the generated SVG document
// that aren't derived from the diagram itself.
type RenderOptions struct {
	// FontFamily is the font-family attribute applied to all text. Empty
	// falls back to "monospace", matching the diagram's fixed-width grid.
	FontFamily string
	// DisableDropShadow skips the blur filter boxes pick up by default.
	DisableDropShadow bool
}

func (o RenderOptions) fontFamily() string {
	if o.FontFamily != "" {
		return o.FontFamily
	}
	return "monospace"
}

// Render serializes a Canvas to a standalone SVG document (spec.md §3, §6).
// Boxes, lines, and text are assembled into a groupSet the way the
// teacher's SVGGroup accumulated elements under a named, pushed group,
// then emitted as <g> elements in push order: boxes, lines, text.
func Render(c *Canvas, opts RenderOptions) []byte {
	gs := newGroupSet()

	gs.push("boxes")
	for _, p := range c.Boxes {
		gs.addPath(p)
	}
	gs.pop()

	gs.push("lines")
	for _, p := range c.Lines {
		gs.addPath(p)
	}
	gs.pop()

	gs.push("text")
	for _, t := range c.Texts {
		gs.addText(t)
	}
	gs.pop()

	var b strings.Builder

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.3f" height="%.3f" font-family="%s">`+"\n",
		c.Width, c.Height, html.EscapeString(opts.fontFamily()))

	writeDefs(&b, opts)

	for _, g := range gs.groups {
		fmt.Fprintf(&b, `<g class="%s">`+"\n", g.Name)
		switch g.Name {
		case "boxes":
			for _, p := range g.Paths {
				writeBoxPath(&b, p, !opts.DisableDropShadow)
			}
		case "lines":
			for _, p := range g.Paths {
				writeLinePath(&b, p)
			}
		case "text":
			for _, t := range g.Texts {
				writeText(&b, t)
			}
		}
		b.WriteString("</g>\n")
	}

	b.WriteString("</svg>\n")
	return []byte(b.String())
}

func writeDefs(b *strings.Builder, opts RenderOptions) {
	b.WriteString("<defs>\n")
	if !opts.DisableDropShadow {
		b.WriteString(`<filter id="dsFilter" width="150%" height="150%">` +
			`<feGaussianBlur in="SourceAlpha" stdDeviation="2"/>` +
			`<feOffset dx="2" dy="2" result="offsetblur"/>` +
			`<feComponentTransfer><feFuncA type="linear" slope="0.3"/></feComponentTransfer>` +
			`<feMerge><feMergeNode/><feMergeNode in="SourceGraphic"/></feMerge>` +
			"</filter>\n")
	}
	b.WriteString(`<marker id="Pointer" viewBox="0 0 10 10" refX="9" refY="5" ` +
		`markerWidth="6" markerHeight="6" orient="auto-start-reverse">` +
		`<path d="M0,0 L10,5 L0,10 Z"/></marker>` + "\n")
	b.WriteString(`<marker id="iPointer" viewBox="0 0 10 10" refX="1" refY="5" ` +
		`markerWidth="6" markerHeight="6" orient="auto-start-reverse">` +
		`<path d="M10,0 L0,5 L10,10 Z"/></marker>` + "\n")
	b.WriteString("</defs>\n")
}

func writeBoxPath(b *strings.Builder, p *Path, shadow bool) {
	shape, hasShape := p.Options["a2s:type"]
	delete(p.Options, "a2s:type")
	attrs := boxAttrs(p, shadow)

	if hasShape {
		minX, minY, maxX, maxY := boundingBox(p)
		if d, ok := customShapePath(shape, minX, minY, maxX, maxY); ok {
			fmt.Fprintf(b, `<path d="%s"%s/>`+"\n", d, attrs)
			return
		}
	}
	d := buildPathData(p.Points, true)
	fmt.Fprintf(b, `<path d="%s"%s/>`+"\n", d, attrs)
}

func boxAttrs(p *Path, shadow bool) string {
	var b strings.Builder
	writeOption(&b, "fill", p.Options, "#fff")
	writeOption(&b, "stroke", p.Options, "#000")
	if v, ok := p.Options["stroke-width"]; ok {
		fmt.Fprintf(&b, ` stroke-width="%s"`, html.EscapeString(v))
	}
	if _, ok := p.Options["no-shadow"]; !ok && shadow {
		b.WriteString(` filter="url(#dsFilter)"`)
	}
	return b.String()
}

func writeLinePath(b *strings.Builder, p *Path) {
	d := buildPathData(p.Points, false)
	var attrs strings.Builder
	writeOption(&attrs, "stroke", p.Options, "#000")
	attrs.WriteString(` fill="none"`)
	if n := len(p.Points); n > 0 {
		switch {
		case p.Points[0].Flags.has(FlagIMarker):
			attrs.WriteString(` marker-start="url(#iPointer)"`)
		case p.Points[0].Flags.has(FlagSMarker):
			attrs.WriteString(` marker-start="url(#Pointer)"`)
		}
		switch {
		case p.Points[n-1].Flags.has(FlagSMarker):
			attrs.WriteString(` marker-end="url(#Pointer)"`)
		case p.Points[n-1].Flags.has(FlagIMarker):
			attrs.WriteString(` marker-end="url(#iPointer)"`)
		}
	}
	fmt.Fprintf(b, `<path d="%s"%s/>`+"\n", d, attrs.String())
}

func writeText(b *strings.Builder, t *Text) {
	fill := "#000"
	if v, ok := t.Options["fill"]; ok {
		fill = v
	}
	fmt.Fprintf(b, `<text x="%.3f" y="%.3f" fill="%s">%s</text>`+"\n",
		t.Anchor.X, t.Anchor.Y, html.EscapeString(fill), html.EscapeString(t.String))
}

func writeOption(b *strings.Builder, key string, options map[string]string, fallback string) {
	v, ok := options[key]
	if !ok {
		v = fallback
	}
	fmt.Fprintf(b, ` %s="%s"`, key, html.EscapeString(v))
}

// buildPathData walks points in order, rendering CONTROL-flagged vertices
// as a quadratic Bézier trimmed cornerRadius units along each adjacent
// edge, and everything else as a straight line-to (spec.md §4.9).
func buildPathData(points []Point, closed bool) string {
	n := len(points)
	if n == 0 {
		return ""
	}

	type anchor struct{ in, out Point }
	anchors := make([]anchor, n)
	for i, p := range points {
		if !p.Flags.has(FlagControl) {
			anchors[i] = anchor{in: p, out: p}
			continue
		}
		prev := points[(i-1+n)%n]
		next := points[(i+1)%n]
		anchors[i] = anchor{
			in:  offsetToward(p, prev, cornerRadius),
			out: offsetToward(p, next, cornerRadius),
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "M%.3f,%.3f ", anchors[0].in.X, anchors[0].in.Y)
	if points[0].Flags.has(FlagControl) {
		fmt.Fprintf(&b, "Q%.3f,%.3f %.3f,%.3f ", points[0].X, points[0].Y, anchors[0].out.X, anchors[0].out.Y)
	}

	limit := n
	if !closed {
		limit = n - 1
	}
	for i := 0; i < limit; i++ {
		j := (i + 1) % n
		fmt.Fprintf(&b, "L%.3f,%.3f ", anchors[j].in.X, anchors[j].in.Y)
		if points[j].Flags.has(FlagControl) {
			fmt.Fprintf(&b, "Q%.3f,%.3f %.3f,%.3f ", points[j].X, points[j].Y, anchors[j].out.X, anchors[j].out.Y)
		}
	}
	if closed {
		b.WriteString("Z")
	}
	return strings.TrimSpace(b.String())
}

func offsetToward(from, to Point, dist float64) Point {
	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return from
	}
	t := dist / length
	if t > 1 {
		t = 1
	}
	return Point{X: from.X + dx*t, Y: from.Y + dy*t}
}

func boundingBox(p *Path) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, pt := range p.Points {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return
}
