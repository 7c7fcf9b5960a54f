// Copyright (c) 2026, Sciviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

// Path is an SVG path element.
type Path struct {
	NodeBase

	// Data is the path data string ("d" attribute).
	Data string
}

func (p *Path) SVGName() string { return "path" }

// NewPath adds a new path to the given parent, with the given id
// and path data.
func NewPath(parent *Group, name, data string) *Path {
	p := &Path{Data: data}
	p.init(parent, name, p)
	return p
}

// Circle is an SVG circle element.
type Circle struct {
	NodeBase

	// CX, CY is the position of the center of the circle.
	CX, CY float32

	// Radius is the radius of the circle.
	Radius float32
}

func (c *Circle) SVGName() string { return "circle" }

// NewCircle adds a new circle to the given parent, with the given id,
// center position, and radius.
func NewCircle(parent *Group, name string, cx, cy, r float32) *Circle {
	c := &Circle{CX: cx, CY: cy, Radius: r}
	c.init(parent, name, c)
	return c
}

// Line is an SVG line element between two points.
type Line struct {
	NodeBase

	X1, Y1 float32
	X2, Y2 float32
}

func (l *Line) SVGName() string { return "line" }

// NewLine adds a new line to the given parent, with the given id
// and endpoints.
func NewLine(parent *Group, name string, x1, y1, x2, y2 float32) *Line {
	l := &Line{X1: x1, Y1: y1, X2: x2, Y2: y2}
	l.init(parent, name, l)
	return l
}

// Text is an SVG text element.
type Text struct {
	NodeBase

	// X, Y is the anchor position of the text.
	X, Y float32

	// Anchor is the text-anchor value: "start", "middle", or "end".
	// Empty means inherit (start).
	Anchor string

	// FontSize is the font size in pixels; zero means inherit.
	FontSize float32

	// Rotate, if nonzero, rotates the text by the given degrees
	// around the anchor position.
	Rotate float32

	// Text is the text content of the element.
	Text string
}

func (t *Text) SVGName() string { return "text" }

// NewText adds a new text element to the given parent, with the given
// id and content.
func NewText(parent *Group, name, text string) *Text {
	t := &Text{Text: text}
	t.init(parent, name, t)
	return t
}
