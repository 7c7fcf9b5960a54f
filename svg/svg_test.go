// Copyright (c) 2026, Sciviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTreeBuild(t *testing.T) {
	sv := NewSVG(400, 200)
	g := NewGroup(&sv.Group, "chart")
	p := NewPath(g, "wave", "M 0,0 L 10,10")
	c := NewCircle(g, "pt", 5, 5, 2)

	assert.Len(t, sv.Children, 1)
	assert.Len(t, g.Children, 2)
	assert.Equal(t, g, p.Parent)

	assert.Equal(t, p, sv.FindID("wave"))
	assert.Equal(t, c, sv.FindID("pt"))
	assert.Nil(t, sv.FindID("nope"))

	assert.True(t, g.DeleteChild(c))
	assert.False(t, g.DeleteChild(c))
	assert.Nil(t, c.Parent)
	assert.Len(t, g.Children, 1)
}

func TestFindScoping(t *testing.T) {
	sv := NewSVG(100, 100)
	a := NewGroup(&sv.Group, "a")
	b := NewGroup(&sv.Group, "b")
	pa := NewPath(a, "p1", "")
	pa.Class = "marker"
	pb := NewPath(b, "p2", "")
	pb.Class = "marker thick"

	// searches under a subtree never see siblings
	assert.Nil(t, a.FindID("p2"))
	assert.Equal(t, pb, b.FindID("p2"))

	assert.Len(t, sv.FindClass("marker"), 2)
	assert.Equal(t, []Node{pa}, a.FindClass("marker"))
	assert.Equal(t, []Node{pb}, b.FindClass("thick"))
	assert.Empty(t, b.FindClass("thic"))
}

func TestWriteXML(t *testing.T) {
	sv := NewSVG(400, 200)
	g := NewGroup(&sv.Group, "chart")
	g.Transform = "translate(40,20)"
	p := NewPath(g, "wave", "M 0,0 L 10,10")
	p.Stroke = "#1e88e5"
	p.StrokeWidth = 2
	p.Fill = "none"
	txt := NewText(g, "", "a < b")
	txt.X, txt.Y = 10, 20
	txt.Anchor = "end"

	out := sv.XMLString()
	assert.Contains(t, out, `<svg xmlns="http://www.w3.org/2000/svg" width="400" height="200" viewBox="0 0 400 200">`)
	assert.Contains(t, out, `transform="translate(40,20)"`)
	assert.Contains(t, out, `<path d="M 0,0 L 10,10" id="wave" fill="none" stroke="#1e88e5" stroke-width="2" />`)
	assert.Contains(t, out, `a &lt; b</text>`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

func TestVisibilityAndOpacity(t *testing.T) {
	sv := NewSVG(10, 10)
	c := NewCircle(&sv.Group, "c", 1, 2, 3)
	c.Opacity = 0.5
	c.Visible = false

	out := sv.XMLString()
	assert.Contains(t, out, `opacity="0.5"`)
	assert.Contains(t, out, `display="none"`)

	c.Visible = true
	c.Opacity = 1
	out = sv.XMLString()
	assert.NotContains(t, out, "display")
	assert.NotContains(t, out, "opacity")
}
