// Copyright (c) 2026, Sciviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"testing"
	"time"

	"github.com/sciviz/lineplot/svg"
	"github.com/stretchr/testify/assert"
)

func TestHideShow(t *testing.T) {
	g := newTestGraph(t, &Options{XMax: 10, YMax: 10})
	m, _ := g.AddLine(Series{ID: "w", X: []float32{0, 10}, Y: []float32{0, 10}})
	g.Settle()
	nb := m.Node.AsNodeBase()

	g.Hide("#w")
	g.Settle()
	assert.False(t, nb.Visible)
	assert.Equal(t, float32(1), nb.Opacity, "hide leaves opacity reset for the next show")
	// the mark stays registered with its data
	assert.Same(t, m, g.marks["w"])

	g.Show("#w")
	g.Settle()
	assert.True(t, nb.Visible)
	assert.Equal(t, float32(1), nb.Opacity)

	// hiding twice or showing the visible is a no-op
	g.Show("#w")
	assert.Equal(t, 0, g.Anim.Active())
}

func TestShowInterruptsHide(t *testing.T) {
	g := newTestGraph(t, &Options{XMax: 10, YMax: 10})
	m, _ := g.AddLine(Series{ID: "w", X: []float32{0, 10}, Y: []float32{0, 10}})
	g.Settle()
	nb := m.Node.AsNodeBase()

	// show issued mid-hide must win and leave the mark visible
	g.Hide("#w")
	g.Step(10 * time.Millisecond)
	g.Show("#w")
	g.Settle()
	assert.True(t, nb.Visible, "show issued after hide must leave the mark visible")
	assert.Equal(t, float32(1), nb.Opacity)

	// and the reverse: hide issued mid-show must win
	g.Hide("#w")
	g.Settle()
	g.Show("#w")
	g.Step(10 * time.Millisecond)
	g.Hide("#w")
	g.Settle()
	assert.False(t, nb.Visible)
	assert.Equal(t, float32(1), nb.Opacity)
}

func TestHideByClass(t *testing.T) {
	g := newTestGraph(t, &Options{XMax: 10, YMax: 10})
	g.AddLine(Series{Class: "aux", ID: "a", X: []float32{0, 1}, Y: []float32{0, 1}})
	g.AddLine(Series{Class: "aux", ID: "b", X: []float32{0, 1}, Y: []float32{1, 0}})
	g.AddLine(Series{ID: "main", X: []float32{0, 1}, Y: []float32{0, 0}})
	g.Settle()

	g.Hide(".aux")
	g.Settle()
	assert.False(t, g.marks["a"].Node.AsNodeBase().Visible)
	assert.False(t, g.marks["b"].Node.AsNodeBase().Visible)
	assert.True(t, g.marks["main"].Node.AsNodeBase().Visible)
}

func TestRemove(t *testing.T) {
	g := newTestGraph(t, &Options{XMax: 10, YMax: 10})
	m, _ := g.AddLine(Series{ID: "w", X: []float32{0, 10}, Y: []float32{0, 10}})
	g.Settle()
	children := len(g.frame.Children)

	g.Remove("#w")
	// unregistered immediately, detached after the exit animation
	assert.Nil(t, g.marks["w"])
	assert.Equal(t, Exiting, m.State)
	g.Settle()
	assert.Equal(t, children-1, len(g.frame.Children))
	assert.Nil(t, m.Node.AsNodeBase().Parent)

	// removing again is a no-op
	g.Remove("#w")
	g.Remove(".line")
	assert.Equal(t, 0, g.Anim.Active())
}

func TestSelectorScoping(t *testing.T) {
	doc := svg.NewSVG(1200, 300)
	svg.NewGroup(&doc.Group, "left")
	svg.NewGroup(&doc.Group, "right")
	g1, err := New(doc, &Options{ContainerID: "left", GraphID: "g1", XMax: 10, YMax: 10})
	assert.NoError(t, err)
	g2, err := New(doc, &Options{ContainerID: "right", GraphID: "g2", XMax: 10, YMax: 10})
	assert.NoError(t, err)

	g1.MarkerLines(Rules{Class: "thresh", Positions: []float32{5}, Axis: X})
	g2.MarkerLines(Rules{Class: "thresh", Positions: []float32{5}, Axis: X})
	g1.Settle()
	g2.Settle()

	// identical class names in another widget are never affected
	g1.Remove(".thresh")
	g1.Settle()
	assert.Empty(t, g1.byCls["thresh"])
	assert.Len(t, g2.byCls["thresh"], 1)
	assert.True(t, g2.marks["thresh-5"].Node.AsNodeBase().Parent != nil)
}

func TestBareSelector(t *testing.T) {
	g := newTestGraph(t, &Options{XMax: 10, YMax: 10})
	g.AddLine(Series{ID: "w", X: []float32{0, 1}, Y: []float32{0, 1}})
	g.Settle()
	assert.Len(t, g.resolve("w"), 1)
	assert.Len(t, g.resolve("line"), 1)
	assert.Empty(t, g.resolve("#nope"))
	assert.Empty(t, g.resolve(".nope"))
}
