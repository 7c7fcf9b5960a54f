// Copyright (c) 2026, Sciviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sciviz/lineplot/anim"
	"github.com/sciviz/lineplot/scale"
	"github.com/sciviz/lineplot/svg"
)

// Axis designates one of the two coordinate axes in operations that
// take an axis argument.
type Axis int32

const (
	// X is the horizontal axis.
	X Axis = iota

	// Y is the vertical axis.
	Y
)

func (a Axis) valid() bool { return a == X || a == Y }

// Graph is one mounted chart widget. It owns a root group inside the
// host document, a pair of scales, rendered axes, and the set of
// marks currently bound to data. All operations are single-goroutine;
// see [Graph.Step] and [Graph.Play] for advancing animations.
type Graph struct {
	Options

	// Doc is the host document the widget is mounted in.
	Doc *svg.SVG

	// Root is the widget's own group; everything the widget renders
	// lives under it, so selector operations never touch marks of
	// other widgets in the same document.
	Root *svg.Group

	// XScale, YScale map data coordinates to plot-area pixels.
	// YScale is inverted: larger data values are higher on screen.
	XScale, YScale *scale.Linear

	// Anim schedules the widget's transitions.
	Anim *anim.Scheduler

	axes    *svg.Group
	frame   *svg.Group
	marks   map[string]*Mark   // by mark ID
	byCls   map[string][]*Mark // live marks per class, in insertion order
	nodeSeq int
	lineSeq int
}

// New creates a widget mounted in the given document, configured by
// opts (nil for all defaults). If opts.ContainerID is set and no such
// group exists in the document, New reports and returns
// [ErrNoContainer] without mounting anything.
func New(doc *svg.SVG, opts *Options) (*Graph, error) {
	if opts == nil {
		opts = &Options{}
	}
	opts.Defaults()
	mount := &doc.Group
	if opts.ContainerID != "" {
		n := doc.FindID(opts.ContainerID)
		grp, ok := n.(*svg.Group)
		if n == nil || !ok {
			err := fmt.Errorf("%w: %q", ErrNoContainer, opts.ContainerID)
			slog.Error("lineplot: mount failed", "graph", opts.GraphID, "err", err)
			return nil, err
		}
		mount = grp
	}
	g := &Graph{
		Options: *opts,
		Doc:     doc,
		Anim:    anim.NewScheduler(),
		marks:   make(map[string]*Mark),
		byCls:   make(map[string][]*Mark),
	}
	pw, ph := g.plotSize()
	g.XScale = scale.NewLinear(opts.XMin, opts.XMax, pw)
	g.YScale = scale.NewInverted(opts.YMin, opts.YMax, ph)

	g.Root = svg.NewGroup(mount, opts.GraphID)
	g.axes = svg.NewGroup(g.Root, opts.GraphID+"-axes")
	g.axes.Transform = translate(opts.Margins.Left, opts.Margins.Top)
	g.frame = svg.NewGroup(g.Root, opts.GraphID+"-frame")
	g.frame.Transform = translate(opts.Margins.Left, opts.Margins.Top)
	g.renderAxes()
	return g, nil
}

func translate(x, y float32) string {
	return fmt.Sprintf("translate(%g,%g)", x, y)
}

// plotSize returns the pixel size of the plotting area inside the
// margins, never smaller than 1x1.
func (g *Graph) plotSize() (w, h float32) {
	w = g.Width - g.Margins.Left - g.Margins.Right
	h = g.Height - g.Margins.Top - g.Margins.Bottom
	return max(w, 1), max(h, 1)
}

// XRange returns the current effective x domain.
func (g *Graph) XRange() (min, max float32) { return g.XScale.Min, g.XScale.Max }

// YRange returns the current effective y domain.
func (g *Graph) YRange() (min, max float32) { return g.YScale.Min, g.YScale.Max }

// Resize changes the widget dimensions, reconfiguring the scales in
// place and snapping axes and marks to the new geometry without
// animation.
func (g *Graph) Resize(width, height float32) {
	g.Width, g.Height = width, height
	pw, ph := g.plotSize()
	g.XScale.Reconfigure(g.XScale.Min, g.XScale.Max, pw)
	g.YScale.Reconfigure(g.YScale.Min, g.YScale.Max, ph)
	g.renderAxes()
	g.snapMarks()
}

// SetLimits changes the declared axis limits, re-renders the axes,
// and animates all marks to their new positions over the fast tier.
func (g *Graph) SetLimits(xmin, xmax, ymin, ymax float32) {
	pw, ph := g.plotSize()
	g.XScale.Reconfigure(xmin, xmax, pw)
	g.YScale.Reconfigure(ymin, ymax, ph)
	g.renderAxes()
	for _, m := range g.marks {
		g.retarget(m, g.Fast())
	}
}

// Step advances all running transitions by the given time delta.
func (g *Graph) Step(dt time.Duration) { g.Anim.Step(dt) }

// Settle runs all transitions to completion, useful for tests and
// one-shot rendering.
func (g *Graph) Settle() { g.Anim.Settle() }

// Play advances transitions from a real-time ticker until the
// context is done.
func (g *Graph) Play(ctx context.Context, interval time.Duration) {
	g.Anim.Run(ctx, interval)
}

// nodeName returns a document-unique element id for a new mark node.
func (g *Graph) nodeName(base string) string {
	g.nodeSeq++
	return fmt.Sprintf("%s-%s-%d", g.GraphID, base, g.nodeSeq)
}

// register adds a mark to the id and class registries.
func (g *Graph) register(m *Mark) {
	g.marks[m.ID] = m
	g.byCls[m.Class] = append(g.byCls[m.Class], m)
}

// unregister removes a mark from the registries. The mark's element
// may live on until its exit animation detaches it, but it no longer
// participates in lookups or reconciliation, so its key is free for
// reuse within the same cycle.
func (g *Graph) unregister(m *Mark) {
	if g.marks[m.ID] == m {
		delete(g.marks, m.ID)
	}
	cls := g.byCls[m.Class]
	for i, c := range cls {
		if c == m {
			g.byCls[m.Class] = append(cls[:i], cls[i+1:]...)
			break
		}
	}
}

// snapMarks re-applies final geometry to every mark immediately,
// dropping any in-flight transitions.
func (g *Graph) snapMarks() {
	for _, m := range g.marks {
		g.Anim.Stop(m.Node)
		g.applyGeometry(m)
	}
}

// applyGeometry sets a mark's element to the geometry implied by its
// bound data under the current scales, and settles any dropped
// visibility fade at its target.
func (g *Graph) applyGeometry(m *Mark) {
	nb := m.Node.AsNodeBase()
	nb.Visible = !m.hidden
	nb.Opacity = 1
	switch m.Kind {
	case LineMark:
		m.pix = g.pixPoints(m.Data, false)
		m.Node.(*svg.Path).Data = pathData(m.pix)
	case PointMark:
		c := m.Node.(*svg.Circle)
		c.CX = g.XScale.Map(m.Data[0].X)
		c.CY = g.YScale.Map(m.Data[0].Y)
		c.Radius = m.Radius
	case RuleXMark, RuleYMark:
		ln := m.Node.(*svg.Line)
		x1, y1, x2, y2 := g.ruleSpan(m)
		ln.X1, ln.Y1, ln.X2, ln.Y2 = x1, y1, x2, y2
	}
}

// retarget animates a mark from its current state to the geometry
// implied by its bound data under the current scales.
func (g *Graph) retarget(m *Mark, dur time.Duration) {
	switch m.Kind {
	case LineMark:
		g.tweenPath(m, g.pixPoints(m.Data, false), dur, 0, anim.CubicInOut, nil)
	case PointMark:
		g.tweenCircle(m, g.XScale.Map(m.Data[0].X), g.YScale.Map(m.Data[0].Y),
			m.Radius, dur, 0, anim.CubicInOut, nil)
	case RuleXMark, RuleYMark:
		x1, y1, x2, y2 := g.ruleSpan(m)
		g.tweenRule(m, x1, y1, x2, y2, dur, 0, anim.CubicInOut, nil)
	}
}

// ruleSpan returns the full-span endpoints for a rule mark under the
// current scales.
func (g *Graph) ruleSpan(m *Mark) (x1, y1, x2, y2 float32) {
	pw, ph := g.plotSize()
	if m.Kind == RuleXMark {
		px := g.XScale.Map(m.Data[0].X)
		return px, 0, px, ph
	}
	py := g.YScale.Map(m.Data[0].Y)
	return 0, py, pw, py
}

// tweenPath animates a line mark's path from its current pixel points
// to the given target points.
func (g *Graph) tweenPath(m *Mark, to []Point, dur, delay time.Duration, ease anim.Easing, done func()) {
	from := append([]Point(nil), m.pix...)
	path := m.Node.(*svg.Path)
	g.Anim.Start(m.Node, &anim.Transition{
		Duration: dur,
		Delay:    delay,
		Ease:     ease,
		Update: func(p float32) {
			m.pix = lerpPoints(from, to, p)
			path.Data = pathData(m.pix)
		},
		Done: done,
	})
}

// tweenCircle animates a point mark's center and radius from its
// current values.
func (g *Graph) tweenCircle(m *Mark, cx, cy, r float32, dur, delay time.Duration, ease anim.Easing, done func()) {
	c := m.Node.(*svg.Circle)
	fx, fy, fr := c.CX, c.CY, c.Radius
	g.Anim.Start(m.Node, &anim.Transition{
		Duration: dur,
		Delay:    delay,
		Ease:     ease,
		Update: func(p float32) {
			c.CX = lerp(fx, cx, p)
			c.CY = lerp(fy, cy, p)
			c.Radius = max(lerp(fr, r, p), 0)
		},
		Done: done,
	})
}

// tweenRule animates a rule mark's endpoints from their current
// values.
func (g *Graph) tweenRule(m *Mark, x1, y1, x2, y2 float32, dur, delay time.Duration, ease anim.Easing, done func()) {
	ln := m.Node.(*svg.Line)
	f1x, f1y, f2x, f2y := ln.X1, ln.Y1, ln.X2, ln.Y2
	g.Anim.Start(m.Node, &anim.Transition{
		Duration: dur,
		Delay:    delay,
		Ease:     ease,
		Update: func(p float32) {
			ln.X1 = lerp(f1x, x1, p)
			ln.Y1 = lerp(f1y, y1, p)
			ln.X2 = lerp(f2x, x2, p)
			ln.Y2 = lerp(f2y, y2, p)
		},
		Done: done,
	})
}
