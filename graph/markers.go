// Copyright (c) 2026, Sciviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/sciviz/lineplot/anim"
	"github.com/sciviz/lineplot/svg"
)

// Rules is the input to [Graph.MarkerLines]: a set of reference-line
// positions on one axis. Class defaults to "rule".
type Rules struct {
	Class     string
	Positions []float32
	Axis      Axis
	Slow      bool
}

// Markers is the input to [Graph.MarkerPoints]: parallel x and y
// arrays with a uniform (length 1) or per-point radius. Keys
// optionally supplies stable reconcile keys parallel to the data;
// when empty, array indices are used. Delay postpones the enter
// animations, for choreographing markers after lines. Class defaults
// to "marker".
type Markers struct {
	Class  string
	X, Y   []float32
	Radius []float32
	Keys   []string
	Delay  time.Duration
	Slow   bool
}

// MarkerLines reconciles the axis-spanning reference lines of the
// given class against the new positions. Lines are keyed by position
// value, so removing one value from the set exits exactly that line
// and leaves the others untouched. Each line spans the full range of
// the opposite axis at a fixed coordinate on the given axis. Exits
// are issued before enters, so a value that leaves and re-enters in
// the same call never collides.
func (g *Graph) MarkerLines(rs Rules) error {
	if !rs.Axis.valid() {
		err := fmt.Errorf("%w: %d", ErrInvalidAxis, rs.Axis)
		slog.Error("lineplot: bad marker axis", "graph", g.GraphID, "err", err)
		return err
	}
	if rs.Class == "" {
		rs.Class = "rule"
	}
	kind := RuleXMark
	if rs.Axis == Y {
		kind = RuleYMark
	}
	keys := make([]string, len(rs.Positions))
	for i, v := range rs.Positions {
		keys[i] = strconv.FormatFloat(float64(v), 'g', -1, 32)
	}
	dur := g.duration(rs.Slow)
	j := reconcile(g.byCls[rs.Class], keys)
	for _, m := range j.exit {
		g.exitMark(m, dur, 0)
	}
	for _, u := range j.update {
		u.Mark.Data = []Point{g.rulePoint(kind, rs.Positions[u.Index])}
		x1, y1, x2, y2 := g.ruleSpan(u.Mark)
		g.tweenRule(u.Mark, x1, y1, x2, y2, dur, 0, anim.CubicInOut, nil)
	}
	for _, i := range j.enter {
		g.enterRule(rs.Class, keys[i], kind, rs.Positions[i], dur)
	}
	return nil
}

// rulePoint is the single bound datum of a rule mark.
func (g *Graph) rulePoint(kind MarkKind, pos float32) Point {
	if kind == RuleXMark {
		return Point{X: pos}
	}
	return Point{Y: pos}
}

// enterRule creates a rule mark collapsed to its midpoint and grows
// it to full span with an overshoot ease.
func (g *Graph) enterRule(class, key string, kind MarkKind, pos float32, dur time.Duration) {
	m := &Mark{
		ID:    class + "-" + key,
		Class: class,
		Key:   key,
		Kind:  kind,
		State: Entering,
		Data:  []Point{g.rulePoint(kind, pos)},
	}
	x1, y1, x2, y2 := g.ruleSpan(m)
	mx, my := (x1+x2)/2, (y1+y2)/2
	node := svg.NewLine(g.frame, g.nodeName(class), mx, my, mx, my)
	node.Class = class
	node.Stroke = lightenHex(g.MarkerColor, enterLighten)
	node.StrokeWidth = 1.5
	m.Node = node
	g.register(m)
	g.tweenRule(m, x1, y1, x2, y2, dur, 0, anim.BackOut,
		func() { m.State = Present })
	g.fadeColor(m, &node.Stroke, g.MarkerColor, dur, 0)
}

// MarkerPoints reconciles the circle markers of the given class
// against the new point set. Markers are keyed by ms.Keys when
// supplied, else by array index. Entering markers grow from zero
// radius with an overshoot ease after ms.Delay; exiting markers
// shrink away and detach. Exits are issued before enters.
func (g *Graph) MarkerPoints(ms Markers) error {
	pts, kept, err := g.cleanPoints(ms.X, ms.Y)
	if err != nil {
		return err
	}
	if ms.Class == "" {
		ms.Class = "marker"
	}
	keys := make([]string, len(pts))
	for i, ki := range kept {
		if len(ms.Keys) > ki {
			keys[i] = ms.Keys[ki]
		} else {
			keys[i] = strconv.Itoa(ki)
		}
	}
	dur := g.duration(ms.Slow)
	j := reconcile(g.byCls[ms.Class], keys)
	for _, m := range j.exit {
		g.exitMark(m, dur, 0)
	}
	for _, u := range j.update {
		m := u.Mark
		m.Data = []Point{pts[u.Index]}
		m.Radius = radiusAt(ms.Radius, kept[u.Index])
		g.tweenCircle(m, g.XScale.Map(m.Data[0].X), g.YScale.Map(m.Data[0].Y),
			m.Radius, dur, 0, anim.CubicInOut, nil)
	}
	for _, i := range j.enter {
		g.enterPoint(ms.Class, keys[i], pts[i], radiusAt(ms.Radius, kept[i]), dur, ms.Delay)
	}
	return nil
}

// enterPoint creates a circle marker at zero radius and grows it to
// its full radius with an overshoot ease.
func (g *Graph) enterPoint(class, key string, pt Point, r float32, dur, delay time.Duration) {
	m := &Mark{
		ID:     class + "-" + key,
		Class:  class,
		Key:    key,
		Kind:   PointMark,
		State:  Entering,
		Data:   []Point{pt},
		Radius: r,
	}
	cx, cy := g.XScale.Map(pt.X), g.YScale.Map(pt.Y)
	node := svg.NewCircle(g.frame, g.nodeName(class), cx, cy, 0)
	node.Class = class
	node.Fill = lightenHex(g.MarkerColor, enterLighten)
	m.Node = node
	g.register(m)
	g.tweenCircle(m, cx, cy, r, dur, delay, anim.BackOut,
		func() { m.State = Present })
	g.fadeColor(m, &node.Fill, g.MarkerColor, dur, delay)
}

// radiusAt resolves the uniform-or-per-point radius convention.
func radiusAt(radii []float32, i int) float32 {
	switch {
	case len(radii) == 0:
		return 4
	case len(radii) == 1:
		return radii[0]
	case i < len(radii):
		return radii[i]
	}
	return radii[len(radii)-1]
}
