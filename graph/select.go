// Copyright (c) 2026, Sciviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"strings"
	"time"

	"github.com/sciviz/lineplot/anim"
	"github.com/sciviz/lineplot/svg"
)

// resolve returns the live marks matching a selector: "#id" for one
// mark by id, ".class" for all marks of a class. A bare name is
// tried as an id first, then as a class. Only marks owned by this
// widget are ever returned.
func (g *Graph) resolve(sel string) []*Mark {
	switch {
	case strings.HasPrefix(sel, "#"):
		if m := g.marks[sel[1:]]; m != nil {
			return []*Mark{m}
		}
		return nil
	case strings.HasPrefix(sel, "."):
		return append([]*Mark(nil), g.byCls[sel[1:]]...)
	}
	if m := g.marks[sel]; m != nil {
		return []*Mark{m}
	}
	return append([]*Mark(nil), g.byCls[sel]...)
}

// Hide fades out the marks matching the selector and then makes them
// invisible. Hidden marks stay registered and keep their data; a
// selector matching nothing, or marks already hiding, is a no-op.
// Hiding a mark mid-show replaces the show fade from its current
// opacity.
func (g *Graph) Hide(sel string) {
	for _, m := range g.resolve(sel) {
		if m.hidden {
			continue
		}
		m.hidden = true
		nb := m.Node.AsNodeBase()
		from := nb.Opacity
		g.Anim.Start(m.Node, &anim.Transition{
			Duration: g.Fast(),
			Ease:     anim.CubicInOut,
			Update:   func(p float32) { nb.Opacity = from * (1 - p) },
			Done: func() {
				nb.Visible = false
				nb.Opacity = 1
			},
		})
	}
}

// Show makes the marks matching the selector visible again, fading
// them in. Marks that are already visible are untouched. Showing a
// mark mid-hide replaces the hide fade from its current opacity, so
// the newest request wins.
func (g *Graph) Show(sel string) {
	for _, m := range g.resolve(sel) {
		if !m.hidden {
			continue
		}
		m.hidden = false
		nb := m.Node.AsNodeBase()
		if !nb.Visible {
			nb.Visible = true
			nb.Opacity = 0
		}
		from := nb.Opacity
		g.Anim.Start(m.Node, &anim.Transition{
			Duration: g.Fast(),
			Ease:     anim.CubicInOut,
			Update:   func(p float32) { nb.Opacity = lerp(from, 1, p) },
		})
	}
}

// Remove animates out the marks matching the selector and detaches
// them when the exit animation completes. A selector matching
// nothing is a no-op.
func (g *Graph) Remove(sel string) {
	for _, m := range g.resolve(sel) {
		g.exitMark(m, g.Slow(), 0)
	}
}

// exitMark starts a mark's exit animation and unregisters it
// immediately, freeing its key; the element is detached from the
// document when the animation completes. Lines collapse onto the
// flat reference, circles shrink away, rules contract back to their
// midpoint.
func (g *Graph) exitMark(m *Mark, dur, delay time.Duration) {
	m.State = Exiting
	g.unregister(m)
	detach := func() { m.Node.AsNodeBase().Detach(m.Node) }
	switch m.Kind {
	case LineMark:
		g.tweenPath(m, g.pixPoints(m.Data, true), dur, delay, anim.CubicInOut, detach)
	case PointMark:
		c := m.Node.(*svg.Circle)
		g.tweenCircle(m, c.CX, c.CY, 0, dur, delay, anim.BackIn, detach)
	case RuleXMark, RuleYMark:
		x1, y1, x2, y2 := g.ruleSpan(m)
		mx, my := (x1+x2)/2, (y1+y2)/2
		g.tweenRule(m, mx, my, mx, my, dur, delay, anim.BackIn, detach)
	}
}
