// Copyright (c) 2026, Sciviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"fmt"

	"github.com/sciviz/lineplot/anim"
	"github.com/sciviz/lineplot/svg"
)

// Series is the input to [Graph.AddLine]: parallel x and y arrays,
// an optional class (default "line"), and an optional stable id
// (auto-generated when empty).
type Series struct {
	Class string
	ID    string
	X, Y  []float32
}

// AddLine adds a new line mark bound to the series data. The line
// enters flattened onto the reference level and animates up to its
// real path over the slow tier. The returned mark's ID is the handle
// for [Graph.UpdateLine] and #id selectors. An explicit ID already
// held by a line re-binds that line instead of registering a second
// mark; an ID held by any other kind exits the old mark first.
func (g *Graph) AddLine(s Series) (*Mark, error) {
	if s.Class == "" {
		s.Class = "line"
	}
	id := s.ID
	if id == "" {
		for {
			g.lineSeq++
			id = fmt.Sprintf("line-%d", g.lineSeq)
			if g.marks[id] == nil {
				break
			}
		}
	}
	if old := g.marks[id]; old != nil {
		if old.Kind == LineMark {
			return g.UpdateLine(id, s.X, s.Y, true)
		}
		g.exitMark(old, g.Slow(), 0)
	}
	pts, _, err := g.cleanPoints(s.X, s.Y)
	if err != nil {
		return nil, err
	}
	m := &Mark{
		ID:    id,
		Class: s.Class,
		Key:   id,
		Kind:  LineMark,
		State: Entering,
		Data:  g.preparePoints(pts),
	}
	node := svg.NewPath(g.frame, g.nodeName(s.Class), "")
	node.Class = s.Class
	node.Fill = "none"
	node.Stroke = lightenHex(g.LineColor, enterLighten)
	node.StrokeWidth = 2
	m.Node = node
	m.pix = g.pixPoints(m.Data, true)
	node.Data = pathData(m.pix)
	g.register(m)
	g.tweenPath(m, g.pixPoints(m.Data, false), g.Slow(), 0, anim.CubicInOut,
		func() { m.State = Present })
	g.fadeColor(m, &node.Stroke, g.LineColor, g.Slow(), 0)
	return m, nil
}

// UpdateLine re-binds the data of the line mark with the given id and
// animates directly from its current path to the new one, with no
// flattening, over the fast tier (or slow when requested). A missing
// or non-line id is created implicitly via [Graph.AddLine] rather
// than reported.
func (g *Graph) UpdateLine(id string, x, y []float32, slow bool) (*Mark, error) {
	m := g.marks[id]
	if m == nil || m.Kind != LineMark {
		return g.AddLine(Series{ID: id, X: x, Y: y})
	}
	pts, _, err := g.cleanPoints(x, y)
	if err != nil {
		return nil, err
	}
	m.Data = g.preparePoints(pts)
	g.tweenPath(m, g.pixPoints(m.Data, false), g.duration(slow), 0, anim.CubicInOut,
		func() { m.State = Present })
	return m, nil
}
