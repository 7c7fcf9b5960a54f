// Copyright (c) 2026, Sciviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import "github.com/sciviz/lineplot/svg"

// Point is one data-space point.
type Point struct {
	X, Y float32
}

// MarkKind is the type of visual element a mark renders as.
type MarkKind int32

const (
	// LineMark is a multi-point polyline path.
	LineMark MarkKind = iota

	// PointMark is a single circle marker.
	PointMark

	// RuleXMark is a vertical reference line at a fixed x,
	// spanning the full y range.
	RuleXMark

	// RuleYMark is a horizontal reference line at a fixed y,
	// spanning the full x range.
	RuleYMark
)

func (mk MarkKind) String() string {
	switch mk {
	case LineMark:
		return "line"
	case PointMark:
		return "point"
	case RuleXMark:
		return "rule-x"
	case RuleYMark:
		return "rule-y"
	}
	return "invalid"
}

// MarkState is the lifecycle state of a mark.
type MarkState int32

const (
	// Entering marks are animating in and not yet at their final state.
	Entering MarkState = iota

	// Present marks are fully materialized.
	Present

	// Exiting marks are animating out and are already unregistered;
	// their element is detached when the exit animation completes.
	Exiting
)

// Mark is one rendered visual element bound to data.
type Mark struct {

	// ID identifies the mark within its graph, for [Graph.UpdateLine]
	// and #id selectors.
	ID string

	// Class groups same-kind marks for reconciliation and .class
	// selectors.
	Class string

	// Key is the stable reconcile key within the class.
	Key string

	// Kind is the visual element type.
	Kind MarkKind

	// State is the lifecycle state.
	State MarkState

	// Data is the bound data: the ordered point sequence for lines,
	// a single point for circles and rules.
	Data []Point

	// Radius is the circle radius for [PointMark] marks.
	Radius float32

	// Node is the rendered SVG element.
	Node svg.Node

	// pix is the current pixel-space point list for line marks,
	// the interpolation state that path transitions continue from.
	pix []Point

	// hidden is the intended visibility target. It flips the moment
	// [Graph.Hide] or [Graph.Show] is called, while the element's
	// Visible flag only settles when the fade completes, so the two
	// disagree mid-flight.
	hidden bool
}
