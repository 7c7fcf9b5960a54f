// Copyright (c) 2026, Sciviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

// Node is the interface for all SVG nodes.
type Node interface {

	// AsNodeBase returns the [NodeBase] for our node, which gives
	// access to all the base-level data structures and methods
	// without requiring interface methods.
	AsNodeBase() *NodeBase

	// SVGName returns the SVG element name (e.g., "circle", "path" etc).
	SVGName() string
}

// NodeBase is the base type for all elements within an SVG tree.
// It implements the [Node] interface and contains the presentation
// attributes shared by every element type.
type NodeBase struct {

	// Name is the id of the element. Empty names are not written out.
	Name string

	// Class contains user-defined class name(s), space separated.
	Class string

	// Visible renders the element; false emits display="none" so the
	// element stays in the tree but does not show.
	Visible bool

	// Opacity is the overall element opacity in [0,1]. Values at or
	// above 1 are not written out.
	Opacity float32

	// Fill is the fill color (any SVG paint string); empty means inherit.
	Fill string

	// Stroke is the stroke color; empty means inherit.
	Stroke string

	// StrokeWidth is the stroke width in pixels; zero means inherit.
	StrokeWidth float32

	// StrokeDash is the stroke-dasharray value, if any.
	StrokeDash string

	// Parent is the group this node is a child of, nil for the root.
	Parent *Group
}

func (nb *NodeBase) AsNodeBase() *NodeBase { return nb }

// init sets presentation defaults and attaches the node to its parent.
func (nb *NodeBase) init(parent *Group, name string, n Node) {
	nb.Name = name
	nb.Visible = true
	nb.Opacity = 1
	if parent != nil {
		parent.Children = append(parent.Children, n)
		nb.Parent = parent
	}
}

// Detach removes this node from its parent group. It is safe to call
// on an already detached node.
func (nb *NodeBase) Detach(n Node) {
	if nb.Parent == nil {
		return
	}
	nb.Parent.DeleteChild(n)
}
