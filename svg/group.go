// Copyright (c) 2026, Sciviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import "strings"

// Group is an SVG group element, with an optional transform
// applying to all of its children.
type Group struct {
	NodeBase

	// Transform is the transform attribute string, e.g. "translate(10,20)".
	Transform string

	// Children are the child nodes, rendered in order.
	Children []Node
}

func (g *Group) SVGName() string { return "g" }

// NewGroup adds a new group to the given parent, with the given id.
func NewGroup(parent *Group, name string) *Group {
	gp := &Group{}
	gp.init(parent, name, gp)
	return gp
}

// DeleteChild removes the given node from the group's children,
// returning true if it was found.
func (g *Group) DeleteChild(n Node) bool {
	for i, c := range g.Children {
		if c == n {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			n.AsNodeBase().Parent = nil
			return true
		}
	}
	return false
}

// DeleteChildren removes all children from the group.
func (g *Group) DeleteChildren() {
	for _, c := range g.Children {
		c.AsNodeBase().Parent = nil
	}
	g.Children = nil
}

// FindID returns the node with the given id under this group
// (depth-first, including the group itself), or nil if not found.
// Because the search is scoped to the subtree, identical ids elsewhere
// in the document are never returned.
func (g *Group) FindID(id string) Node {
	if g.Name == id {
		return g
	}
	for _, c := range g.Children {
		if cg, ok := c.(*Group); ok {
			if n := cg.FindID(id); n != nil {
				return n
			}
			continue
		}
		if c.AsNodeBase().Name == id {
			return c
		}
	}
	return nil
}

// FindClass returns all nodes under this group whose class attribute
// contains the given class name as a whitespace-separated token.
func (g *Group) FindClass(class string) []Node {
	var res []Node
	g.walk(func(n Node) {
		if hasClass(n.AsNodeBase().Class, class) {
			res = append(res, n)
		}
	})
	return res
}

func (g *Group) walk(fn func(n Node)) {
	for _, c := range g.Children {
		fn(c)
		if cg, ok := c.(*Group); ok {
			cg.walk(fn)
		}
	}
}

func hasClass(classes, class string) bool {
	if classes == "" || class == "" {
		return false
	}
	for _, c := range strings.Fields(classes) {
		if c == class {
			return true
		}
	}
	return false
}
