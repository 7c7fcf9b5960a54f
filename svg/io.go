// Copyright (c) 2026, Sciviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// WriteXML writes the document as SVG XML to the given writer.
// If indent is true, each element is written on its own line with
// two-space indentation.
func (sv *SVG) WriteXML(w io.Writer, indent bool) error {
	xw := &xmlWriter{w: w, indent: indent}
	xw.node(sv)
	return xw.err
}

// XMLString returns the document as an SVG XML string.
func (sv *SVG) XMLString() string {
	var sb strings.Builder
	sv.WriteXML(&sb, true)
	return sb.String()
}

type attr struct {
	name, value string
}

type xmlWriter struct {
	w      io.Writer
	indent bool
	depth  int
	err    error
}

func (xw *xmlWriter) write(s string) {
	if xw.err != nil {
		return
	}
	_, xw.err = io.WriteString(xw.w, s)
}

func (xw *xmlWriter) line(s string) {
	if xw.indent {
		xw.write(strings.Repeat("  ", xw.depth))
	}
	xw.write(s)
	if xw.indent {
		xw.write("\n")
	}
}

// node writes one node and its subtree. Geometry attributes are
// per-type; presentation attributes come from the NodeBase.
func (xw *xmlWriter) node(n Node) {
	nb := n.AsNodeBase()
	var attrs []attr
	var content string
	switch nd := n.(type) {
	case *SVG:
		attrs = append(attrs,
			attr{"xmlns", "http://www.w3.org/2000/svg"},
			attr{"width", fmt.Sprintf("%g", nd.Width)},
			attr{"height", fmt.Sprintf("%g", nd.Height)},
			attr{"viewBox", fmt.Sprintf("0 0 %g %g", nd.Width, nd.Height)})
	case *Group:
		if nd.Transform != "" {
			attrs = append(attrs, attr{"transform", nd.Transform})
		}
	case *Path:
		attrs = append(attrs, attr{"d", nd.Data})
	case *Circle:
		attrs = append(attrs,
			attr{"cx", fmt.Sprintf("%g", nd.CX)},
			attr{"cy", fmt.Sprintf("%g", nd.CY)},
			attr{"r", fmt.Sprintf("%g", nd.Radius)})
	case *Line:
		attrs = append(attrs,
			attr{"x1", fmt.Sprintf("%g", nd.X1)},
			attr{"y1", fmt.Sprintf("%g", nd.Y1)},
			attr{"x2", fmt.Sprintf("%g", nd.X2)},
			attr{"y2", fmt.Sprintf("%g", nd.Y2)})
	case *Text:
		attrs = append(attrs,
			attr{"x", fmt.Sprintf("%g", nd.X)},
			attr{"y", fmt.Sprintf("%g", nd.Y)})
		if nd.Anchor != "" {
			attrs = append(attrs, attr{"text-anchor", nd.Anchor})
		}
		if nd.FontSize > 0 {
			attrs = append(attrs, attr{"font-size", fmt.Sprintf("%g", nd.FontSize)})
		}
		if nd.Rotate != 0 {
			attrs = append(attrs, attr{"transform",
				fmt.Sprintf("rotate(%g,%g,%g)", nd.Rotate, nd.X, nd.Y)})
		}
		content = nd.Text
	}
	attrs = append(attrs, baseAttrs(nb)...)

	var sb strings.Builder
	sb.WriteString("<" + n.SVGName())
	for _, a := range attrs {
		sb.WriteString(" " + a.name + `="` + escape(a.value) + `"`)
	}

	children := childrenOf(n)
	if len(children) == 0 && content == "" {
		sb.WriteString(" />")
		xw.line(sb.String())
		return
	}
	if content != "" {
		sb.WriteString(">" + escape(content) + "</" + n.SVGName() + ">")
		xw.line(sb.String())
		return
	}
	sb.WriteString(">")
	xw.line(sb.String())
	xw.depth++
	for _, c := range children {
		xw.node(c)
	}
	xw.depth--
	xw.line("</" + n.SVGName() + ">")
}

func baseAttrs(nb *NodeBase) []attr {
	var attrs []attr
	if nb.Name != "" {
		attrs = append(attrs, attr{"id", nb.Name})
	}
	if nb.Class != "" {
		attrs = append(attrs, attr{"class", nb.Class})
	}
	if nb.Fill != "" {
		attrs = append(attrs, attr{"fill", nb.Fill})
	}
	if nb.Stroke != "" {
		attrs = append(attrs, attr{"stroke", nb.Stroke})
	}
	if nb.StrokeWidth > 0 {
		attrs = append(attrs, attr{"stroke-width", fmt.Sprintf("%g", nb.StrokeWidth)})
	}
	if nb.StrokeDash != "" {
		attrs = append(attrs, attr{"stroke-dasharray", nb.StrokeDash})
	}
	if nb.Opacity < 1 {
		attrs = append(attrs, attr{"opacity", fmt.Sprintf("%g", max(nb.Opacity, 0))})
	}
	if !nb.Visible {
		attrs = append(attrs, attr{"display", "none"})
	}
	return attrs
}

func childrenOf(n Node) []Node {
	switch nd := n.(type) {
	case *SVG:
		return nd.Group.Children
	case *Group:
		return nd.Children
	}
	return nil
}

func escape(s string) string {
	var sb strings.Builder
	xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
