// Copyright (c) 2026, Sciviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

// SVG is the root of an SVG document.
type SVG struct {
	Group

	// Width, Height is the size of the document in pixels, also used
	// as the viewBox.
	Width, Height float32
}

func (sv *SVG) SVGName() string { return "svg" }

// NewSVG creates a new SVG document of the specified width and height.
func NewSVG(width, height float32) *SVG {
	sv := &SVG{Width: width, Height: height}
	sv.init(nil, "", sv)
	return sv
}
