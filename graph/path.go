// Copyright (c) 2026, Sciviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// pathData builds SVG path data connecting the given pixel-space
// points with straight segments, in order. Empty input yields an
// empty path, which renders as nothing.
func pathData(pix []Point) string {
	if len(pix) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, p := range pix {
		if i == 0 {
			sb.WriteString("M ")
		} else {
			sb.WriteString(" L ")
		}
		fmt.Fprintf(&sb, "%g,%g", p.X, p.Y)
	}
	return sb.String()
}

// pixPoints maps data-space points through the scales. With flat set,
// every y is pinned to the flat reference value, producing the
// collapsed path used as the enter start-state and exit target.
func (g *Graph) pixPoints(pts []Point, flat bool) []Point {
	flatY := g.flatPixY()
	pix := make([]Point, len(pts))
	for i, p := range pts {
		y := flatY
		if !flat {
			y = g.YScale.Map(p.Y)
		}
		pix[i] = Point{g.XScale.Map(p.X), y}
	}
	return pix
}

// flatPixY is the pixel y that flattened lines collapse onto: the
// zero line when zero is inside the y domain, else the domain floor.
func (g *Graph) flatPixY() float32 {
	ref := float32(0)
	if g.YScale.Min > 0 || g.YScale.Max < 0 {
		ref = g.YScale.Min
	}
	return g.YScale.Map(ref)
}

// preparePoints applies the configured x sort. The sort is stable and
// is skipped entirely if any x is non-finite, preserving input order.
func (g *Graph) preparePoints(pts []Point) []Point {
	if !g.SortLinesByX || len(pts) < 2 {
		return pts
	}
	for _, p := range pts {
		if !isFinite(p.X) {
			return pts
		}
	}
	s := slices.Clone(pts)
	slices.SortStableFunc(s, func(a, b Point) int { return cmp.Compare(a.X, b.X) })
	return s
}

// lerpPoints interpolates pointwise between two pixel point lists at
// eased progress p. When the lists differ in length, from is
// resampled by index ratio so the path morphs instead of jumping.
func lerpPoints(from, to []Point, p float32) []Point {
	if len(to) == 0 {
		return nil
	}
	if len(from) == 0 {
		from = to
	}
	r := make([]Point, len(to))
	for i := range to {
		f := from[i*len(from)/len(to)]
		r[i] = Point{
			X: f.X + (to[i].X-f.X)*p,
			Y: f.Y + (to[i].Y-f.Y)*p,
		}
	}
	return r
}

func lerp(a, b, p float32) float32 { return a + (b-a)*p }
