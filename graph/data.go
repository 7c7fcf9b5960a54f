// Copyright (c) 2026, Sciviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/chewxy/math32"
	"github.com/sciviz/lineplot/scale"
)

var (
	// ErrNoContainer indicates the configured container id does not
	// exist in the host document.
	ErrNoContainer = errors.New("lineplot: container not found in document")

	// ErrInvalidAxis indicates an axis designator other than X or Y.
	ErrInvalidAxis = errors.New("lineplot: invalid axis")

	// ErrLengthMismatch indicates x and y arrays of different lengths.
	ErrLengthMismatch = errors.New("lineplot: x and y lengths differ")
)

// cleanPoints pairs up x and y values and filters out unusable
// entries: a NaN in either coordinate drops the pair, while an
// infinite coordinate is replaced by a synthetic off-scale value at
// 1.5 times the current effective axis limit, so the remaining
// geometry stays drawable. The returned index slice maps each kept
// point back to its position in the input, for aligning per-point
// attributes like radii and keys. Mismatched lengths are an error.
func (g *Graph) cleanPoints(xs, ys []float32) ([]Point, []int, error) {
	if len(xs) != len(ys) {
		err := fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(xs), len(ys))
		slog.Error("lineplot: bad data", "graph", g.GraphID, "err", err)
		return nil, nil, err
	}
	pts := make([]Point, 0, len(xs))
	kept := make([]int, 0, len(xs))
	for i := range xs {
		x, y := xs[i], ys[i]
		if math32.IsNaN(x) || math32.IsNaN(y) {
			continue
		}
		pts = append(pts, Point{offScale(x, g.XScale), offScale(y, g.YScale)})
		kept = append(kept, i)
	}
	return pts, kept, nil
}

// offScale replaces infinities with a finite stand-in past the
// current domain edge.
func offScale(v float32, ls *scale.Linear) float32 {
	if math32.IsInf(v, 1) {
		return 1.5 * ls.Max
	}
	if math32.IsInf(v, -1) {
		return 1.5 * ls.Min
	}
	return v
}

func isFinite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
