// Copyright (c) 2026, Sciviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestCleanPointsFiltering(t *testing.T) {
	g := newTestGraph(t, &Options{XMin: 0, XMax: 10, YMin: 0, YMax: 10})
	inf := math32.Inf(1)
	nan := math32.NaN()

	pts, kept, err := g.cleanPoints(
		[]float32{1, 2, inf, nan},
		[]float32{1, 2, 5, 5})
	assert.NoError(t, err)

	// the NaN pair is dropped entirely; the infinity becomes a
	// synthetic off-scale point at 1.5x the axis max
	assert.Len(t, pts, 3)
	assert.Equal(t, []int{0, 1, 2}, kept)
	assert.Equal(t, Point{1, 1}, pts[0])
	assert.Equal(t, Point{2, 2}, pts[1])
	assert.Equal(t, Point{1.5 * 10, 5}, pts[2])
}

func TestCleanPointsNegativeInfinity(t *testing.T) {
	g := newTestGraph(t, &Options{XMin: 0, XMax: 10, YMin: -4, YMax: 4})
	pts, _, err := g.cleanPoints([]float32{5}, []float32{math32.Inf(-1)})
	assert.NoError(t, err)
	assert.Equal(t, float32(1.5*-4), pts[0].Y)
}

func TestCleanPointsLengthMismatch(t *testing.T) {
	g := newTestGraph(t, nil)
	_, _, err := g.cleanPoints([]float32{1, 2, 3}, []float32{1, 2})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestCleanPointsAllDropped(t *testing.T) {
	g := newTestGraph(t, nil)
	nan := math32.NaN()
	pts, kept, err := g.cleanPoints([]float32{nan, nan}, []float32{1, 2})
	assert.NoError(t, err)
	assert.Empty(t, pts)
	assert.Empty(t, kept)

	// an empty valid dataset still renders an empty, not broken, mark
	m, err := g.AddLine(Series{ID: "empty", X: []float32{nan}, Y: []float32{1}})
	assert.NoError(t, err)
	g.Settle()
	assert.Equal(t, "", pathData(m.pix))
}
