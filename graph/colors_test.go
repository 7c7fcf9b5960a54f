// Copyright (c) 2026, Sciviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sciviz/lineplot/svg"
)

func TestBlendHex(t *testing.T) {
	assert.Equal(t, "#1e88e5", blendHex("#1e88e5", "#ffffff", 0))
	assert.Equal(t, "#ffffff", blendHex("#1e88e5", "#ffffff", 1))

	// bad input falls back to the first color
	assert.Equal(t, "nope", blendHex("nope", "#ffffff", 0.5))
	assert.Equal(t, "#1e88e5", blendHex("#1e88e5", "nope", 0.5))

	assert.Equal(t, "#ffffff", lightenHex("#1e88e5", 1))
}

func TestEnterColorFade(t *testing.T) {
	g := newTestGraph(t, nil)
	m, err := g.AddLine(Series{ID: "a", X: []float32{0, 1}, Y: []float32{0, 1}})
	assert.NoError(t, err)

	// entering lines start washed out and settle to the full color
	p := m.Node.(*svg.Path)
	assert.NotEqual(t, g.LineColor, p.Stroke)
	g.Settle()
	assert.Equal(t, g.LineColor, p.Stroke)

	assert.NoError(t, g.MarkerPoints(Markers{X: []float32{0.5}, Y: []float32{0.5}}))
	c := g.byCls["marker"][0].Node.(*svg.Circle)
	assert.NotEqual(t, g.MarkerColor, c.Fill)
	g.Settle()
	assert.Equal(t, g.MarkerColor, c.Fill)
}
