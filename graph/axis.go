// Copyright (c) 2026, Sciviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"github.com/sciviz/lineplot/scale"
	"github.com/sciviz/lineplot/svg"
)

const (
	tickLen       float32 = 6
	tickFontSize  float32 = 11
	labelFontSize float32 = 12
)

// renderAxes rebuilds the axis chrome from the current scales:
// baselines, tick marks, formatted tick labels, optional axis titles,
// and the optional zero reference line.
func (g *Graph) renderAxes() {
	g.axes.DeleteChildren()
	pw, ph := g.plotSize()
	labelColor := g.LabelColor.Resolve(g.DarkMode)

	xg := svg.NewGroup(g.axes, g.GraphID+"-axis-x")
	base := svg.NewLine(xg, "", 0, ph, pw, ph)
	base.Stroke = g.AxisColor
	base.StrokeWidth = 1
	for _, v := range g.XScale.Ticks(g.XTicks) {
		px := g.XScale.Map(v)
		tick := svg.NewLine(xg, "", px, ph, px, ph+tickLen)
		tick.Stroke = g.AxisColor
		tick.StrokeWidth = 1
		lbl := svg.NewText(xg, "", scale.Format(v, g.XTickFormat))
		lbl.X, lbl.Y = px, ph+tickLen+12
		lbl.Anchor = "middle"
		lbl.FontSize = tickFontSize
		lbl.Fill = labelColor
	}
	if g.XLabel != "" {
		title := svg.NewText(xg, "", g.XLabel)
		title.X, title.Y = pw, ph+tickLen+28
		title.Anchor = "end"
		title.FontSize = labelFontSize
		title.Fill = labelColor
	}

	yg := svg.NewGroup(g.axes, g.GraphID+"-axis-y")
	base = svg.NewLine(yg, "", 0, 0, 0, ph)
	base.Stroke = g.AxisColor
	base.StrokeWidth = 1
	for _, v := range g.YScale.Ticks(g.YTicks) {
		py := g.YScale.Map(v)
		tick := svg.NewLine(yg, "", -tickLen, py, 0, py)
		tick.Stroke = g.AxisColor
		tick.StrokeWidth = 1
		lbl := svg.NewText(yg, "", scale.Format(v, g.YTickFormat))
		lbl.X, lbl.Y = -tickLen-3, py+4
		lbl.Anchor = "end"
		lbl.FontSize = tickFontSize
		lbl.Fill = labelColor
	}
	if g.YLabel != "" {
		title := svg.NewText(yg, "", g.YLabel)
		title.X, title.Y = -tickLen-3, -8
		title.Anchor = "end"
		title.FontSize = labelFontSize
		title.Fill = labelColor
	}

	if g.ZeroLine && g.YScale.Min < 0 && g.YScale.Max > 0 {
		py := g.YScale.Map(0)
		zero := svg.NewLine(g.axes, g.GraphID+"-zero", 0, py, pw, py)
		zero.Class = "zero"
		zero.Stroke = g.AxisColor
		zero.StrokeWidth = 1
		zero.StrokeDash = "4 3"
	}
}
