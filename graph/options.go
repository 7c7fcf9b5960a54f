// Copyright (c) 2026, Sciviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Margins are the pixel insets between the widget edge and the
// plotting area, leaving room for axes and labels.
type Margins struct {
	Top    float32 `toml:"top"`
	Right  float32 `toml:"right"`
	Bottom float32 `toml:"bottom"`
	Left   float32 `toml:"left"`
}

// ColorPair is a color with light-background and dark-background
// variants.
type ColorPair struct {
	Light string `toml:"light"`
	Dark  string `toml:"dark"`
}

// Resolve returns the variant for the given mode.
func (cp ColorPair) Resolve(dark bool) string {
	if dark {
		return cp.Dark
	}
	return cp.Light
}

// Options configures a [Graph]. All fields are optional;
// [Options.Defaults] fills anything left at its zero value.
// Options can be saved to and loaded from TOML files.
type Options struct {

	// ContainerID is the id of the group in the host document to
	// mount into. Empty mounts at the document root.
	ContainerID string `toml:"container_id"`

	// GraphID is the id of the widget's own root group, and the
	// prefix for every element id the widget creates.
	GraphID string `toml:"graph_id"`

	// Width, Height is the overall widget size in pixels.
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`

	// Margins inset the plotting area within the widget.
	Margins Margins `toml:"margins"`

	// XMin, XMax, YMin, YMax are the declared axis limits.
	XMin float32 `toml:"xmin"`
	XMax float32 `toml:"xmax"`
	YMin float32 `toml:"ymin"`
	YMax float32 `toml:"ymax"`

	// XLabel, YLabel are optional axis titles, anchored at the far
	// end of each axis.
	XLabel string `toml:"xlabel"`
	YLabel string `toml:"ylabel"`

	// XTicks, YTicks are tick counts per axis; zero chooses a count
	// automatically from the pixel extent.
	XTicks int `toml:"xticks"`
	YTicks int `toml:"yticks"`

	// XTickFormat, YTickFormat are tick label format specifiers,
	// fmt verbs such as ".1f" or "d"; empty is compact automatic.
	XTickFormat string `toml:"xtick_format"`
	YTickFormat string `toml:"ytick_format"`

	// ZeroLine draws a dashed horizontal reference line at y=0 when
	// zero is inside the y domain.
	ZeroLine bool `toml:"zero_line"`

	// SortLinesByX sorts line data by x before building paths.
	SortLinesByX bool `toml:"sort_lines_by_x"`

	// FastMs, SlowMs are the two transition duration tiers in
	// milliseconds: fast for live data updates, slow for structural
	// enter/exit animations.
	FastMs int `toml:"fast_ms"`
	SlowMs int `toml:"slow_ms"`

	// LineColor, MarkerColor, AxisColor are the default stroke
	// colors for line marks, marker marks, and axis chrome.
	LineColor   string `toml:"line_color"`
	MarkerColor string `toml:"marker_color"`
	AxisColor   string `toml:"axis_color"`

	// LabelColor is the light/dark pair for tick labels and axis
	// titles, selected by DarkMode.
	LabelColor ColorPair `toml:"label_color"`

	// DarkMode selects the dark variant of LabelColor.
	DarkMode bool `toml:"dark_mode"`
}

// Defaults sets any zero-valued fields to their default values.
func (o *Options) Defaults() {
	if o.GraphID == "" {
		o.GraphID = "graph"
	}
	if o.Width <= 0 {
		o.Width = 600
	}
	if o.Height <= 0 {
		o.Height = 300
	}
	if o.Margins == (Margins{}) {
		o.Margins = Margins{Top: 20, Right: 20, Bottom: 45, Left: 60}
	}
	if o.XMin == 0 && o.XMax == 0 {
		o.XMax = 1
	}
	if o.YMin == 0 && o.YMax == 0 {
		o.YMax = 1
	}
	if o.FastMs <= 0 {
		o.FastMs = 50
	}
	if o.SlowMs <= 0 {
		o.SlowMs = 600
	}
	if o.LineColor == "" {
		o.LineColor = "#1e88e5"
	}
	if o.MarkerColor == "" {
		o.MarkerColor = "#e53935"
	}
	if o.AxisColor == "" {
		o.AxisColor = "#5f6368"
	}
	if o.LabelColor == (ColorPair{}) {
		o.LabelColor = ColorPair{Light: "#202124", Dark: "#e8eaed"}
	}
}

// Fast returns the fast transition duration tier.
func (o *Options) Fast() time.Duration { return time.Duration(o.FastMs) * time.Millisecond }

// Slow returns the slow transition duration tier.
func (o *Options) Slow() time.Duration { return time.Duration(o.SlowMs) * time.Millisecond }

// duration returns the slow tier if slow, else the fast tier.
func (o *Options) duration(slow bool) time.Duration {
	if slow {
		return o.Slow()
	}
	return o.Fast()
}

// Open loads options from the given TOML file.
func (o *Options) Open(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return toml.Unmarshal(data, o)
}

// Save writes the options to the given TOML file.
func (o *Options) Save(filename string) error {
	data, err := toml.Marshal(o)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0666)
}
