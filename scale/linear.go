// Copyright (c) 2026, Sciviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale provides linear mappings from data coordinates to
// pixel coordinates, with nice tick value generation and tick label
// formatting.
package scale

// Linear maps the data interval [Min, Max] linearly onto the pixel
// interval [0, Extent], or [Extent, 0] when Inverted (the usual case
// for a vertical axis, where larger data values are higher on screen
// and thus at smaller pixel coordinates).
//
// Min and Max are the current effective domain: [Nice] updates them
// in place, and clients should query them rather than the originally
// configured limits. Dependents should hold a *Linear so that
// [Linear.Reconfigure] on resize updates their mapping without any
// re-binding.
type Linear struct {
	Min, Max float32

	// Extent is the pixel length of the output range.
	Extent float32

	// Inverted maps Max to pixel 0 and Min to Extent.
	Inverted bool
}

// NewLinear returns a scale mapping [min, max] onto [0, extent].
func NewLinear(min, max, extent float32) *Linear {
	return &Linear{Min: min, Max: max, Extent: extent}
}

// NewInverted returns a scale mapping [min, max] onto [extent, 0],
// for vertical axes.
func NewInverted(min, max, extent float32) *Linear {
	return &Linear{Min: min, Max: max, Extent: extent, Inverted: true}
}

// Reconfigure updates the domain and pixel extent in place,
// preserving the identity of the scale for anything holding it.
func (ls *Linear) Reconfigure(min, max, extent float32) {
	ls.Min = min
	ls.Max = max
	ls.Extent = extent
}

// Span returns the width of the current domain.
func (ls *Linear) Span() float32 { return ls.Max - ls.Min }

// Map returns the pixel coordinate for the given data value.
// Values outside the domain extrapolate linearly. A zero-span domain
// maps everything to the low end of the range.
func (ls *Linear) Map(v float32) float32 {
	span := ls.Span()
	if span == 0 {
		if ls.Inverted {
			return ls.Extent
		}
		return 0
	}
	t := (v - ls.Min) / span
	if ls.Inverted {
		t = 1 - t
	}
	return t * ls.Extent
}

// Unmap returns the data value for the given pixel coordinate,
// the inverse of [Linear.Map].
func (ls *Linear) Unmap(px float32) float32 {
	if ls.Extent == 0 {
		return ls.Min
	}
	t := px / ls.Extent
	if ls.Inverted {
		t = 1 - t
	}
	return ls.Min + t*ls.Span()
}
