// Copyright (c) 2026, Sciviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// niceSteps are the permitted tick step mantissas, in units of the
// decade magnitude of the raw step.
var niceSteps = []float32{1, 2, 2.5, 5, 10}

// niceStep returns the smallest nice step >= raw.
func niceStep(raw float32) float32 {
	if raw <= 0 || math32.IsNaN(raw) || math32.IsInf(raw, 0) {
		return 1
	}
	mag := math32.Pow(10, math32.Floor(math32.Log10(raw)))
	norm := raw / mag
	for _, s := range niceSteps {
		if norm <= s {
			return s * mag
		}
	}
	return 10 * mag
}

// AutoCount returns a tick count appropriate for the given pixel
// extent, about one tick per 80 pixels with a minimum of two.
func AutoCount(extent float32) int {
	n := int(extent / 80)
	if n < 2 {
		n = 2
	}
	return n
}

// Ticks returns approximately n nice tick values within the current
// domain, in increasing order. If n <= 0, the count is chosen
// automatically from the pixel extent via [AutoCount].
func (ls *Linear) Ticks(n int) []float32 {
	if n <= 0 {
		n = AutoCount(ls.Extent)
	}
	span := ls.Span()
	if span <= 0 || math32.IsNaN(span) || math32.IsInf(span, 0) {
		return []float32{ls.Min}
	}
	step := niceStep(span / float32(n))
	first := math32.Ceil(ls.Min/step) * step
	var ticks []float32
	for i := 0; ; i++ {
		v := first + step*float32(i)
		if v > ls.Max+step*1e-4 {
			break
		}
		ticks = append(ticks, v)
	}
	return ticks
}

// Nice expands the domain outward so Min and Max fall on nice step
// multiples for approximately n ticks (auto when n <= 0).
func (ls *Linear) Nice(n int) {
	if n <= 0 {
		n = AutoCount(ls.Extent)
	}
	span := ls.Span()
	if span <= 0 || math32.IsNaN(span) || math32.IsInf(span, 0) {
		return
	}
	step := niceStep(span / float32(n))
	ls.Min = math32.Floor(ls.Min/step) * step
	ls.Max = math32.Ceil(ls.Max/step) * step
}

// Format formats a tick value using the given format specifier.
// An empty specifier uses compact %g formatting. A specifier
// containing the d verb formats the rounded integer value. Other
// specifiers are fmt verbs for a float32 argument; a leading % may
// be omitted, so ".2f" and "%.2f" are equivalent.
func Format(v float32, spec string) string {
	if spec == "" {
		return fmt.Sprintf("%g", v)
	}
	if !strings.HasPrefix(spec, "%") {
		spec = "%" + spec
	}
	if strings.Contains(spec, "d") {
		return fmt.Sprintf(spec, int(math32.Floor(v+0.5)))
	}
	return fmt.Sprintf(spec, v)
}
