// Copyright (c) 2026, Sciviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/sciviz/lineplot/anim"
)

// blendHex blends two hex colors in Lab space by t in [0,1],
// returning the first color unchanged if either fails to parse.
func blendHex(a, b string, t float32) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	return ca.BlendLab(cb, float64(t)).Clamped().Hex()
}

// lightenHex blends a hex color toward white by t, used for the
// washed-out start color of entering marks.
func lightenHex(h string, t float32) string {
	return blendHex(h, "#ffffff", t)
}

// enterLighten is how far entering marks start toward white.
const enterLighten = 0.7

// fadeColor animates the color in slot from its current value to the
// target. It is keyed by the mark rather than the element, so it runs
// alongside the mark's geometry tween and survives an interrupting
// re-bind.
func (g *Graph) fadeColor(m *Mark, slot *string, to string, dur, delay time.Duration) {
	from := *slot
	g.Anim.Start(m, &anim.Transition{
		Duration: dur,
		Delay:    delay,
		Ease:     anim.Linear,
		Update: func(p float32) {
			*slot = blendHex(from, to, p)
		},
	})
}
