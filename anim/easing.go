// Copyright (c) 2026, Sciviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

// Easing maps linear progress in [0,1] to eased progress. Eased
// values may leave [0,1] mid-flight (overshoot), but every easing
// maps 0 to 0 and 1 to 1.
type Easing func(p float32) float32

// Linear is the identity easing.
func Linear(p float32) float32 { return p }

// CubicInOut accelerates through the first half and decelerates
// through the second, for smooth positional transitions.
func CubicInOut(p float32) float32 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	q := -2*p + 2
	return 1 - q*q*q/2
}

// backS controls the amount of overshoot in the Back easings,
// about 10% past the target.
const backS = 1.70158

// BackOut overshoots slightly past the target before settling,
// used for marker enter animations.
func BackOut(p float32) float32 {
	q := p - 1
	return 1 + q*q*((backS+1)*q+backS)
}

// BackIn pulls slightly backward before accelerating to the target,
// the reverse of [BackOut], used for marker exit animations.
func BackIn(p float32) float32 {
	return p * p * ((backS+1)*p - backS)
}
