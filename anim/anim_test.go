// Copyright (c) 2026, Sciviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEasingEndpoints(t *testing.T) {
	for _, e := range []Easing{Linear, CubicInOut, BackOut, BackIn} {
		assert.InDelta(t, 0, e(0), 1e-5)
		assert.InDelta(t, 1, e(1), 1e-5)
	}
}

func TestBackOutOvershoots(t *testing.T) {
	over := false
	for p := float32(0); p <= 1; p += 0.01 {
		if BackOut(p) > 1 {
			over = true
		}
	}
	assert.True(t, over, "BackOut should pass beyond the target mid-flight")
}

func TestStepProgress(t *testing.T) {
	sc := NewScheduler()
	var got []float32
	sc.Start("x", &Transition{
		Duration: 100 * time.Millisecond,
		Update:   func(p float32) { got = append(got, p) },
	})
	sc.Step(25 * time.Millisecond)
	sc.Step(25 * time.Millisecond)
	sc.Step(100 * time.Millisecond)
	assert.Equal(t, []float32{0.25, 0.5, 1}, got)
	assert.Equal(t, 0, sc.Active())
}

func TestDelay(t *testing.T) {
	sc := NewScheduler()
	calls := 0
	sc.Start("x", &Transition{
		Duration: 50 * time.Millisecond,
		Delay:    100 * time.Millisecond,
		Update:   func(p float32) { calls++ },
	})
	sc.Step(60 * time.Millisecond)
	assert.Equal(t, 0, calls, "no updates during the delay")
	sc.Step(60 * time.Millisecond)
	assert.Equal(t, 1, calls)
	sc.Settle()
	assert.Equal(t, 0, sc.Active())
}

func TestInterruptAndReplace(t *testing.T) {
	sc := NewScheduler()
	firstDone := false
	var last float32
	sc.Start("x", &Transition{
		Duration: 100 * time.Millisecond,
		Update:   func(p float32) { last = p },
		Done:     func() { firstDone = true },
	})
	sc.Step(50 * time.Millisecond)
	assert.Equal(t, float32(0.5), last)

	// newest wins; superseded transition never completes
	sc.Start("x", &Transition{
		Duration: 100 * time.Millisecond,
		Update:   func(p float32) { last = 10 + p },
	})
	assert.Equal(t, 1, sc.Active())
	sc.Settle()
	assert.False(t, firstDone)
	assert.Equal(t, float32(11), last)
}

func TestZeroDuration(t *testing.T) {
	sc := NewScheduler()
	var last float32 = -1
	done := false
	sc.Start("x", &Transition{
		Update: func(p float32) { last = p },
		Done:   func() { done = true },
	})
	sc.Step(time.Millisecond)
	assert.Equal(t, float32(1), last)
	assert.True(t, done)
	assert.Equal(t, 0, sc.Active())
}

func TestDoneChains(t *testing.T) {
	sc := NewScheduler()
	var order []string
	sc.Start("a", &Transition{
		Duration: 10 * time.Millisecond,
		Update:   func(p float32) {},
		Done: func() {
			order = append(order, "a")
			sc.Start("b", &Transition{
				Duration: 10 * time.Millisecond,
				Update:   func(p float32) {},
				Done:     func() { order = append(order, "b") },
			})
		},
	})
	sc.Settle()
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestStop(t *testing.T) {
	sc := NewScheduler()
	done := false
	sc.Start("x", &Transition{
		Duration: 10 * time.Millisecond,
		Update:   func(p float32) {},
		Done:     func() { done = true },
	})
	sc.Stop("x")
	sc.Settle()
	assert.False(t, done)
	assert.Equal(t, 0, sc.Active())
}
