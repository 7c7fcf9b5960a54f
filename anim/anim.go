// Copyright (c) 2026, Sciviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim provides a time-stepped transition scheduler for
// visual interpolations. Transitions are advanced by explicit Step
// calls carrying a time delta, so the same code runs under a real
// frame ticker, a test clock, or a settle-everything loop.
package anim

import (
	"context"
	"slices"
	"time"
)

// Transition is one timed, eased interpolation. Update receives the
// eased progress and applies it to whatever visual state the
// transition owns; Done, if set, runs once after the transition
// reaches completion. A superseded transition is dropped without
// its Done running.
type Transition struct {

	// Duration is the active duration of the transition, after Delay.
	// A zero duration completes on the first step past the delay.
	Duration time.Duration

	// Delay postpones the start; Update is not called during the delay.
	Delay time.Duration

	// Ease is the easing applied to progress; nil means [Linear].
	Ease Easing

	// Update applies eased progress to the animated state.
	Update func(p float32)

	// Done runs once when the transition completes.
	Done func()

	elapsed time.Duration
}

// Scheduler advances a set of transitions, at most one per owner.
// Starting a transition for an owner that already has one replaces
// it: the newest request wins and the superseded transition simply
// stops where it is (its Done is not run). This is the whole
// cancellation model; there is no queueing.
//
// The scheduler is single-goroutine: Step and Start must be called
// from the same goroutine that mutates the animated state.
type Scheduler struct {
	active map[any]*Transition
	order  []any
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{active: make(map[any]*Transition)}
}

// Start begins the given transition for the given owner, replacing
// any transition the owner already has.
func (sc *Scheduler) Start(owner any, tr *Transition) {
	if tr.Ease == nil {
		tr.Ease = Linear
	}
	if _, ok := sc.active[owner]; !ok {
		sc.order = append(sc.order, owner)
	}
	sc.active[owner] = tr
}

// Stop drops the owner's transition, if any, without running Done.
func (sc *Scheduler) Stop(owner any) {
	if _, ok := sc.active[owner]; !ok {
		return
	}
	delete(sc.active, owner)
	sc.order = slices.DeleteFunc(sc.order, func(o any) bool { return o == owner })
}

// Active returns the number of transitions currently in flight.
func (sc *Scheduler) Active() int { return len(sc.active) }

// Step advances all transitions by the given time delta, in start
// order. Completed transitions are retired and their Done functions
// run; Done may start new transitions, which begin on the next Step.
func (sc *Scheduler) Step(dt time.Duration) {
	owners := slices.Clone(sc.order)
	for _, owner := range owners {
		tr := sc.active[owner]
		if tr == nil {
			continue
		}
		tr.elapsed += dt
		run := tr.elapsed - tr.Delay
		if run < 0 {
			continue
		}
		p := float32(1)
		if tr.Duration > 0 && run < tr.Duration {
			p = float32(run) / float32(tr.Duration)
		}
		tr.Update(tr.Ease(p))
		if p >= 1 {
			// retire unless it was replaced from inside Update
			if sc.active[owner] == tr {
				sc.Stop(owner)
			}
			if tr.Done != nil {
				tr.Done()
			}
		}
	}
}

// Settle runs every transition, including work chained from Done
// functions, to completion.
func (sc *Scheduler) Settle() {
	for i := 0; i < 10000 && len(sc.active) > 0; i++ {
		sc.Step(time.Second)
	}
}

// Run steps the scheduler from a real-time ticker until the context
// is done. A non-positive interval defaults to 60 steps per second.
func (sc *Scheduler) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Second / 60
	}
	tick := time.NewTicker(interval)
	defer tick.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-tick.C:
			sc.Step(now.Sub(last))
			last = now
		}
	}
}
