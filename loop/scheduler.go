// Package loop keeps simulation time synchronized with wall-clock time on top
// of the host's variable frame-callback cadence.
package loop

import (
	"math"

	"github.com/automoto/stardive/engine"
)

// Scheduler issues fixed-size simulation steps from irregular frame
// callbacks. Each callback it computes how many whole steps fit into the
// elapsed wall-clock time, runs them, runs a single draw, and reschedules
// itself. A stalled host (backgrounded window) resumes cleanly: the budget
// self-corrects on the next sample instead of assuming continuous calling.
type Scheduler struct {
	boundary engine.Boundary
	frames   engine.Frames

	prev       float64 // last consumed clock sample, advances in whole steps
	interval   float64 // target step interval, milliseconds
	maxCatchUp int     // cap on steps issued per callback
	margin     float64 // absorbs callbacks that fire slightly early
}

// New returns a scheduler driving boundary at one step per intervalMs,
// issuing at most maxCatchUp steps per frame callback.
func New(boundary engine.Boundary, frames engine.Frames, intervalMs float64, maxCatchUp int, marginMs float64) *Scheduler {
	return &Scheduler{
		boundary:   boundary,
		frames:     frames,
		interval:   intervalMs,
		maxCatchUp: maxCatchUp,
		margin:     marginMs,
	}
}

// Start primes the tick budget with the current clock sample and schedules
// the first frame callback.
func (s *Scheduler) Start(now float64) {
	s.prev = now
	s.frames.ScheduleNextFrame(s.OnFrame)
}

// OnFrame consumes one frame callback: zero or more steps, at most one draw,
// then an unconditional reschedule.
func (s *Scheduler) OnFrame(now float64) {
	elapsed := now - s.prev + s.margin
	n := int(math.Floor(elapsed / s.interval))

	switch {
	case n <= 0:
		// Host is firing faster than the target rate.
	case n <= s.maxCatchUp:
		// Advance by exact multiples so rounding error never accumulates.
		s.prev += float64(n) * s.interval
		s.run(n)
	default:
		// Sustained stall. Clamp the burst and abandon catch-up, residual
		// sub-step time included, so a long stall cannot snowball.
		s.prev = now
		s.run(s.maxCatchUp)
	}

	s.frames.ScheduleNextFrame(s.OnFrame)
}

// Prev reports the last consumed clock sample.
func (s *Scheduler) Prev() float64 {
	return s.prev
}

func (s *Scheduler) run(n int) {
	for i := 0; i < n; i++ {
		s.boundary.Step()
	}
	s.boundary.Draw()
}
