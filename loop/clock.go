package loop

import "time"

// SystemClock reads monotonic milliseconds from the runtime clock, measured
// from the moment the clock was created.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) NowMillis() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}

// FrameQueue is a single-slot frame scheduler. The host drains it once per
// display refresh; scheduling overwrites any previously queued callback.
type FrameQueue struct {
	cb func(now float64)
}

func (q *FrameQueue) ScheduleNextFrame(cb func(now float64)) {
	q.cb = cb
}

// RunPending invokes the queued callback, if any, with the given clock
// sample. The slot is cleared first so the callback may reschedule itself.
func (q *FrameQueue) RunPending(now float64) {
	cb := q.cb
	if cb == nil {
		return
	}
	q.cb = nil
	cb(now)
}
