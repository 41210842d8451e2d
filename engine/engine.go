// Package engine defines the contract between the input/timing core and the
// game simulation it drives. The core never interprets input semantically; it
// delivers a small discrete protocol (key transitions, button levels, stick
// directions) plus a regular step/draw cadence, and the game decides what the
// signals mean.
package engine

// Direction is the tri-state horizontal direction of the virtual stick.
type Direction int

const (
	DirLeft    Direction = -1
	DirNeutral Direction = 0
	DirRight   Direction = 1
)

// Signal is one discrete input message for the game boundary. Exactly two
// kinds exist: ButtonSignal and StickSignal. Signals arrive in the order the
// host raised the underlying events.
type Signal interface {
	isSignal()
}

// ButtonSignal reports the on-screen shot button level. Press and release are
// independent and idempotent; delivering "pressed" while already pressed must
// be harmless to the receiver.
type ButtonSignal struct {
	Pressed bool
}

// StickSignal reports a change of the virtual stick direction.
type StickSignal struct {
	Dir Direction
}

func (ButtonSignal) isSignal() {}
func (StickSignal) isSignal()  {}

// Boundary is the game side of the core. Step and Draw are assumed
// infallible; all calls happen on the host's single event-loop thread.
type Boundary interface {
	// OnKey receives every raw key transition, unfiltered.
	OnKey(code string, pressed bool)
	// OnSignal receives button and stick signals in delivery order.
	OnSignal(sig Signal)
	// Step advances the simulation by one fixed tick.
	Step()
	// Draw presents the current simulation state. At most one Draw follows
	// a burst of Steps.
	Draw()
}

// Clock supplies monotonic, non-decreasing milliseconds from the host.
type Clock interface {
	NowMillis() float64
}

// Frames schedules one callback for the host's next display refresh. The
// refresh cadence is not guaranteed to be periodic; the callback receives the
// clock sample for the refresh it runs in.
type Frames interface {
	ScheduleNextFrame(cb func(now float64))
}

// Store is the host's string key-value persistence.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}
