package touch

import "github.com/automoto/stardive/engine"

// Feedback receives the stick knob's positional updates for on-screen
// rendering. Coordinates are already clamped into the stick zone.
type Feedback interface {
	Show(x, y float64)
	Move(x, y float64)
	Hide()
}

// NopFeedback discards all positional updates.
type NopFeedback struct{}

func (NopFeedback) Show(x, y float64) {}
func (NopFeedback) Move(x, y float64) {}
func (NopFeedback) Hide()             {}

// Bounds supplies the stick zone's current bounding geometry. It is sampled
// once per contact acquisition, not per move.
type Bounds func() Rect

// Stick is the virtual stick state machine. It tracks at most one touch
// contact at a time: the first contact to start inside the stick zone is
// captured for its whole lifecycle, and every event carrying a different
// contact identifier is ignored until that contact is released.
type Stick struct {
	surface  *Target
	bounds   Bounds
	feedback Feedback
	emit     func(engine.Direction)

	active     bool
	contactID  int64
	origin     Rect
	leftBound  float64
	rightBound float64
	dir        engine.Direction

	// move/end/cancel registrations, scoped to one tracked contact
	scoped []Listener
}

// NewStick returns an idle stick machine. Direction changes are reported
// through emit; move/end/cancel listeners are installed on surface only while
// a contact is tracked.
func NewStick(surface *Target, bounds Bounds, feedback Feedback, emit func(engine.Direction)) *Stick {
	return &Stick{
		surface:  surface,
		bounds:   bounds,
		feedback: feedback,
		emit:     emit,
	}
}

// Active reports whether a contact is currently tracked.
func (s *Stick) Active() bool {
	return s.active
}

// Direction reports the current stick direction.
func (s *Stick) Direction() engine.Direction {
	return s.dir
}

// OnStart offers a touch-start to the machine. While a contact is tracked,
// further starts are ignored (first-contact-wins capture). A start carrying
// no contact points is a no-op.
func (s *Stick) OnStart(ev Event) {
	if s.active || len(ev.Changed) == 0 {
		return
	}
	p := ev.Changed[0]

	s.contactID = p.ID
	s.origin = s.bounds()
	s.leftBound = s.origin.X + s.origin.W/3
	s.rightBound = s.origin.X + s.origin.W*2/3
	s.dir = engine.DirNeutral
	s.active = true

	s.scoped = append(s.scoped[:0],
		s.surface.Listen(Move, s.onMove),
		s.surface.Listen(End, s.onRelease),
		s.surface.Listen(Cancel, s.onRelease),
	)

	x, y := s.origin.Clamp(p.X, p.Y)
	s.feedback.Show(x, y)
	if d := s.direction(x); d != engine.DirNeutral {
		s.dir = d
		s.emit(d)
	}
}

func (s *Stick) onMove(ev Event) {
	p, ok := s.tracked(ev)
	if !ok {
		return
	}
	x, y := s.origin.Clamp(p.X, p.Y)
	s.feedback.Move(x, y)
	if d := s.direction(x); d != s.dir {
		s.dir = d
		s.emit(d)
	}
}

func (s *Stick) onRelease(ev Event) {
	if _, ok := s.tracked(ev); !ok {
		return
	}
	s.feedback.Hide()
	s.emit(engine.DirNeutral)
	for _, l := range s.scoped {
		s.surface.Remove(l)
	}
	s.scoped = s.scoped[:0]
	s.dir = engine.DirNeutral
	s.active = false
}

// tracked scans the event's changed contacts for the captured identifier.
func (s *Stick) tracked(ev Event) (Point, bool) {
	if !s.active {
		return Point{}, false
	}
	for _, p := range ev.Changed {
		if p.ID == s.contactID {
			return p, true
		}
	}
	return Point{}, false
}

// direction resolves a clamped X coordinate against the thirds thresholds.
// Comparison is inclusive so a contact exactly on a boundary always resolves
// to a direction.
func (s *Stick) direction(x float64) engine.Direction {
	switch {
	case x <= s.leftBound:
		return engine.DirLeft
	case x >= s.rightBound:
		return engine.DirRight
	default:
		return engine.DirNeutral
	}
}
