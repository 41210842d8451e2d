// Package touch converts raw pointer/touch events into the boundary's
// discrete protocol. It owns the virtual stick state machine and the
// listener-subscription model its contact lifecycle is scoped to.
package touch

// Kind enumerates the raw touch event kinds delivered by the host.
type Kind int

const (
	Start Kind = iota
	Move
	End
	Cancel
)

// Point is one contact in an event's changed-touches list. The ID is an
// opaque host identifier, valid only while the contact is down.
type Point struct {
	ID   int64
	X, Y float64
}

// Event is one raw touch event. Changed lists only the contacts that changed
// in this event, never the full set of active contacts.
type Event struct {
	Kind    Kind
	Changed []Point
}

// Rect is an interaction zone's bounding geometry.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Clamp saturates a position at the rect's edges.
func (r Rect) Clamp(x, y float64) (float64, float64) {
	if x < r.X {
		x = r.X
	} else if x > r.X+r.W {
		x = r.X + r.W
	}
	if y < r.Y {
		y = r.Y
	} else if y > r.Y+r.H {
		y = r.Y + r.H
	}
	return x, y
}

// CenterX returns the horizontal midpoint of the rect.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// Handler consumes one event.
type Handler func(Event)

// Listener identifies one registration so it can be removed explicitly.
// Listener lifetime is the caller's responsibility; the stick machine ties
// its move/end/cancel registrations to the lifetime of one tracked contact.
type Listener int

type registration struct {
	id   Listener
	kind Kind
	fn   Handler
}

// Target dispatches events to handlers in registration order. Handlers may
// remove themselves or others during dispatch; a handler removed mid-dispatch
// no longer receives the event being dispatched.
type Target struct {
	nextID   Listener
	handlers []registration
	scratch  []registration
}

func NewTarget() *Target {
	return &Target{}
}

// Listen registers fn for events of the given kind.
func (t *Target) Listen(kind Kind, fn Handler) Listener {
	t.nextID++
	t.handlers = append(t.handlers, registration{id: t.nextID, kind: kind, fn: fn})
	return t.nextID
}

// Remove deregisters a listener. Removing an unknown listener is a no-op.
func (t *Target) Remove(id Listener) {
	for i, reg := range t.handlers {
		if reg.id == id {
			t.handlers = append(t.handlers[:i], t.handlers[i+1:]...)
			return
		}
	}
}

// Dispatch delivers ev to every matching handler registered at the time of
// the call, in registration order.
func (t *Target) Dispatch(ev Event) {
	t.scratch = append(t.scratch[:0], t.handlers...)
	for _, reg := range t.scratch {
		if reg.kind != ev.Kind {
			continue
		}
		if !t.registered(reg.id) {
			continue
		}
		reg.fn(ev)
	}
}

func (t *Target) registered(id Listener) bool {
	for _, reg := range t.handlers {
		if reg.id == id {
			return true
		}
	}
	return false
}
