package touch

import "github.com/automoto/stardive/engine"

// Zones describes the screen regions reserved for the two touch controls.
// Bounds are re-read when a zone is consulted, so layout changes between
// contacts are picked up.
type Zones struct {
	Stick Bounds
	Shot  Bounds
}

// Normalizer routes raw input to the game boundary. Keys pass through
// unfiltered. Touch starts are routed by hit test: the shot zone maps to
// stateless, idempotent button levels, the stick zone is delegated to the
// stick machine, whose direction changes come back as stick signals.
//
// Touch support is evaluated once at construction. When absent, all touch
// wiring is skipped and Dispatch becomes a no-op.
type Normalizer struct {
	boundary engine.Boundary
	zones    Zones
	surface  *Target
	stick    *Stick
	touch    bool

	// contacts that began inside the shot zone, by host identifier. A
	// release is forwarded for these wherever the contact ends, so a finger
	// drifting off the button before lifting still releases it.
	shotContacts map[int64]struct{}
}

func NewNormalizer(boundary engine.Boundary, zones Zones, feedback Feedback, touchSupported bool) *Normalizer {
	n := &Normalizer{
		boundary: boundary,
		zones:    zones,
		touch:    touchSupported,
	}
	if !touchSupported {
		return n
	}

	n.surface = NewTarget()
	n.shotContacts = make(map[int64]struct{})
	n.stick = NewStick(n.surface, zones.Stick, feedback, func(d engine.Direction) {
		boundary.OnSignal(engine.StickSignal{Dir: d})
	})

	n.surface.Listen(Start, n.onStart)
	n.surface.Listen(End, n.onShotRelease)
	n.surface.Listen(Cancel, n.onShotRelease)
	return n
}

// TouchEnabled reports whether touch wiring is active.
func (n *Normalizer) TouchEnabled() bool {
	return n.touch
}

// Stick exposes the stick machine, mainly for state inspection.
func (n *Normalizer) Stick() *Stick {
	return n.stick
}

// Key forwards a raw key transition to the boundary, unfiltered.
func (n *Normalizer) Key(code string, pressed bool) {
	n.boundary.OnKey(code, pressed)
}

// Dispatch feeds one raw touch event through the normalizer. Events must
// arrive in host delivery order.
func (n *Normalizer) Dispatch(ev Event) {
	if !n.touch {
		return
	}
	n.surface.Dispatch(ev)
}

// onStart routes new contacts by the zone they start in. Shot-zone contacts
// produce a press level with no state machine behind it; stick-zone contacts
// are offered to the stick machine, which enforces single capture itself.
func (n *Normalizer) onStart(ev Event) {
	shot := n.zones.Shot()
	stick := n.zones.Stick()

	var stickPts []Point
	for _, p := range ev.Changed {
		switch {
		case shot.Contains(p.X, p.Y):
			n.shotContacts[p.ID] = struct{}{}
			n.boundary.OnSignal(engine.ButtonSignal{Pressed: true})
		case stick.Contains(p.X, p.Y):
			stickPts = append(stickPts, p)
		}
	}
	if len(stickPts) > 0 {
		n.stick.OnStart(Event{Kind: Start, Changed: stickPts})
	}
}

// onShotRelease forwards a release for every ending contact that began on
// the button, regardless of where it ended up.
func (n *Normalizer) onShotRelease(ev Event) {
	for _, p := range ev.Changed {
		if _, ok := n.shotContacts[p.ID]; !ok {
			continue
		}
		delete(n.shotContacts, p.ID)
		n.boundary.OnSignal(engine.ButtonSignal{Pressed: false})
	}
}
