package systems

import (
	"runtime"
	"slices"

	cfg "github.com/automoto/stardive/config"
	"github.com/automoto/stardive/engine"
	"github.com/automoto/stardive/touch"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// touchCapable reports whether the host delivers touch contacts. Evaluated
// once at startup; ebiten exposes no runtime probe, so this keys off the
// platforms that actually synthesize touch events.
var touchCapable = runtime.GOOS == "js" || runtime.GOOS == "android" || runtime.GOOS == "ios"

// TouchCapable reports the startup touch-support probe.
func TouchCapable() bool {
	return touchCapable
}

// InputBridge owns the host-side input adapters: key polling, touch event
// synthesis from ebiten's per-frame contact state, and the normalizer in
// front of the game boundary.
type InputBridge struct {
	normalizer *touch.Normalizer

	keyDown map[ebiten.Key]bool
	active  map[ebiten.TouchID]struct{}

	// reusable slices to avoid per-frame allocations
	touchIDs []ebiten.TouchID
	justIDs  []ebiten.TouchID
}

// NewInputBridge wires the normalizer between the host and boundary using
// the configured zones and bindings.
func NewInputBridge(boundary engine.Boundary, feedback touch.Feedback) *InputBridge {
	zones := touch.Zones{
		Stick: func() touch.Rect { return cfg.Input.StickZone },
		Shot:  func() touch.Rect { return cfg.Input.ShotZone },
	}
	return &InputBridge{
		normalizer: touch.NewNormalizer(boundary, zones, feedback, touchCapable),
		keyDown:    make(map[ebiten.Key]bool),
		active:     make(map[ebiten.TouchID]struct{}),
	}
}

// Normalizer exposes the wired normalizer.
func (b *InputBridge) Normalizer() *touch.Normalizer {
	return b.normalizer
}

// Pump polls ebiten once and replays the per-frame deltas as ordered raw
// events. Call once per ebiten update, before the frame callback runs.
func (b *InputBridge) Pump() {
	for _, kb := range cfg.Input.Keys {
		down := ebiten.IsKeyPressed(kb.Key)
		if down == b.keyDown[kb.Key] {
			continue
		}
		b.keyDown[kb.Key] = down
		b.normalizer.Key(kb.Code, down)
	}

	if !touchCapable {
		return
	}

	// New contacts first, then moves, then releases: matches the order a
	// browser would deliver start/move/end for one frame.
	b.justIDs = inpututil.AppendJustPressedTouchIDs(b.justIDs[:0])
	for _, id := range b.justIDs {
		x, y := ebiten.TouchPosition(id)
		b.active[id] = struct{}{}
		b.normalizer.Dispatch(touch.Event{Kind: touch.Start, Changed: []touch.Point{
			{ID: int64(id), X: float64(x), Y: float64(y)},
		}})
	}

	b.touchIDs = ebiten.AppendTouchIDs(b.touchIDs[:0])
	for _, id := range b.touchIDs {
		if slices.Contains(b.justIDs, id) {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		// Changed-touches model: stationary contacts produce no moves.
		if px, py := inpututil.TouchPositionInPreviousTick(id); x == px && y == py {
			continue
		}
		b.normalizer.Dispatch(touch.Event{Kind: touch.Move, Changed: []touch.Point{
			{ID: int64(id), X: float64(x), Y: float64(y)},
		}})
	}

	for id := range b.active {
		if !inpututil.IsTouchJustReleased(id) {
			continue
		}
		x, y := inpututil.TouchPositionInPreviousTick(id)
		delete(b.active, id)
		b.normalizer.Dispatch(touch.Event{Kind: touch.End, Changed: []touch.Point{
			{ID: int64(id), X: float64(x), Y: float64(y)},
		}})
	}
}
