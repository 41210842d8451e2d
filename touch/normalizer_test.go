package touch

import (
	"testing"

	"github.com/automoto/stardive/engine"
)

// recordBoundary captures everything forwarded to the game boundary.
type recordBoundary struct {
	keys    []string
	pressed []bool
	signals []engine.Signal
}

func (b *recordBoundary) OnKey(code string, pressed bool) {
	b.keys = append(b.keys, code)
	b.pressed = append(b.pressed, pressed)
}

func (b *recordBoundary) OnSignal(sig engine.Signal) {
	b.signals = append(b.signals, sig)
}

func (b *recordBoundary) Step() {}
func (b *recordBoundary) Draw() {}

func testZones() Zones {
	return Zones{
		Stick: func() Rect { return Rect{X: 0, Y: 400, W: 120, H: 80} },
		Shot:  func() Rect { return Rect{X: 160, Y: 400, W: 120, H: 80} },
	}
}

func TestKeyPassthrough(t *testing.T) {
	b := &recordBoundary{}
	n := NewNormalizer(b, testZones(), NopFeedback{}, true)

	n.Key("ArrowLeft", true)
	n.Key("ArrowLeft", false)
	n.Key("Space", true)

	if len(b.keys) != 3 {
		t.Fatalf("keys = %v, want all transitions forwarded", b.keys)
	}
	if b.keys[0] != "ArrowLeft" || b.pressed[0] != true {
		t.Errorf("first key = %s/%v, want ArrowLeft/true", b.keys[0], b.pressed[0])
	}
	if b.keys[1] != "ArrowLeft" || b.pressed[1] != false {
		t.Errorf("second key = %s/%v, want ArrowLeft/false", b.keys[1], b.pressed[1])
	}
}

func TestShotZoneLevels(t *testing.T) {
	b := &recordBoundary{}
	n := NewNormalizer(b, testZones(), NopFeedback{}, true)

	n.Dispatch(Event{Kind: Start, Changed: []Point{{ID: 1, X: 200, Y: 430}}})
	n.Dispatch(Event{Kind: End, Changed: []Point{{ID: 1, X: 200, Y: 430}}})

	want := []engine.Signal{
		engine.ButtonSignal{Pressed: true},
		engine.ButtonSignal{Pressed: false},
	}
	if len(b.signals) != len(want) {
		t.Fatalf("signals = %v, want %v", b.signals, want)
	}
	for i := range want {
		if b.signals[i] != want[i] {
			t.Fatalf("signals = %v, want %v", b.signals, want)
		}
	}
}

func TestShotPressIsIdempotent(t *testing.T) {
	b := &recordBoundary{}
	n := NewNormalizer(b, testZones(), NopFeedback{}, true)

	// Two fingers on the button: two independent press levels, no state
	// machine between them.
	n.Dispatch(Event{Kind: Start, Changed: []Point{{ID: 1, X: 200, Y: 430}}})
	n.Dispatch(Event{Kind: Start, Changed: []Point{{ID: 2, X: 210, Y: 430}}})

	for _, sig := range b.signals {
		btn, ok := sig.(engine.ButtonSignal)
		if !ok || !btn.Pressed {
			t.Fatalf("signals = %v, want only pressed button levels", b.signals)
		}
	}
	if len(b.signals) != 2 {
		t.Fatalf("signals = %v, want two harmless presses", b.signals)
	}
}

func TestShotReleaseAfterDriftOut(t *testing.T) {
	b := &recordBoundary{}
	n := NewNormalizer(b, testZones(), NopFeedback{}, true)

	// Press the button, slide off it, lift outside both zones. The release
	// must still arrive; the pad would otherwise stay latched.
	n.Dispatch(Event{Kind: Start, Changed: []Point{{ID: 1, X: 200, Y: 430}}})
	n.Dispatch(Event{Kind: Move, Changed: []Point{{ID: 1, X: 140, Y: 100}}})
	n.Dispatch(Event{Kind: End, Changed: []Point{{ID: 1, X: 140, Y: 100}}})

	want := []engine.Signal{
		engine.ButtonSignal{Pressed: true},
		engine.ButtonSignal{Pressed: false},
	}
	if len(b.signals) != len(want) {
		t.Fatalf("signals = %v, want %v", b.signals, want)
	}
	for i := range want {
		if b.signals[i] != want[i] {
			t.Fatalf("signals = %v, want %v", b.signals, want)
		}
	}
}

func TestShotReleaseOnlyForButtonContacts(t *testing.T) {
	b := &recordBoundary{}
	n := NewNormalizer(b, testZones(), NopFeedback{}, true)

	// A contact that began outside every zone ends on the button: it never
	// pressed it, so it must not release it either.
	n.Dispatch(Event{Kind: Start, Changed: []Point{{ID: 6, X: 140, Y: 100}}})
	n.Dispatch(Event{Kind: End, Changed: []Point{{ID: 6, X: 200, Y: 430}}})

	if len(b.signals) != 0 {
		t.Errorf("signals = %v, want none", b.signals)
	}
}

func TestShotCancelReleasesButton(t *testing.T) {
	b := &recordBoundary{}
	n := NewNormalizer(b, testZones(), NopFeedback{}, true)

	n.Dispatch(Event{Kind: Start, Changed: []Point{{ID: 4, X: 200, Y: 430}}})
	n.Dispatch(Event{Kind: Cancel, Changed: []Point{{ID: 4, X: 30, Y: 30}}})

	if len(b.signals) != 2 {
		t.Fatalf("signals = %v, want press then release", b.signals)
	}
	if b.signals[1] != (engine.ButtonSignal{Pressed: false}) {
		t.Errorf("second signal = %v, want release", b.signals[1])
	}
}

func TestStickZoneDelegation(t *testing.T) {
	b := &recordBoundary{}
	n := NewNormalizer(b, testZones(), NopFeedback{}, true)

	n.Dispatch(Event{Kind: Start, Changed: []Point{{ID: 3, X: 15, Y: 430}}})
	n.Dispatch(Event{Kind: Move, Changed: []Point{{ID: 3, X: 105, Y: 430}}})
	n.Dispatch(Event{Kind: End, Changed: []Point{{ID: 3, X: 105, Y: 430}}})

	want := []engine.Signal{
		engine.StickSignal{Dir: engine.DirLeft},
		engine.StickSignal{Dir: engine.DirRight},
		engine.StickSignal{Dir: engine.DirNeutral},
	}
	if len(b.signals) != len(want) {
		t.Fatalf("signals = %v, want %v", b.signals, want)
	}
	for i := range want {
		if b.signals[i] != want[i] {
			t.Fatalf("signals = %v, want %v", b.signals, want)
		}
	}
}

func TestMixedZonesPreserveDeliveryOrder(t *testing.T) {
	b := &recordBoundary{}
	n := NewNormalizer(b, testZones(), NopFeedback{}, true)

	n.Dispatch(Event{Kind: Start, Changed: []Point{{ID: 1, X: 15, Y: 430}}})
	n.Dispatch(Event{Kind: Start, Changed: []Point{{ID: 2, X: 200, Y: 430}}})
	n.Dispatch(Event{Kind: End, Changed: []Point{{ID: 2, X: 200, Y: 430}}})
	n.Dispatch(Event{Kind: End, Changed: []Point{{ID: 1, X: 15, Y: 430}}})

	want := []engine.Signal{
		engine.StickSignal{Dir: engine.DirLeft},
		engine.ButtonSignal{Pressed: true},
		engine.ButtonSignal{Pressed: false},
		engine.StickSignal{Dir: engine.DirNeutral},
	}
	if len(b.signals) != len(want) {
		t.Fatalf("signals = %v, want %v", b.signals, want)
	}
	for i := range want {
		if b.signals[i] != want[i] {
			t.Fatalf("signals = %v, want %v", b.signals, want)
		}
	}
}

func TestOutsideZonesIgnored(t *testing.T) {
	b := &recordBoundary{}
	n := NewNormalizer(b, testZones(), NopFeedback{}, true)

	n.Dispatch(Event{Kind: Start, Changed: []Point{{ID: 9, X: 140, Y: 100}}})
	if len(b.signals) != 0 {
		t.Errorf("signals = %v, want none for a contact outside both zones", b.signals)
	}
}

func TestTouchUnsupportedSkipsWiring(t *testing.T) {
	b := &recordBoundary{}
	n := NewNormalizer(b, testZones(), NopFeedback{}, false)

	if n.TouchEnabled() {
		t.Error("touch reported enabled without host support")
	}
	n.Dispatch(Event{Kind: Start, Changed: []Point{{ID: 1, X: 200, Y: 430}}})
	if len(b.signals) != 0 {
		t.Errorf("signals = %v, want none when touch is unsupported", b.signals)
	}

	// Keys still work.
	n.Key("Space", true)
	if len(b.keys) != 1 {
		t.Errorf("keys = %v, want key input unaffected", b.keys)
	}
}
