package loop

import (
	"math"
	"testing"

	"github.com/automoto/stardive/engine"
)

// scriptBoundary records the order of step/draw calls.
type scriptBoundary struct {
	calls []string
}

func (b *scriptBoundary) OnKey(code string, pressed bool) {}
func (b *scriptBoundary) OnSignal(sig engine.Signal)      {}

func (b *scriptBoundary) Step() { b.calls = append(b.calls, "step") }
func (b *scriptBoundary) Draw() { b.calls = append(b.calls, "draw") }

func (b *scriptBoundary) steps() int {
	n := 0
	for _, c := range b.calls {
		if c == "step" {
			n++
		}
	}
	return n
}

func (b *scriptBoundary) draws() int {
	return len(b.calls) - b.steps()
}

func TestCatchUpWithinCap(t *testing.T) {
	b := &scriptBoundary{}
	q := &FrameQueue{}
	s := New(b, q, 16.67, 5, 0.1)

	s.Start(0)
	q.RunPending(50)

	want := []string{"step", "step", "step", "draw"}
	if len(b.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", b.calls, want)
	}
	for i := range want {
		if b.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", b.calls, want)
		}
	}
	if math.Abs(s.Prev()-50.01) > 1e-9 {
		t.Errorf("prev = %v, want 50.01", s.Prev())
	}
}

func TestFastCallbacksSkipStepping(t *testing.T) {
	b := &scriptBoundary{}
	q := &FrameQueue{}
	s := New(b, q, 16.67, 5, 0.1)

	s.Start(0)
	for _, now := range []float64{4, 8, 12, 16} {
		q.RunPending(now)
	}

	if len(b.calls) != 0 {
		t.Errorf("calls = %v, want none before a full interval elapses", b.calls)
	}
	if s.Prev() != 0 {
		t.Errorf("prev = %v, want 0", s.Prev())
	}
}

func TestClampAbandonsCatchUp(t *testing.T) {
	b := &scriptBoundary{}
	q := &FrameQueue{}
	s := New(b, q, 16.67, 5, 0.1)

	s.Start(0)
	q.RunPending(5000)

	if got := b.steps(); got != 5 {
		t.Errorf("steps = %d, want exactly the catch-up cap", got)
	}
	if got := b.draws(); got != 1 {
		t.Errorf("draws = %d, want 1", got)
	}
	if s.Prev() != 5000 {
		t.Errorf("prev = %v, want reset to the stall sample", s.Prev())
	}
}

func TestBudgetNeverMovesBackward(t *testing.T) {
	const interval = 16.67

	b := &scriptBoundary{}
	q := &FrameQueue{}
	s := New(b, q, interval, 5, 0.1)

	samples := []float64{3, 17, 17, 40, 41, 120, 700, 712, 731}
	s.Start(0)

	prev := s.Prev()
	for _, now := range samples {
		before := len(b.calls)
		q.RunPending(now)

		if s.Prev() < prev {
			t.Fatalf("prev moved backward: %v -> %v at now=%v", prev, s.Prev(), now)
		}
		advance := s.Prev() - prev
		if advance > 0 && s.Prev() != now {
			// Non-clamp advances must be whole multiples of the interval.
			k := math.Round(advance / interval)
			if math.Abs(advance-k*interval) > 1e-9 {
				t.Fatalf("advance %v at now=%v is not a multiple of %v", advance, now, interval)
			}
		}

		stepCount := 0
		for _, c := range b.calls[before:] {
			if c == "step" {
				stepCount++
			}
		}
		if stepCount > 5 {
			t.Fatalf("%d steps in one callback at now=%v, cap is 5", stepCount, now)
		}
		prev = s.Prev()
	}
}

func TestStepsPrecedeSingleDraw(t *testing.T) {
	b := &scriptBoundary{}
	q := &FrameQueue{}
	s := New(b, q, 16.67, 5, 0.1)

	s.Start(0)
	q.RunPending(84)

	if got := b.draws(); got != 1 {
		t.Fatalf("draws = %d, want 1", got)
	}
	if b.calls[len(b.calls)-1] != "draw" {
		t.Errorf("calls = %v, want the draw after every step", b.calls)
	}
}

func TestUnconditionalReschedule(t *testing.T) {
	b := &scriptBoundary{}
	q := &FrameQueue{}
	s := New(b, q, 16.67, 5, 0.1)

	s.Start(0)
	for _, now := range []float64{2, 30, 5000} {
		q.RunPending(now)
		if q.cb == nil {
			t.Fatalf("no frame scheduled after callback at now=%v", now)
		}
	}
}
