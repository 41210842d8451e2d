package systems

import (
	"github.com/automoto/stardive/components"
	"github.com/automoto/stardive/engine"
	"github.com/yohamta/donburi/ecs"
)

// WorldBoundary adapts the donburi world to the engine boundary protocol.
// Key and signal input lands on the singleton pad; Step runs the world's
// systems for one tick; Draw commits one presented frame.
type WorldBoundary struct {
	ecs    *ecs.ECS
	frames uint64
}

func NewWorldBoundary(e *ecs.ECS) *WorldBoundary {
	return &WorldBoundary{ecs: e}
}

func (w *WorldBoundary) OnKey(code string, pressed bool) {
	getOrCreatePad(w.ecs).Pad.OnKey(code, pressed)
}

func (w *WorldBoundary) OnSignal(sig engine.Signal) {
	p := getOrCreatePad(w.ecs)
	switch s := sig.(type) {
	case engine.ButtonSignal:
		p.Pad.OnButton(s.Pressed)
	case engine.StickSignal:
		p.Pad.OnStick(s.Dir)
	}
}

func (w *WorldBoundary) Step() {
	w.ecs.Update()
}

func (w *WorldBoundary) Draw() {
	w.frames++
}

// Frames reports how many draws the scheduler has issued.
func (w *WorldBoundary) Frames() uint64 {
	return w.frames
}

// getOrCreatePad returns the singleton Pad component, creating if needed
func getOrCreatePad(e *ecs.ECS) *components.PadData {
	entry, ok := components.Pad.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pad))
	}
	return components.Pad.Get(entry)
}
