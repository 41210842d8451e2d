package systems

import (
	"github.com/automoto/stardive/components"
	cfg "github.com/automoto/stardive/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// StickView renders the stick machine's positional feedback into the
// singleton StickView component. It implements touch.Feedback.
type StickView struct {
	ecs *ecs.ECS
}

func NewStickView(e *ecs.ECS) *StickView {
	return &StickView{ecs: e}
}

func (v *StickView) Show(x, y float64) {
	d := getOrCreateStickView(v.ecs)
	d.Visible = true
	d.X, d.Y = x, y
	d.ReturnX, d.ReturnY = nil, nil
}

func (v *StickView) Move(x, y float64) {
	d := getOrCreateStickView(v.ecs)
	d.X, d.Y = x, y
}

// Hide starts the release animation easing the knob back to the zone rest
// position instead of snapping it.
func (v *StickView) Hide() {
	d := getOrCreateStickView(v.ecs)
	d.Visible = false
	rest := restPosition()
	d.ReturnX = gween.New(float32(d.X), float32(rest.X), cfg.Input.KnobReturnSec, ease.OutQuad)
	d.ReturnY = gween.New(float32(d.Y), float32(rest.Y), cfg.Input.KnobReturnSec, ease.OutQuad)
}

// UpdateStickView advances the knob's release animation by one tick.
func UpdateStickView(e *ecs.ECS) {
	entry, ok := components.StickView.First(e.World)
	if !ok {
		return
	}
	d := components.StickView.Get(entry)
	if d.ReturnX == nil {
		return
	}

	dt := float32(cfg.Timing.StepMs / 1000.0)
	x, doneX := d.ReturnX.Update(dt)
	y, doneY := d.ReturnY.Update(dt)
	d.X, d.Y = float64(x), float64(y)
	if doneX && doneY {
		d.ReturnX, d.ReturnY = nil, nil
	}
}

type point struct {
	X, Y float64
}

func restPosition() point {
	zone := cfg.Input.StickZone
	return point{X: zone.CenterX(), Y: zone.Y + zone.H/2}
}

func getOrCreateStickView(e *ecs.ECS) *components.StickViewData {
	entry, ok := components.StickView.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.StickView))
		rest := restPosition()
		components.StickView.Set(entry, &components.StickViewData{X: rest.X, Y: rest.Y})
	}
	return components.StickView.Get(entry)
}
