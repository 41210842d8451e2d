package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/stardive/components"
	cfg "github.com/automoto/stardive/config"
	"github.com/automoto/stardive/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 6

var (
	hudTextColor = color.RGBA{255, 255, 255, 255}
	hudHiColor   = color.RGBA{255, 80, 80, 255}
	zoneColor    = color.RGBA{255, 255, 255, 48}
	knobColor    = color.RGBA{255, 255, 255, 128}
)

// DrawHUD renders the score line and, on touch hosts, the on-screen
// controls.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	face := fonts.ArcadeSmall.Get()

	if entry, ok := components.Score.First(e.World); ok {
		score := components.Score.Get(entry)
		text.Draw(screen, fmt.Sprintf("SCORE %06d", score.Score), face,
			hudMargin, hudMargin+10, hudTextColor)
		hi := fmt.Sprintf("HI %06d", score.HiScore)
		bounds := text.BoundString(face, hi)
		text.Draw(screen, hi, face,
			cfg.C.Width-bounds.Dx()-hudMargin, hudMargin+10, hudHiColor)
	}

	if !TouchCapable() {
		return
	}
	drawTouchControls(e, screen)
}

func drawTouchControls(e *ecs.ECS, screen *ebiten.Image) {
	stick := cfg.Input.StickZone
	shot := cfg.Input.ShotZone

	vector.StrokeRect(screen,
		float32(stick.X), float32(stick.Y), float32(stick.W), float32(stick.H),
		1, zoneColor, false)
	vector.StrokeRect(screen,
		float32(shot.X), float32(shot.Y), float32(shot.W), float32(shot.H),
		1, zoneColor, false)

	entry, ok := components.StickView.First(e.World)
	if !ok {
		return
	}
	knob := components.StickView.Get(entry)
	if !knob.Visible && knob.ReturnX == nil {
		return
	}
	vector.DrawFilledCircle(screen,
		float32(knob.X), float32(knob.Y), float32(cfg.Input.KnobRadius),
		knobColor, false)
}
