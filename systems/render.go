package systems

import (
	"image/color"

	"github.com/automoto/stardive/components"
	cfg "github.com/automoto/stardive/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var shipColor = color.RGBA{80, 200, 255, 255}
var shotColor = color.RGBA{255, 255, 160, 255}

// DrawStars renders the scrolling starfield behind everything else.
func DrawStars(e *ecs.ECS, screen *ebiten.Image) {
	components.Star.Each(e.World, func(entry *donburi.Entry) {
		star := components.Star.Get(entry)
		shade := color.RGBA{star.Shade, star.Shade, star.Shade, 255}
		vector.DrawFilledRect(screen,
			float32(star.X), float32(star.Y), 1, 1, shade, false)
	})
}

// DrawWorld renders the ship and shots.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	components.Shot.Each(e.World, func(entry *donburi.Entry) {
		shot := components.Shot.Get(entry)
		vector.DrawFilledRect(screen,
			float32(shot.X)-1, float32(shot.Y)-4, 2, 8, shotColor, false)
	})

	entry, ok := components.Ship.First(e.World)
	if !ok {
		return
	}
	ship := components.Ship.Get(entry)
	x := float32(ship.X)
	y := float32(cfg.World.ShipY)

	// Blocky ship: hull, wings, nose.
	vector.DrawFilledRect(screen, x-3, y-6, 6, 12, shipColor, false)
	vector.DrawFilledRect(screen, x-8, y+1, 16, 5, shipColor, false)
	vector.DrawFilledRect(screen, x-1, y-10, 2, 4, color.White, false)
}
