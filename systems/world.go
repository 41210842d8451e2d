package systems

import (
	"math/rand"

	"github.com/automoto/stardive/components"
	cfg "github.com/automoto/stardive/config"
	"github.com/automoto/stardive/pad"
	"github.com/automoto/stardive/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePad recomputes pressed and trigger edges from the transitions that
// arrived since the last tick. Must run before any system reads the pad.
func UpdatePad(e *ecs.ECS) {
	getOrCreatePad(e).Pad.Update()
}

// SpawnWorld creates the ship, score and starfield entities.
func SpawnWorld(e *ecs.ECS) {
	ship := e.World.Entry(e.World.Create(tags.Ship, components.Ship))
	components.Ship.Set(ship, &components.ShipData{X: float64(cfg.C.Width) / 2})

	score := e.World.Entry(e.World.Create(components.Score))
	components.Score.Set(score, &components.ScoreData{})

	for i := 0; i < cfg.World.StarCount; i++ {
		star := e.World.Entry(e.World.Create(tags.Star, components.Star))
		components.Star.Set(star, &components.StarData{
			X:     rand.Float64() * float64(cfg.C.Width),
			Y:     rand.Float64() * float64(cfg.C.Height),
			Speed: cfg.World.StarMinSpeed + rand.Float64()*(cfg.World.StarMaxSpeed-cfg.World.StarMinSpeed),
			Shade: uint8(96 + rand.Intn(160)),
		})
	}
}

// UpdateShip moves the ship from the pad's horizontal state and fires on the
// trigger edge.
func UpdateShip(e *ecs.ECS) {
	entry, ok := components.Ship.First(e.World)
	if !ok {
		return
	}
	ship := components.Ship.Get(entry)
	p := &getOrCreatePad(e).Pad

	if p.Pressed(pad.Left) {
		ship.X -= cfg.World.ShipSpeed
	}
	if p.Pressed(pad.Right) {
		ship.X += cfg.World.ShipSpeed
	}
	if ship.X < 8 {
		ship.X = 8
	}
	if ship.X > float64(cfg.C.Width)-8 {
		ship.X = float64(cfg.C.Width) - 8
	}

	if ship.Cooldown > 0 {
		ship.Cooldown--
	}
	if p.Triggered(pad.Fire) && ship.Cooldown == 0 {
		ship.Cooldown = cfg.World.ShotCooldown
		spawnShot(e, ship.X)
		QueueSFX(e, cfg.SoundShot)
		addScore(e, cfg.World.ShotScore)
	}
}

func spawnShot(e *ecs.ECS, x float64) {
	shot := e.World.Entry(e.World.Create(tags.Shot, components.Shot))
	components.Shot.Set(shot, &components.ShotData{X: x, Y: cfg.World.ShipY - 8})
}

// UpdateShots advances shots and removes the ones that left the playfield.
func UpdateShots(e *ecs.ECS) {
	var expired []*donburi.Entry
	components.Shot.Each(e.World, func(entry *donburi.Entry) {
		shot := components.Shot.Get(entry)
		shot.Y -= cfg.World.ShotSpeed
		if shot.Y < -8 {
			expired = append(expired, entry)
		}
	})
	for _, entry := range expired {
		e.World.Remove(entry.Entity())
	}
}

// UpdateStars scrolls the starfield, wrapping stars back to the top.
func UpdateStars(e *ecs.ECS) {
	components.Star.Each(e.World, func(entry *donburi.Entry) {
		star := components.Star.Get(entry)
		star.Y += star.Speed
		if star.Y > float64(cfg.C.Height) {
			star.Y = 0
			star.X = rand.Float64() * float64(cfg.C.Width)
		}
	})
}

func addScore(e *ecs.ECS, points int) {
	entry, ok := components.Score.First(e.World)
	if !ok {
		return
	}
	score := components.Score.Get(entry)
	score.Score += points
	if score.Score > score.HiScore {
		score.HiScore = score.Score
	}
}
