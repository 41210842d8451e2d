package config

import "github.com/yohamta/donburi/ecs"

// Render layers
const (
	Default ecs.LayerID = iota
)

// GameConfig contains window and playfield configuration values
type GameConfig struct {
	Width       int // logical playfield width in pixels
	Height      int
	WindowScale int
	Title       string
}

// TimingConfig controls the fixed-timestep scheduler
type TimingConfig struct {
	StepMs     float64 // target simulation step, milliseconds
	MaxCatchUp int     // cap on steps issued per frame callback
	MarginMs   float64 // absorbs frame callbacks that fire slightly early
}

// WorldConfig contains tuning for the bundled demo world
type WorldConfig struct {
	ShipSpeed    float64 // pixels per tick
	ShipY        float64
	ShotSpeed    float64
	ShotCooldown int // ticks between shots
	ShotScore    int // score awarded per shot fired
	StarCount    int
	StarMinSpeed float64
	StarMaxSpeed float64
}

var C GameConfig
var Timing TimingConfig
var World WorldConfig

func init() {
	C = GameConfig{
		Width:       240,
		Height:      320,
		WindowScale: 2,
		Title:       "stardive",
	}

	Timing = TimingConfig{
		StepMs:     1000.0 / 60.0,
		MaxCatchUp: 5,
		MarginMs:   0.1,
	}

	World = WorldConfig{
		ShipSpeed:    2.0,
		ShipY:        224,
		ShotSpeed:    6.0,
		ShotCooldown: 12,
		ShotScore:    10,
		StarCount:    64,
		StarMinSpeed: 0.4,
		StarMaxSpeed: 1.6,
	}
}
