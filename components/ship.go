package components

import "github.com/yohamta/donburi"

// ShipData is the player ship. Vertical position is fixed; only X moves.
type ShipData struct {
	X        float64
	Cooldown int // ticks until the next shot may fire
}

var Ship = donburi.NewComponentType[ShipData]()

// ShotData is one player shot travelling up the playfield.
type ShotData struct {
	X, Y float64
}

var Shot = donburi.NewComponentType[ShotData]()

// StarData is one background starfield particle.
type StarData struct {
	X, Y  float64
	Speed float64
	Shade uint8 // grayscale brightness
}

var Star = donburi.NewComponentType[StarData]()
