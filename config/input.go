package config

import (
	"github.com/automoto/stardive/touch"
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyBinding maps an ebiten key to the code string forwarded to the game
// boundary. Codes follow the web KeyboardEvent.code names.
type KeyBinding struct {
	Key  ebiten.Key
	Code string
}

// InputConfig holds key bindings and touch control geometry
type InputConfig struct {
	Keys []KeyBinding

	// Touch zones, in logical playfield coordinates
	StickZone touch.Rect
	ShotZone  touch.Rect

	// Stick feedback knob
	KnobRadius    float64
	KnobReturnSec float32 // seconds for the knob to ease back to center
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Keys: []KeyBinding{
			{Key: ebiten.KeyArrowLeft, Code: "ArrowLeft"},
			{Key: ebiten.KeyArrowRight, Code: "ArrowRight"},
			{Key: ebiten.KeyArrowUp, Code: "ArrowUp"},
			{Key: ebiten.KeyArrowDown, Code: "ArrowDown"},
			{Key: ebiten.KeySpace, Code: "Space"},
			{Key: ebiten.KeyEnter, Code: "Enter"},
			{Key: ebiten.KeyEscape, Code: "Escape"},
		},
		StickZone:     touch.Rect{X: 4, Y: 244, W: 120, H: 72},
		ShotZone:      touch.Rect{X: 148, Y: 244, W: 88, H: 72},
		KnobRadius:    10,
		KnobReturnSec: 0.15,
	}
}
