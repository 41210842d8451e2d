// Package pad merges keyboard and virtual-stick input into a bitflag pad
// with per-tick press and trigger-edge state.
package pad

import "github.com/automoto/stardive/engine"

// Bit is one pad button flag.
type Bit uint32

const (
	Left Bit = 1 << iota
	Right
	Up
	Down
	Fire
)

// Pad accumulates raw transitions between ticks and derives the merged state
// once per simulation tick. Trigger bits are set only on the tick a button
// goes down.
type Pad struct {
	pressed Bit // merged state as of the last Update
	trigger Bit // bits that went down on the last Update
	last    Bit
	key     Bit
	stick   Bit
}

// Update recomputes pressed and trigger state. Call once per tick, before
// any system reads the pad.
func (p *Pad) Update() {
	p.pressed = p.key | p.stick
	p.trigger = p.pressed &^ p.last
	p.last = p.pressed
}

// Pressed reports whether every bit in b is currently held.
func (p *Pad) Pressed(b Bit) bool {
	return p.pressed&b == b
}

// Triggered reports whether every bit in b went down on the last Update.
func (p *Pad) Triggered(b Bit) bool {
	return p.trigger&b == b
}

// OnKey applies a raw key transition. Unrecognized codes are ignored.
func (p *Pad) OnKey(code string, down bool) {
	bit := keyBit(code)
	if bit == 0 {
		return
	}
	if down {
		p.key |= bit
	} else {
		p.key &^= bit
	}
}

// OnStick replaces the horizontal pair from the virtual stick. The stick
// reports absolute direction, not transitions, so both bits are rewritten.
func (p *Pad) OnStick(dir engine.Direction) {
	p.stick &^= Left | Right
	switch {
	case dir < 0:
		p.stick |= Left
	case dir > 0:
		p.stick |= Right
	}
}

// OnButton applies the on-screen shot button level. Repeated levels of the
// same polarity are harmless.
func (p *Pad) OnButton(down bool) {
	if down {
		p.stick |= Fire
	} else {
		p.stick &^= Fire
	}
}

func keyBit(code string) Bit {
	switch code {
	case "ArrowLeft":
		return Left
	case "ArrowRight":
		return Right
	case "ArrowUp":
		return Up
	case "ArrowDown":
		return Down
	case "Space":
		return Fire
	}
	return 0
}
