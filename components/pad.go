package components

import (
	"github.com/automoto/stardive/pad"
	"github.com/yohamta/donburi"
)

// PadData is the singleton pad state fed by the input boundary and read by
// the world systems each tick.
type PadData struct {
	Pad pad.Pad
}

var Pad = donburi.NewComponentType[PadData]()
