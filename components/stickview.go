package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// StickViewData is the on-screen feedback knob for the virtual stick
// (singleton). While a contact is tracked the knob follows the clamped
// contact position; on release it eases back to the zone center.
type StickViewData struct {
	Visible bool
	X, Y    float64

	// Release animation; nil when the knob is idle or tracking.
	ReturnX *gween.Tween
	ReturnY *gween.Tween
}

var StickView = donburi.NewComponentType[StickViewData]()
