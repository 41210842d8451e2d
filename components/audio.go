package components

import (
	cfg "github.com/automoto/stardive/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised by world systems for the audio
// system to play (singleton).
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
