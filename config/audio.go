package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundShot
	SoundMenuSelect
)

// ChannelID is a fixed mixing slot. Playing a sound on a channel cuts off
// whatever that channel was playing, arcade-style.
type ChannelID int

const (
	ChannelShot ChannelID = iota
	ChannelUI
	ChannelCount // must be last
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// SoundConfig maps sound IDs to asset paths and mixing channels
type SoundConfig struct {
	AssetDir          string
	TitleMusic        string
	SFXPaths          map[SoundID]string
	Channels          map[SoundID]ChannelID
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.7,
		DefaultSFXVol:   1.0,
	}

	Sound = SoundConfig{
		AssetDir:   "assets",
		TitleMusic: "audio/music/title.ogg",
		SFXPaths: map[SoundID]string{
			SoundShot:       "audio/sfx/shot.wav",
			SoundMenuSelect: "audio/sfx/menu_select.wav",
		},
		Channels: map[SoundID]ChannelID{
			SoundShot:       ChannelShot,
			SoundMenuSelect: ChannelUI,
		},
		VolumeMultipliers: map[SoundID]float64{
			// rapid fire would otherwise drown the mix
			SoundShot: 0.8,
		},
	}
}
