package systems

import (
	"sync"

	"github.com/automoto/stardive/assets"
	"github.com/automoto/stardive/components"
	cfg "github.com/automoto/stardive/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once

	// One voice per channel; starting a sound cuts off the channel's
	// current voice, arcade-style.
	channelPlayers [cfg.ChannelCount]*audio.Player
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, cfg.Sound.AssetDir)
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first
// play. Missing asset files are tolerated; playback degrades to silence.
func PreloadAllSFX() {
	initGlobalAudio()

	for _, path := range cfg.Sound.SFXPaths {
		_ = globalAudioLoader.PreloadSFX(path)
	}
}

// QueueSFX asks the audio system to play a sound on its next update.
func QueueSFX(e *ecs.ECS, id cfg.SoundID) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
	}
	data := components.Audio.Get(entry)
	data.PendingSFX = append(data.PendingSFX, id)
}

// PlaySFX plays a sound immediately, bypassing the world's queue. Used by
// scenes that run without an ECS.
func PlaySFX(id cfg.SoundID) {
	initGlobalAudio()
	playSFX(id)
}

// UpdateAudio drains the pending SFX queue.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		return
	}

	ch := cfg.Sound.Channels[soundID]
	if current := channelPlayers[ch]; current != nil {
		_ = current.Close()
	}
	channelPlayers[ch] = player

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlayMusic starts a looping music track. Starting the track that is already
// playing is a no-op.
func PlayMusic(musicPath string) {
	initGlobalAudio()

	if globalMusicKey == musicPath {
		return
	}
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}

	player, err := globalAudioLoader.LoadMusic(musicPath)
	if err != nil {
		globalMusicKey = ""
		return
	}

	player.SetVolume(globalMusicVolume)
	player.Play()
	globalMusicPlayer = player
	globalMusicKey = musicPath
}

// StopMusic stops the current music track, if any.
func StopMusic() {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
		globalMusicKey = ""
	}
}

// SetVolumes applies music and SFX volume settings.
func SetVolumes(music, sfx float64) {
	globalMusicVolume = music
	globalSFXVolume = sfx
	if globalMusicPlayer != nil {
		globalMusicPlayer.SetVolume(music)
	}
}
