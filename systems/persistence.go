package systems

import (
	"encoding/json"
	"log"
	"strconv"

	"github.com/automoto/stardive/engine"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Muted       bool    `json:"muted"`
}

const (
	settingsKey = "settings"
	hiScoreKey  = "hi_score"
)

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager backing SaveStore.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "stardive",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// SaveStore is the gdata-backed host key-value store. Before persistence is
// initialized every read misses and every write is dropped with a warning.
type SaveStore struct{}

func (SaveStore) Get(key string) (string, bool) {
	if !gdataInitialized || gdataManager == nil {
		return "", false
	}
	data, err := gdataManager.LoadItem(key)
	if err != nil || data == nil {
		return "", false
	}
	return string(data), true
}

func (SaveStore) Set(key, value string) {
	if !gdataInitialized || gdataManager == nil {
		return
	}
	if err := gdataManager.SaveItem(key, []byte(value)); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
	}
}

// MemStore is an in-memory Store for tests and hosts without storage.
type MemStore map[string]string

func (m MemStore) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MemStore) Set(key, value string) {
	m[key] = value
}

// LoadHiScore reads the persisted high score. Absent or malformed values
// load as zero.
func LoadHiScore(st engine.Store) int {
	v, ok := st.Get(hiScoreKey)
	if !ok {
		return 0
	}
	score, err := strconv.Atoi(v)
	if err != nil || score < 0 {
		return 0
	}
	return score
}

// SaveHiScore persists score if it beats the stored high score, and reports
// the best known score either way.
func SaveHiScore(st engine.Store, score int) int {
	best := LoadHiScore(st)
	if score <= best {
		return best
	}
	st.Set(hiScoreKey, strconv.Itoa(score))
	return score
}

// LoadSettings loads settings from the store. A missing record returns nil
// with no error.
func LoadSettings(st engine.Store) (*SavedSettings, error) {
	raw, ok := st.Get(settingsKey)
	if !ok {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings writes settings to the store.
func SaveSettings(st engine.Store, s *SavedSettings) error {
	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}
	st.Set(settingsKey, string(data))
	return nil
}

// ApplySavedSettings pushes persisted settings into the audio system.
func ApplySavedSettings(s *SavedSettings) {
	if s == nil {
		return
	}
	music, sfx := s.MusicVolume, s.SFXVolume
	if s.Muted {
		music, sfx = 0, 0
	}
	SetVolumes(music, sfx)
}
