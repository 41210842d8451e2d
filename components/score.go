package components

import "github.com/yohamta/donburi"

// ScoreData is the singleton score state. HiScore mirrors the persisted
// value and is written back when a run ends.
type ScoreData struct {
	Score   int
	HiScore int
}

var Score = donburi.NewComponentType[ScoreData]()
