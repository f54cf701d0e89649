package components

import (
	"github.com/automoto/pixelrun/assets"
	"github.com/yohamta/donburi"
)

// LevelData holds the current map. CurrentLevel is nil when the game runs without one.
type LevelData struct {
	CurrentLevel *assets.Level
}

var Level = donburi.NewComponentType[LevelData]()
