package components

import (
	"time"

	"github.com/automoto/pixelrun/config"
	"github.com/yohamta/donburi"
)

// GameStateData is the world singleton holding lives, score and the clock.
type GameStateData struct {
	Lives int
	Score int
	State config.GameStateID
	Tick  int           // ticks simulated since the last restart
	Clock time.Duration // game time since the last restart
}

var GameState = donburi.NewComponentType[GameStateData]()

// GetGameState returns the singleton, or nil when the world has none.
func GetGameState(w donburi.World) *GameStateData {
	e, ok := GameState.First(w)
	if !ok {
		return nil
	}
	return GameState.Get(e)
}
