package factory

import (
	"log"

	"github.com/automoto/pixelrun/ai"
	"github.com/automoto/pixelrun/archetypes"
	"github.com/automoto/pixelrun/assets"
	"github.com/automoto/pixelrun/components"
	cfg "github.com/automoto/pixelrun/config"
	"github.com/yohamta/donburi"
)

// CreateLevel stores the current map. level may be nil.
func CreateLevel(w donburi.World, level *assets.Level) *donburi.Entry {
	e := archetypes.Level.Spawn(w)
	components.Level.SetValue(e, components.LevelData{CurrentLevel: level})
	return e
}

// GetLevel returns the current map, or nil.
func GetLevel(w donburi.World) *assets.Level {
	e, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	return components.Level.Get(e).CurrentLevel
}

// CreateGameState adds the lives/score singleton with starting values.
func CreateGameState(w donburi.World) *donburi.Entry {
	e := archetypes.GameState.Spawn(w)
	components.GameState.SetValue(e, components.GameStateData{
		Lives: cfg.Player.StartingLives,
		State: cfg.GameRunning,
	})
	return e
}

// SpawnLevel creates the player, enemies and power-ups of a map. With no map
// only the player is spawned, at the default spawn.
func SpawnLevel(w donburi.World, level *assets.Level, scripts *ai.Scripts) *donburi.Entry {
	if level == nil {
		return CreatePlayer(w, cfg.Player.DefaultSpawnX, cfg.Player.DefaultSpawnY)
	}

	player := CreatePlayer(w, level.PlayerSpawn.X, level.PlayerSpawn.Y)
	for _, spawn := range level.EnemySpawns {
		if _, err := CreateEnemyFromSpawn(w, spawn, scripts); err != nil {
			log.Printf("[factory] Warning: enemy %q: %v", spawn.Name, err)
		}
	}
	for _, spawn := range level.PowerUpSpawns {
		CreatePowerUp(w, spawn.X, spawn.Y, spawn.Kind)
	}
	return player
}
