package factory

import (
	"github.com/automoto/pixelrun/ai"
	"github.com/automoto/pixelrun/archetypes"
	"github.com/automoto/pixelrun/assets"
	"github.com/automoto/pixelrun/components"
	cfg "github.com/automoto/pixelrun/config"
	"github.com/automoto/pixelrun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateEnemy spawns an enemy. A nil strategy stands still.
func CreateEnemy(w donburi.World, x, y float64, name string, strategy ai.Strategy) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(w)

	obj := resolv.NewObject(x, y, float64(cfg.Enemy.CollisionWidth), float64(cfg.Enemy.CollisionHeight))
	obj.AddTags(tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	if strategy == nil {
		strategy = ai.None{}
	}
	components.Enemy.SetValue(enemy, components.EnemyData{
		Name:      name,
		Strategy:  strategy,
		Direction: cfg.DirectionLeft,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity:      cfg.Enemy.Gravity,
		MaxFallSpeed: cfg.Enemy.MaxFallSpeed,
	})
	components.State.SetValue(enemy, components.StateData{CurrentState: cfg.Idle})
	components.Sprite.SetValue(enemy, components.SpriteData{
		SpriteRequest: assets.SpriteRequest{Type: cfg.SpriteEnemy, Color: cfg.DefaultSpriteColor},
	})
	components.Lifecycle.SetValue(enemy, components.LifecycleData{State: cfg.Active})

	return enemy
}

// CreateEnemyFromSpawn builds the spawn's strategy and spawns the enemy. An
// unknown or broken strategy falls back to standing still.
func CreateEnemyFromSpawn(w donburi.World, spawn assets.EnemySpawn, scripts *ai.Scripts) (*donburi.Entry, error) {
	kind := spawn.Strategy
	if kind == "" {
		kind = cfg.Enemy.DefaultStrategy
	}
	strategy, err := ai.New(ai.Spec{
		Kind:           kind,
		OriginX:        spawn.X,
		PatrolDistance: spawn.PatrolDistance,
		Speed:          cfg.Enemy.PatrolSpeed,
		Script:         spawn.Script,
	}, scripts)
	enemy := CreateEnemy(w, spawn.X, spawn.Y, spawn.Name, strategy)
	return enemy, err
}
