package factory

import (
	"github.com/automoto/pixelrun/archetypes"
	"github.com/automoto/pixelrun/assets"
	"github.com/automoto/pixelrun/components"
	cfg "github.com/automoto/pixelrun/config"
	"github.com/automoto/pixelrun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreatePlayer(w donburi.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	obj := resolv.NewObject(x, y, float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight))
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	components.Player.SetValue(player, components.PlayerData{
		Direction: cfg.DirectionRight,
		MoveSpeed: cfg.Player.MoveSpeed,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Player.Gravity,
		MaxFallSpeed: cfg.Player.MaxFallSpeed,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Sprite.SetValue(player, components.SpriteData{
		SpriteRequest: assets.SpriteRequest{Type: cfg.SpritePlayer, Color: cfg.DefaultSpriteColor},
	})
	components.Lifecycle.SetValue(player, components.LifecycleData{State: cfg.Active})

	return player
}
