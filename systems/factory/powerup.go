package factory

import (
	"github.com/automoto/pixelrun/archetypes"
	"github.com/automoto/pixelrun/assets"
	"github.com/automoto/pixelrun/components"
	cfg "github.com/automoto/pixelrun/config"
	"github.com/automoto/pixelrun/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

func CreatePowerUp(w donburi.World, x, y float64, kind cfg.PowerUpKind) *donburi.Entry {
	powerUp := archetypes.PowerUp.Spawn(w)

	obj := resolv.NewObject(x, y, float64(cfg.PowerUp.CollisionWidth), float64(cfg.PowerUp.CollisionHeight))
	obj.AddTags(tags.ResolvPowerUp)
	obj.Data = powerUp
	components.Object.SetValue(powerUp, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	// The sprite bobs using a sequence of tweens, moving it up and back down.
	// Only the drawn offset moves; the hitbox stays put.
	h, d := cfg.PowerUp.HoverHeight, cfg.PowerUp.HoverDuration
	hover := gween.NewSequence()
	hover.Add(
		gween.New(0, -h, d, ease.InOutSine),
		gween.New(-h, 0, d, ease.InOutSine),
	)
	components.PowerUp.SetValue(powerUp, components.PowerUpData{
		Kind:  kind,
		Hover: hover,
	})
	components.Sprite.SetValue(powerUp, components.SpriteData{
		SpriteRequest: assets.SpriteRequest{
			Type:  cfg.SpritePowerUp,
			Index: cfg.PowerUpTiles[kind],
			Color: cfg.DefaultSpriteColor,
		},
	})
	components.Lifecycle.SetValue(powerUp, components.LifecycleData{State: cfg.Active})

	return powerUp
}
