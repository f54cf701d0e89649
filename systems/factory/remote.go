package factory

import (
	"github.com/automoto/pixelrun/archetypes"
	"github.com/automoto/pixelrun/assets"
	"github.com/automoto/pixelrun/components"
	cfg "github.com/automoto/pixelrun/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateRemotePlayer spawns a drawn-only ghost. Its object is not added to the space.
func CreateRemotePlayer(w donburi.World, id, name string, x, y float64) *donburi.Entry {
	remote := archetypes.RemotePlayer.Spawn(w)

	obj := resolv.NewObject(x, y, float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight))
	obj.Data = remote
	components.Object.SetValue(remote, components.ObjectData{Object: obj})
	components.RemotePlayer.SetValue(remote, components.RemotePlayerData{ID: id, Name: name})
	components.Sprite.SetValue(remote, components.SpriteData{
		SpriteRequest: assets.SpriteRequest{Type: cfg.SpritePlayer, Color: cfg.GhostColor},
	})

	return remote
}
