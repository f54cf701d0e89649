package systems

import (
	"github.com/automoto/pixelrun/assets"
	"github.com/automoto/pixelrun/components"
	cfg "github.com/automoto/pixelrun/config"
	"github.com/automoto/pixelrun/render"
	"github.com/automoto/pixelrun/systems/factory"
	"github.com/automoto/pixelrun/tags"
	"github.com/yohamta/donburi"
)

// Render draws the level and every visible entity. Sprites that fail to
// resolve are skipped for this frame.
func Render(w donburi.World, catalog *assets.Catalog, surface render.Surface) {
	surface.Clear()

	if level := factory.GetLevel(w); level != nil {
		render.DrawImage(surface, level.Background, 0, 0)
	}

	// Back to front
	for _, tag := range []*donburi.ComponentType[donburi.Tag]{tags.PowerUp, tags.Enemy, tags.RemotePlayer, tags.Player} {
		tag.Each(w, func(e *donburi.Entry) {
			drawEntity(e, catalog, surface)
		})
	}
}

func drawEntity(e *donburi.Entry, catalog *assets.Catalog, surface render.Surface) {
	if e.HasComponent(components.Lifecycle) && components.Lifecycle.Get(e).State == cfg.Destroyed {
		return
	}
	sprite := components.Sprite.Get(e)
	if sprite.Hidden {
		return
	}
	resolved, err := catalog.Resolve(sprite.SpriteRequest)
	if err != nil {
		return
	}

	// Anchor at bottom-center so feet line up with the hitbox
	obj := components.Object.Get(e)
	x := obj.X + (obj.W-float64(resolved.TileWidth))/2
	y := obj.Y + obj.H - float64(resolved.TileHeight) + sprite.OffsetY
	render.DrawSprite(surface, resolved, x, y)
}
