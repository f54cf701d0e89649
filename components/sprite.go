package components

import (
	"github.com/automoto/pixelrun/assets"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	assets.SpriteRequest
	OffsetY float64 // visual offset, does not move the hitbox
	Hidden  bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
