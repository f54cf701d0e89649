package components

import (
	"github.com/automoto/pixelrun/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type PowerUpData struct {
	Kind  config.PowerUpKind
	Hover *gween.Sequence // yoyo offset for the sprite
}

var PowerUp = donburi.NewComponentType[PowerUpData]()
