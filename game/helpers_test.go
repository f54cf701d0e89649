package game

import (
	"github.com/automoto/pixelrun/ai"
	"github.com/automoto/pixelrun/assets"
)

func newScripts() *ai.Scripts {
	return ai.NewScripts(assets.FS())
}
