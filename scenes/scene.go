package scenes

import (
	"github.com/automoto/pixelrun/ai"
	"github.com/automoto/pixelrun/assets"
	cfg "github.com/automoto/pixelrun/config"
	"github.com/automoto/pixelrun/shared/messages"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene Scene)
	Quit()
}

// Deps is what every scene needs from startup.
type Deps struct {
	Catalog *assets.Catalog
	Level   *assets.Level
	Scripts *ai.Scripts

	// Tuning is nil unless -watch was given.
	Tuning     *cfg.TuningWatcher
	TuningPath string

	RelayAddress string // non-empty connects the world scene on start
	Name         string
	Codec        messages.Codec
}
