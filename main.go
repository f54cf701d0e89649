package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/pixelrun/ai"
	"github.com/automoto/pixelrun/assets"
	"github.com/automoto/pixelrun/config"
	"github.com/automoto/pixelrun/fonts"
	"github.com/automoto/pixelrun/scenes"
	"github.com/automoto/pixelrun/shared/messages"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func (g *Game) Quit() {
	g.quit = true
}

func NewGame(deps *scenes.Deps) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu || deps.RelayAddress != "" {
		g.scene = scenes.NewWorldScene(g, deps, nil)
	} else {
		g.scene = scenes.NewMenuScene(g, deps)
	}

	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuningPath := flag.String("tuning", "", "yaml file overriding the embedded tuning")
	watch := flag.Bool("watch", false, "reload the -tuning file when it changes")
	skipMenu := flag.Bool("skip-menu", false, "start playing immediately")
	relayAddr := flag.String("relay", "", "presence relay address; joins it on start")
	name := flag.String("name", "player", "display name on the relay")
	codecName := flag.String("codec", "json", "relay codec: json or msgpack")
	hitboxes := flag.Bool("hitboxes", false, "draw hitboxes")
	flag.Parse()

	config.Debug.SkipMenu = *skipMenu
	config.Debug.ShowHitboxes = *hitboxes

	if err := config.LoadTuning(assets.FS(), assets.TuningFile); err != nil {
		log.Printf("Warning: embedded tuning: %v", err)
	}
	if *tuningPath != "" {
		if err := config.LoadTuningFile(*tuningPath); err != nil {
			log.Printf("Warning: %v, using defaults", err)
		}
	}

	codec, err := messages.CodecByName(*codecName)
	if err != nil {
		log.Printf("Warning: codec %q: %v, using json", *codecName, err)
		codec = messages.JSON
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	deps := &scenes.Deps{
		Catalog:      assets.NewDefaultCatalog(),
		Scripts:      ai.NewScripts(assets.FS()),
		TuningPath:   *tuningPath,
		RelayAddress: *relayAddr,
		Name:         *name,
		Codec:        codec,
	}

	level, err := assets.LoadLevel(assets.FS(), config.Level)
	if err != nil {
		log.Printf("Warning: %v, playing without a map", err)
	} else {
		deps.Level = level
	}

	if *watch && *tuningPath != "" {
		w, err := config.NewTuningWatcher(*tuningPath)
		if err != nil {
			log.Printf("Warning: cannot watch %s: %v", *tuningPath, err)
		} else {
			defer w.Close()
			deps.Tuning = w
		}
	}

	ebiten.SetWindowSize(config.C.Width*config.Window.Scale, config.C.Height*config.Window.Scale)
	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(deps)); err != nil {
		log.Fatal(err)
	}
}
