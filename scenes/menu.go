package scenes

import (
	"image/color"

	cfg "github.com/automoto/pixelrun/config"
	"github.com/automoto/pixelrun/fonts"
	"github.com/automoto/pixelrun/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // ebitenui screens use text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	menuPlay = iota
	menuPlayOnline
	menuExit
)

// MenuScene displays the main menu
type MenuScene struct {
	sceneChanger SceneChanger
	deps         *Deps
	input        *input.Poller
	selected     int
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, deps *Deps) *MenuScene {
	p := input.NewPoller()
	// A key still held from the previous scene must not select immediately.
	p.Update()
	p.Reset()
	return &MenuScene{sceneChanger: sc, deps: deps, input: p}
}

func (ms *MenuScene) Update() {
	ms.input.Update()

	numOptions := len(cfg.Menu.MenuOptions)
	if numOptions == 0 {
		return
	}
	if ms.input.JustPressed(cfg.ActionMenuUp) {
		ms.selected = (ms.selected - 1 + numOptions) % numOptions
	}
	if ms.input.JustPressed(cfg.ActionMenuDown) {
		ms.selected = (ms.selected + 1) % numOptions
	}

	if ms.input.JustPressed(cfg.ActionMenuSelect) {
		switch ms.selected {
		case menuPlay:
			offline := *ms.deps
			offline.RelayAddress = ""
			ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger, &offline, nil))
		case menuPlayOnline:
			ms.sceneChanger.ChangeScene(NewConnectScene(ms.sceneChanger, ms.deps))
		case menuExit:
			ms.sceneChanger.Quit()
		}
		return
	}

	if ms.input.JustPressed(cfg.ActionMenuBack) {
		ms.sceneChanger.Quit()
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	drawCentered(screen, cfg.Menu.Title, fonts.Title.Get(), width, cfg.Menu.TitleY, cfg.Menu.TitleColor)

	menuFont := fonts.Bold.Get()
	for i, label := range cfg.Menu.MenuOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == ms.selected {
			textColor = cfg.Menu.TextColorSelected
		}
		drawCentered(screen, label, menuFont, width, y+cfg.Menu.MenuItemHeight, textColor)
	}

	drawCentered(screen, "Arrows: Navigate   Enter: Select", fonts.Small.Get(), width, height-12, cfg.Menu.TextColorNormal)
}

// drawCentered draws s horizontally centered with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, width, y float64, clr color.Color) {
	w := font.MeasureString(face, s).Round()
	text.Draw(screen, s, face, int((width-float64(w))/2), int(y), clr)
}
