package scenes

import (
	"fmt"
	"image/color"
	"time"

	"github.com/automoto/pixelrun/components"
	cfg "github.com/automoto/pixelrun/config"
	"github.com/automoto/pixelrun/fonts"
	"github.com/automoto/pixelrun/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // ebitenui screens use text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"golang.org/x/image/font"
)

type hudState struct {
	Lives      int
	Score      int
	Invincible time.Duration
	SpeedBoost time.Duration
	Online     bool
	NetStatus  string
	Players    int
}

var hitboxColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// drawHUD renders lives, score and effect timers in the top-left corner and
// the relay status in the top-right.
func drawHUD(screen *ebiten.Image, st hudState) {
	face := fonts.Regular.Get()
	x := cfg.HUD.Margin
	y := cfg.HUD.Margin + cfg.HUD.LineHeight

	lines := []string{
		fmt.Sprintf("LIVES %d", st.Lives),
		fmt.Sprintf("SCORE %d", st.Score),
	}
	if st.Invincible > 0 {
		lines = append(lines, fmt.Sprintf("INVINCIBLE %.1fs", st.Invincible.Seconds()))
	}
	if st.SpeedBoost > 0 {
		lines = append(lines, fmt.Sprintf("SPEED %.1fs", st.SpeedBoost.Seconds()))
	}
	for _, line := range lines {
		drawShadowed(screen, line, face, x, y, cfg.HUD.TextColor)
		y += cfg.HUD.LineHeight
	}

	if !st.Online {
		return
	}
	status := st.NetStatus
	if st.Players > 0 && st.NetStatus == "connected" {
		status = fmt.Sprintf("online: %d", st.Players)
	}
	w := float64(font.MeasureString(face, status).Round())
	width := float64(screen.Bounds().Dx())
	drawShadowed(screen, status, face, width-w-cfg.HUD.Margin, cfg.HUD.Margin+cfg.HUD.LineHeight, cfg.HUD.TextColor)
}

// drawRemoteLabels writes each ghost's name, and chat line when set, above it.
func drawRemoteLabels(screen *ebiten.Image, roster []systems.RemoteState) {
	for _, r := range roster {
		drawLabel(screen, r.Name, r.X, r.Y-4, cfg.HUD.TextColor)
		if r.Chat != "" {
			drawLabel(screen, r.Chat, r.X, r.Y-4-cfg.HUD.LineHeight, cfg.HUD.ChatColor)
		}
	}
}

// drawLabel centers s over a player-sized hitbox whose top-left is x.
func drawLabel(screen *ebiten.Image, s string, x, baseline float64, clr color.Color) {
	face := fonts.Small.Get()
	w := float64(font.MeasureString(face, s).Round())
	cx := x + float64(cfg.Player.CollisionWidth)/2
	drawShadowed(screen, s, face, cx-w/2, baseline, clr)
}

func drawShadowed(screen *ebiten.Image, s string, face font.Face, x, y float64, clr color.Color) {
	text.Draw(screen, s, face, int(x)+1, int(y)+1, cfg.HUD.ShadowColor)
	text.Draw(screen, s, face, int(x), int(y), clr)
}

func drawChatLine(screen *ebiten.Image, line string) {
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	boxH := float32(cfg.HUD.LineHeight + 6)

	vector.FillRect(screen, 0, height-boxH, width, boxH, cfg.Pause.OverlayColor, false)
	text.Draw(screen, "> "+line+"_", fonts.Regular.Get(), int(cfg.HUD.Margin), int(height)-6, cfg.HUD.TextColor)
}

func drawGameOver(screen *ebiten.Image, score int) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	drawCentered(screen, "GAME OVER", fonts.Title.Get(), width, height/2, cfg.HUD.GameOverColor)
	drawCentered(screen, fmt.Sprintf("score %d", score), fonts.Regular.Get(), width, height/2+cfg.HUD.LineHeight+4, cfg.HUD.TextColor)
}

// drawPause renders the pause overlay.
func drawPause(screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)
	drawCentered(screen, cfg.Pause.Title, fonts.Title.Get(), width, height/2, cfg.Pause.TextColor)
	drawCentered(screen, cfg.Pause.Hint, fonts.Small.Get(), width, height-12, cfg.Pause.TextColor)
}

func drawHitboxes(screen *ebiten.Image, w donburi.World) {
	components.Object.Each(w, func(e *donburi.Entry) {
		r := components.Object.Get(e).Rect()
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, hitboxColor, false)
	})
}
