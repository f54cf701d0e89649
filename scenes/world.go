package scenes

import (
	"image/color"
	"log"

	"github.com/automoto/pixelrun/components"
	cfg "github.com/automoto/pixelrun/config"
	"github.com/automoto/pixelrun/events"
	"github.com/automoto/pixelrun/game"
	"github.com/automoto/pixelrun/input"
	"github.com/automoto/pixelrun/network"
	"github.com/automoto/pixelrun/screen"
	"github.com/automoto/pixelrun/shared/messages"
	"github.com/automoto/pixelrun/systems"
	"github.com/automoto/pixelrun/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// WorldScene plays the level. With a relay client it also shows the other
// players as ghosts and lets the player chat.
type WorldScene struct {
	sceneChanger SceneChanger
	deps         *Deps

	controller *game.Controller
	canvas     *screen.Surface
	input      *input.Poller
	chat       *ui.ChatLine
	netClient  *network.Client

	roster        []systems.RemoteState
	ticks         int
	lastSentX     float64
	lastSentY     float64
	sentOnce      bool
	gameOverTimer int
	lastScore     int
}

// NewWorldScene starts a level. client may be nil, or already connected by
// the connect scene; with deps.RelayAddress set a new client is dialed.
func NewWorldScene(sc SceneChanger, deps *Deps, client *network.Client) *WorldScene {
	ws := &WorldScene{
		sceneChanger: sc,
		deps:         deps,
		input:        input.NewPoller(),
		chat:         ui.NewChatLine(cfg.Network.MaxChatLength),
		netClient:    client,
	}

	// Preload so the first frames are not drawn without sprites
	if deps.Catalog != nil {
		if err := deps.Catalog.WaitAll(); err != nil {
			log.Printf("[assets] preload: %v", err)
		}
	}

	ws.controller = game.NewController(game.Options{
		Catalog: deps.Catalog,
		Level:   deps.Level,
		Scripts: deps.Scripts,
	})
	ws.canvas = screen.New(ws.controller.Width(), ws.controller.Height())

	events.On(ws.controller.World(), events.GameOverEvent, func(_ donburi.World, ev events.GameOver) {
		ws.gameOverTimer = cfg.HUD.GameOverBannerFrames
		ws.lastScore = ev.Score
		log.Printf("[game] game over, score %d", ev.Score)
	})

	if ws.netClient == nil && deps.RelayAddress != "" {
		codec := deps.Codec
		if codec == nil {
			codec = messages.JSON
		}
		ws.netClient = network.NewClient()
		ws.netClient.Connect(deps.RelayAddress, deps.Name, codec)
	}

	ws.input.Update()
	ws.input.Reset()
	return ws
}

func (ws *WorldScene) Update() {
	ws.pollTuning()
	ws.input.Update()

	if ws.chat.IsOpen() {
		if line, ok := ws.chat.Update(); ok && ws.netClient != nil {
			if err := ws.netClient.SendChat(line); err != nil {
				log.Printf("[client] chat not sent: %v", err)
			}
		}
	} else {
		if ws.input.JustPressed(cfg.ActionChat) && ws.online() {
			ws.chat.Open()
		} else if ws.input.JustPressed(cfg.ActionMenuSelect) && ws.controller.Paused() {
			ws.leave()
			return
		}
		for _, a := range ws.input.Commands() {
			ws.controller.Command(a)
		}
	}

	ws.syncPresence()
	ws.controller.Tick(ws.canvas)

	if ws.gameOverTimer > 0 {
		ws.gameOverTimer--
	}
	ws.ticks++
}

func (ws *WorldScene) Draw(scr *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	scr.Fill(color.Black)

	scr.DrawImage(ws.canvas.Image(), nil)

	if cfg.Debug.ShowHitboxes {
		drawHitboxes(scr, ws.controller.World())
	}
	drawRemoteLabels(scr, ws.roster)
	ws.drawSelfChat(scr)
	drawHUD(scr, ws.hudState())
	if ws.chat.IsOpen() {
		drawChatLine(scr, ws.chat.Text())
	}
	if ws.gameOverTimer > 0 {
		drawGameOver(scr, ws.lastScore)
	}
	if ws.controller.Paused() {
		drawPause(scr)
	}
}

func (ws *WorldScene) online() bool {
	return ws.netClient != nil && ws.netClient.State() == network.StateConnected
}

// syncPresence mirrors the roster into the world and sends the local
// position every PositionInterval ticks when it changed.
func (ws *WorldScene) syncPresence() {
	if ws.netClient == nil {
		return
	}

	players := ws.netClient.Roster()
	ws.roster = ws.roster[:0]
	for _, p := range players {
		ws.roster = append(ws.roster, systems.RemoteState{
			ID:   p.ID,
			Name: p.Name,
			X:    p.Pos[0],
			Y:    p.Pos[1],
			Chat: p.ChatMessage,
		})
	}
	ws.controller.SyncRemotePlayers(ws.roster)

	interval := max(cfg.Network.PositionInterval, 1)
	if ws.ticks%interval != 0 || !ws.online() {
		return
	}
	x, y, ok := ws.controller.PlayerPosition()
	if !ok || (ws.sentOnce && x == ws.lastSentX && y == ws.lastSentY) {
		return
	}
	if err := ws.netClient.SendPosition(x, y); err == nil {
		ws.lastSentX, ws.lastSentY, ws.sentOnce = x, y, true
	}
}

// pollTuning reloads the tuning file after the watcher saw it change.
func (ws *WorldScene) pollTuning() {
	w := ws.deps.Tuning
	if w == nil {
		return
	}
	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				ws.deps.Tuning = nil
				return
			}
			if err := cfg.LoadTuningFile(path); err != nil {
				log.Printf("[config] reload %s: %v", path, err)
				continue
			}
			ws.controller.ApplyTuning()
			log.Printf("[config] reloaded %s", path)
		case err, ok := <-w.Errors:
			if ok {
				log.Printf("[config] watch: %v", err)
			}
		default:
			return
		}
	}
}

func (ws *WorldScene) drawSelfChat(scr *ebiten.Image) {
	if ws.netClient == nil {
		return
	}
	self, ok := ws.netClient.Self()
	if !ok || self.ChatMessage == "" {
		return
	}
	x, y, ok := ws.controller.PlayerPosition()
	if !ok {
		return
	}
	drawLabel(scr, self.ChatMessage, x, y-14, cfg.HUD.ChatColor)
}

func (ws *WorldScene) hudState() hudState {
	st := hudState{
		Lives:  ws.controller.Lives(),
		Score:  ws.controller.Score(),
		Online: ws.netClient != nil,
	}
	if p := ws.controller.Player(); p != nil {
		player := components.Player.Get(p)
		clock := ws.controller.Clock()
		if player.Invincible {
			st.Invincible = player.InvincibleUntil - clock
		}
		if player.SpeedBoosted {
			st.SpeedBoost = player.BoostUntil - clock
		}
	}
	if ws.netClient != nil {
		st.NetStatus = ws.netClient.State().String()
		st.Players = len(ws.roster) + 1
	}
	return st
}

func (ws *WorldScene) leave() {
	if ws.netClient != nil {
		ws.netClient.Disconnect()
	}
	ws.canvas.Dispose()
	ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger, ws.deps))
}
