// Package game runs the platformer: it owns the world, applies queued
// commands and advances one tick at a time.
package game

import (
	"time"

	"github.com/automoto/pixelrun/ai"
	"github.com/automoto/pixelrun/assets"
	"github.com/automoto/pixelrun/components"
	cfg "github.com/automoto/pixelrun/config"
	"github.com/automoto/pixelrun/events"
	"github.com/automoto/pixelrun/render"
	"github.com/automoto/pixelrun/systems"
	"github.com/automoto/pixelrun/systems/factory"
	"github.com/yohamta/donburi"
)

// spaceCellSize is the broadphase cell size in pixels.
const spaceCellSize = 16

// Options configures a Controller. Zero sizes fall back to config.C.
type Options struct {
	Catalog *assets.Catalog // nil disables rendering
	Level   *assets.Level   // nil runs without a map
	Scripts *ai.Scripts     // required for script enemies
	Width   int
	Height  int
	TPS     int
}

// Controller owns every entity and the pause/restart state machine. All
// methods must be called from the goroutine that calls Tick.
type Controller struct {
	world   donburi.World
	opts    Options
	pending []cfg.ActionID
	cmds    []cfg.ActionID
}

func NewController(opts Options) *Controller {
	if opts.Width <= 0 {
		opts.Width = cfg.C.Width
	}
	if opts.Height <= 0 {
		opts.Height = cfg.C.Height
	}
	if opts.TPS <= 0 {
		opts.TPS = cfg.C.TPS
	}

	c := &Controller{
		world: donburi.NewWorld(),
		opts:  opts,
	}

	spaceW, spaceH := opts.Width, opts.Height
	if opts.Level != nil {
		spaceW = max(spaceW, opts.Level.Width)
		spaceH = max(spaceH, opts.Level.Height)
	}
	factory.CreateSpace(c.world, spaceW, spaceH, spaceCellSize, spaceCellSize)
	factory.CreateLevel(c.world, opts.Level)
	factory.CreateGameState(c.world)
	systems.ApplyCommands(c.world, nil)
	factory.SpawnLevel(c.world, opts.Level, opts.Scripts)

	return c
}

// Command queues an action for the next Tick.
func (c *Controller) Command(action cfg.ActionID) {
	c.pending = append(c.pending, action)
}

// Tick applies queued commands and, unless paused, runs one frame:
// update, integrate, floor clamp, clock and effects, collisions, render, sweep.
// surface may be nil to simulate without drawing.
func (c *Controller) Tick(surface render.Surface) {
	c.cmds, c.pending = c.pending, c.cmds[:0]
	gs := c.gameState()

	restart := false
	for _, a := range c.cmds {
		switch a {
		case cfg.ActionTogglePause:
			c.TogglePause()
		case cfg.ActionRestart:
			restart = true
		}
	}
	if restart {
		c.Restart()
	}
	if gs.State != cfg.GameRunning {
		return
	}

	w := c.world
	systems.ApplyCommands(w, c.cmds)
	systems.UpdatePlayer(w)
	systems.UpdateEnemies(w)
	systems.UpdatePowerUps(w, float32(1)/float32(c.opts.TPS))
	systems.UpdatePhysics(w, float64(c.opts.Width))
	if level := c.opts.Level; level != nil {
		systems.UpdateFloor(w, level.FloorY, true)
	}
	systems.AdvanceClock(w, c.opts.TPS)
	systems.UpdateEffects(w)

	if c.collide() {
		events.Emit(w, events.GameOverEvent, events.GameOver{Score: gs.Score})
		c.Restart()
	}

	systems.UpdateSprites(w)
	if surface != nil && c.opts.Catalog != nil {
		systems.Render(w, c.opts.Catalog, surface)
	}
	systems.SweepDestroyed(w)
}

// collide applies the contact policy and reports whether lives ran out.
func (c *Controller) collide() bool {
	w := c.world
	playerEntry := systems.GetPlayer(w)
	if playerEntry == nil || !components.Lifecycle.Get(playerEntry).Active() {
		return false
	}
	gs := c.gameState()
	player := components.Player.Get(playerEntry)
	contacts := systems.FindPlayerContacts(w, playerEntry)

	for _, enemyEntry := range contacts.Enemies {
		if !components.Lifecycle.Get(enemyEntry).Active() {
			continue
		}
		if player.Invincible {
			gs.Score += cfg.Enemy.Score
			systems.MarkDestroyed(w, enemyEntry)
			events.Emit(w, events.EnemyDefeatedEvent, events.EnemyDefeated{
				Name:  components.Enemy.Get(enemyEntry).Name,
				Score: gs.Score,
			})
			continue
		}

		if gs.Lives > 0 {
			gs.Lives--
		}
		events.Emit(w, events.PlayerDamagedEvent, events.PlayerDamaged{LivesLeft: gs.Lives})
		systems.MarkDestroyed(w, enemyEntry)
		if gs.Lives == 0 {
			return true
		}
	}

	for _, powerUpEntry := range contacts.PowerUps {
		systems.ActivatePowerUp(w, powerUpEntry, playerEntry)
	}
	return false
}

// TogglePause switches between running and paused.
func (c *Controller) TogglePause() {
	gs := c.gameState()
	switch gs.State {
	case cfg.GameRunning:
		gs.State = cfg.GamePaused
	case cfg.GamePaused:
		gs.State = cfg.GameRunning
	default:
		return
	}
	events.Emit(c.world, events.PauseToggledEvent, events.PauseToggled{Paused: gs.State == cfg.GamePaused})
}

// Restart clears every entity, resets lives, score and clock, and respawns
// from the current map. Without a map only the player is spawned.
func (c *Controller) Restart() {
	w := c.world
	gs := c.gameState()
	gs.State = cfg.GameRestarting

	systems.ClearEntities(w)
	gs.Lives = cfg.Player.StartingLives
	gs.Score = 0
	gs.Tick = 0
	gs.Clock = 0
	systems.ApplyCommands(w, nil)
	factory.SpawnLevel(w, c.opts.Level, c.opts.Scripts)

	gs.State = cfg.GameRunning
	events.Emit(w, events.RestartedEvent, events.Restarted{Lives: gs.Lives})
}

// SpawnEnemy adds an enemy at x, y. A nil strategy stands still.
func (c *Controller) SpawnEnemy(x, y float64, strategy ai.Strategy) *donburi.Entry {
	return factory.CreateEnemy(c.world, x, y, "", strategy)
}

func (c *Controller) SpawnPowerUp(x, y float64, kind cfg.PowerUpKind) *donburi.Entry {
	return factory.CreatePowerUp(c.world, x, y, kind)
}

// SyncRemotePlayers mirrors the presence roster into the world.
func (c *Controller) SyncRemotePlayers(roster []systems.RemoteState) {
	systems.SyncRemotePlayers(c.world, roster)
}

// ApplyTuning pushes reloaded config values into the live entities.
func (c *Controller) ApplyTuning() {
	systems.ApplyTuning(c.world)
}

func (c *Controller) World() donburi.World { return c.world }

// Player returns the player entry, or nil while none exists.
func (c *Controller) Player() *donburi.Entry { return systems.GetPlayer(c.world) }

func (c *Controller) State() cfg.GameStateID { return c.gameState().State }
func (c *Controller) Paused() bool           { return c.State() == cfg.GamePaused }
func (c *Controller) Lives() int             { return c.gameState().Lives }
func (c *Controller) Score() int             { return c.gameState().Score }
func (c *Controller) Clock() time.Duration   { return c.gameState().Clock }
func (c *Controller) Level() *assets.Level   { return c.opts.Level }
func (c *Controller) Width() int             { return c.opts.Width }
func (c *Controller) Height() int            { return c.opts.Height }

// PlayerPosition returns the player's top-left corner.
func (c *Controller) PlayerPosition() (x, y float64, ok bool) {
	p := c.Player()
	if p == nil {
		return 0, 0, false
	}
	obj := components.Object.Get(p)
	return obj.X, obj.Y, true
}

func (c *Controller) gameState() *components.GameStateData {
	return components.GetGameState(c.world)
}
