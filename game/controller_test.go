package game

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/pixelrun/assets"
	"github.com/automoto/pixelrun/components"
	cfg "github.com/automoto/pixelrun/config"
	"github.com/automoto/pixelrun/events"
	"github.com/automoto/pixelrun/render"
	"github.com/automoto/pixelrun/systems"
	"github.com/automoto/pixelrun/tags"
	"github.com/yohamta/donburi"
)

// flatLevel is an empty map with a floor and the player standing at (32, 288).
func flatLevel() *assets.Level {
	return &assets.Level{
		Name:        "flat",
		Width:       640,
		Height:      352,
		FloorY:      304,
		PlayerSpawn: assets.Spawn{X: 32, Y: 288},
	}
}

func newTestController(t *testing.T) *Controller {
	t.Helper()
	return NewController(Options{Level: flatLevel(), Width: 640, Height: 360, TPS: 60})
}

func countTag(w donburi.World, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func playerData(c *Controller) *components.PlayerData {
	return components.Player.Get(c.Player())
}

func TestEnemyHitCostsOneLife(t *testing.T) {
	c := newTestController(t)
	c.SpawnEnemy(40, 288, nil)

	c.Tick(nil)
	if c.Lives() != 2 {
		t.Fatalf("lives = %d, want 2", c.Lives())
	}
	if n := countTag(c.World(), tags.Enemy); n != 0 {
		t.Fatalf("enemy not swept, %d left", n)
	}

	c.Tick(nil)
	if c.Lives() != 2 {
		t.Fatalf("lives changed without a collision: %d", c.Lives())
	}
}

func TestDyingEnemyDoesNotDamage(t *testing.T) {
	c := newTestController(t)
	enemy := c.SpawnEnemy(40, 288, nil)
	systems.MarkDestroyed(c.World(), enemy)

	c.Tick(nil)
	if c.Lives() != cfg.Player.StartingLives {
		t.Fatalf("lives = %d, dying enemy should not damage", c.Lives())
	}
}

func TestInvinciblePlayerDefeatsEnemy(t *testing.T) {
	c := newTestController(t)
	p := playerData(c)
	p.Invincible = true
	p.InvincibleUntil = time.Hour

	var defeated int
	events.On(c.World(), events.EnemyDefeatedEvent, func(w donburi.World, ev events.EnemyDefeated) {
		defeated++
	})

	c.SpawnEnemy(40, 288, nil)
	c.Tick(nil)

	if c.Lives() != cfg.Player.StartingLives {
		t.Fatalf("lives = %d, invincible player took damage", c.Lives())
	}
	if c.Score() != cfg.Enemy.Score {
		t.Fatalf("score = %d, want %d", c.Score(), cfg.Enemy.Score)
	}
	if defeated != 1 {
		t.Fatalf("EnemyDefeated fired %d times", defeated)
	}
	if n := countTag(c.World(), tags.Enemy); n != 0 {
		t.Fatalf("%d enemies left", n)
	}
}

func TestLastLifeRestarts(t *testing.T) {
	c := newTestController(t)
	var order []string
	w := c.World()
	events.On(w, events.PlayerDamagedEvent, func(w donburi.World, ev events.PlayerDamaged) {
		order = append(order, "damaged")
	})
	events.On(w, events.GameOverEvent, func(w donburi.World, ev events.GameOver) {
		order = append(order, "gameover")
	})
	events.On(w, events.RestartedEvent, func(w donburi.World, ev events.Restarted) {
		order = append(order, "restarted")
	})

	components.GetGameState(w).Score = 500
	for i := 0; i < cfg.Player.StartingLives; i++ {
		c.SpawnEnemy(40, 288, nil)
		c.Tick(nil)
	}

	if c.State() != cfg.GameRunning {
		t.Fatalf("state = %v, want running", c.State())
	}
	if c.Lives() != 3 || c.Score() != 0 {
		t.Fatalf("after restart lives=%d score=%d, want 3/0", c.Lives(), c.Score())
	}
	want := []string{"damaged", "damaged", "damaged", "gameover", "restarted"}
	if len(order) != len(want) {
		t.Fatalf("events = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("events = %v, want %v", order, want)
		}
	}
	if c.Player() == nil {
		t.Fatal("player was not respawned")
	}
	if x, y, _ := c.PlayerPosition(); x != 32 || y != 288 {
		t.Fatalf("player respawned at (%v,%v), want (32,288)", x, y)
	}
}

func TestSimultaneousHitsStopAtZero(t *testing.T) {
	c := newTestController(t)
	for i := 0; i < 5; i++ {
		c.SpawnEnemy(36+float64(i), 288, nil)
	}
	restarts := 0
	events.On(c.World(), events.RestartedEvent, func(w donburi.World, ev events.Restarted) {
		restarts++
	})

	c.Tick(nil)
	if restarts != 1 {
		t.Fatalf("restarts = %d, want 1", restarts)
	}
	if c.Lives() != 3 {
		t.Fatalf("lives = %d, want 3", c.Lives())
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	c := newTestController(t)
	x0, _, _ := c.PlayerPosition()

	c.Command(cfg.ActionTogglePause)
	c.Tick(nil)
	if !c.Paused() {
		t.Fatal("not paused after togglePause")
	}

	c.Command(cfg.ActionMoveRight)
	c.Tick(nil)
	if x, _, _ := c.PlayerPosition(); x != x0 {
		t.Fatalf("player moved while paused: %v -> %v", x0, x)
	}
	clock := c.Clock()
	c.Tick(nil)
	if c.Clock() != clock {
		t.Fatal("clock advanced while paused")
	}

	c.Command(cfg.ActionTogglePause)
	c.Tick(nil)
	if c.Paused() {
		t.Fatal("still paused after second toggle")
	}
}

func TestRestartWhilePaused(t *testing.T) {
	c := newTestController(t)
	c.Tick(nil)
	components.GetGameState(c.World()).Lives = 1

	c.Command(cfg.ActionTogglePause)
	c.Tick(nil)
	c.Command(cfg.ActionRestart)
	c.Tick(nil)

	if c.State() != cfg.GameRunning || c.Lives() != 3 {
		t.Fatalf("state=%v lives=%d after restart, want running/3", c.State(), c.Lives())
	}
}

func TestCommandsApplyAtNextTick(t *testing.T) {
	c := newTestController(t)
	c.Command(cfg.ActionTogglePause)
	if c.Paused() {
		t.Fatal("command applied before Tick")
	}
	c.Tick(nil)
	if !c.Paused() {
		t.Fatal("command not applied by Tick")
	}
}

func TestMovementIsNotPersistent(t *testing.T) {
	c := newTestController(t)
	c.Tick(nil)
	x0, _, _ := c.PlayerPosition()

	c.Command(cfg.ActionMoveRight)
	c.Tick(nil)
	x1, _, _ := c.PlayerPosition()
	if x1-x0 != cfg.Player.MoveSpeed {
		t.Fatalf("moved %v, want %v", x1-x0, cfg.Player.MoveSpeed)
	}

	c.Tick(nil)
	if x2, _, _ := c.PlayerPosition(); x2 != x1 {
		t.Fatalf("player kept moving without a command: %v -> %v", x1, x2)
	}
	if speed := components.Physics.Get(c.Player()).SpeedX; speed != 0 {
		t.Fatalf("SpeedX = %v after integration, want 0", speed)
	}
}

func TestHorizontalClamp(t *testing.T) {
	c := newTestController(t)
	obj := components.Object.Get(c.Player())
	obj.X = 630

	c.Command(cfg.ActionMoveRight)
	c.Tick(nil)
	if obj.X != 640-obj.W {
		t.Fatalf("x = %v, want %v", obj.X, 640-obj.W)
	}

	obj.X = 1
	c.Command(cfg.ActionMoveLeft)
	c.Tick(nil)
	if obj.X != 0 {
		t.Fatalf("x = %v, want 0", obj.X)
	}
}

func TestJumpOnlyFromGround(t *testing.T) {
	c := newTestController(t)
	c.Tick(nil) // settle on the floor
	_, y0, _ := c.PlayerPosition()

	c.Command(cfg.ActionJump)
	c.Tick(nil)
	_, y1, _ := c.PlayerPosition()
	if y1 >= y0 {
		t.Fatalf("jump did not lift the player: %v -> %v", y0, y1)
	}

	speed := components.Physics.Get(c.Player()).SpeedY
	c.Command(cfg.ActionJump)
	c.Tick(nil)
	if got := components.Physics.Get(c.Player()).SpeedY; got < speed {
		t.Fatalf("mid-air jump changed SpeedY from %v to %v", speed, got)
	}
}

func TestInvincibilityLastsFiveSeconds(t *testing.T) {
	c := newTestController(t)
	c.SpawnPowerUp(36, 290, cfg.PowerUpInvincibility)

	c.Tick(nil)
	p := playerData(c)
	if !p.Invincible {
		t.Fatal("power-up did not make the player invincible")
	}
	activatedAt := c.Clock()
	if c.Score() != cfg.PowerUp.Score {
		t.Fatalf("score = %d, want %d", c.Score(), cfg.PowerUp.Score)
	}
	if n := countTag(c.World(), tags.PowerUp); n != 0 {
		t.Fatalf("power-up not removed, %d left", n)
	}

	ticks := int(5000 * time.Millisecond / (time.Second / 60))
	for i := 0; i < ticks-1; i++ {
		c.Tick(nil)
	}
	if !p.Invincible {
		t.Fatalf("invincibility cleared early at %v", c.Clock()-activatedAt)
	}

	c.Tick(nil)
	if p.Invincible {
		t.Fatalf("invincibility still set at %v", c.Clock()-activatedAt)
	}
	if c.Clock()-activatedAt != 5000*time.Millisecond {
		t.Fatalf("cleared after %v, want 5s", c.Clock()-activatedAt)
	}
}

func TestSpeedBoost(t *testing.T) {
	c := newTestController(t)
	c.SpawnPowerUp(36, 290, cfg.PowerUpSpeed)
	c.Tick(nil)
	if !playerData(c).SpeedBoosted {
		t.Fatal("speed power-up not applied")
	}

	x0, _, _ := c.PlayerPosition()
	c.Command(cfg.ActionMoveRight)
	c.Tick(nil)
	x1, _, _ := c.PlayerPosition()
	want := cfg.Player.MoveSpeed * cfg.Player.SpeedBoostMultiplier
	if math.Abs((x1-x0)-want) > 1e-9 {
		t.Fatalf("boosted move = %v, want %v", x1-x0, want)
	}
}

func TestPowerUpIgnoresInvincibility(t *testing.T) {
	c := newTestController(t)
	p := playerData(c)
	p.Invincible = true
	p.InvincibleUntil = time.Hour

	c.SpawnPowerUp(36, 290, cfg.PowerUpSpeed)
	c.Tick(nil)
	if !p.SpeedBoosted {
		t.Fatal("invincible player could not collect a power-up")
	}
}

func TestSubPixelOverlapAcrossCellEdge(t *testing.T) {
	c := newTestController(t)
	c.Tick(nil)
	components.Object.Get(c.Player()).X = 32.5
	c.SpawnEnemy(48, 288, nil)

	c.Tick(nil)
	if c.Lives() != cfg.Player.StartingLives-1 {
		t.Fatalf("lives = %d, a 0.5px overlap should cost a life", c.Lives())
	}
}

func TestSubPixelPowerUpPickup(t *testing.T) {
	c := newTestController(t)
	c.Tick(nil)
	components.Object.Get(c.Player()).X = 32.5
	c.SpawnPowerUp(48, 290, cfg.PowerUpSpeed)

	c.Tick(nil)
	if !playerData(c).SpeedBoosted {
		t.Fatal("power-up overlapping by 0.5px was not collected")
	}
}

func TestEdgeContactIsNotACollision(t *testing.T) {
	c := newTestController(t)
	c.Tick(nil)
	x, y, _ := c.PlayerPosition()
	c.SpawnEnemy(x+16, y, nil)

	c.Tick(nil)
	if c.Lives() != cfg.Player.StartingLives {
		t.Fatalf("edge contact cost a life, lives = %d", c.Lives())
	}
}

func TestRestartWithoutMap(t *testing.T) {
	c := NewController(Options{Width: 640, Height: 360, TPS: 60})
	c.SpawnEnemy(300, 100, nil)
	c.Restart()

	if n := countTag(c.World(), tags.Player); n != 1 {
		t.Fatalf("players = %d, want 1", n)
	}
	if n := countTag(c.World(), tags.Enemy); n != 0 {
		t.Fatalf("enemies = %d after restart without a map", n)
	}
	x, y, _ := c.PlayerPosition()
	if x != cfg.Player.DefaultSpawnX || y != cfg.Player.DefaultSpawnY {
		t.Fatalf("player at (%v,%v), want default spawn", x, y)
	}
	c.Tick(nil)
}

func TestFireEmitsEvent(t *testing.T) {
	c := newTestController(t)
	var fired []events.PlayerFired
	events.On(c.World(), events.PlayerFiredEvent, func(w donburi.World, ev events.PlayerFired) {
		fired = append(fired, ev)
	})

	c.Command(cfg.ActionFire)
	c.Tick(nil)
	c.Command(cfg.ActionFire)
	c.Tick(nil)
	if len(fired) != 1 {
		t.Fatalf("fired %d times for a held button, want 1", len(fired))
	}
	if fired[0].Direction != cfg.DirectionRight {
		t.Errorf("direction = %v", fired[0].Direction)
	}
}

func TestTickRendersAndSkipsUnresolvedSprites(t *testing.T) {
	catalog := assets.NewDefaultCatalog()
	if err := catalog.WaitAll(); err != nil {
		t.Fatalf("WaitAll: %v", err)
	}
	c := NewController(Options{Catalog: catalog, Level: flatLevel(), Width: 640, Height: 360, TPS: 60})
	c.SpawnPowerUp(300, 200, cfg.PowerUpSpeed)
	enemy := c.SpawnEnemy(500, 288, nil)
	components.Sprite.Get(enemy).Type = "missing"

	rec := render.NewRecorder(640, 360)
	c.Tick(rec)
	if rec.Clears != 1 {
		t.Fatalf("surface cleared %d times", rec.Clears)
	}
	// player + power-up; the enemy's sprite does not resolve
	if len(rec.Calls) != 2 {
		t.Fatalf("draw calls = %d, want 2", len(rec.Calls))
	}

	c.Tick(nil)
	if rec.Clears != 1 {
		t.Fatal("nil surface tick drew to the recorder")
	}
}

func TestScriptedLevelRuns(t *testing.T) {
	level, err := assets.LoadLevel(assets.FS(), cfg.Level)
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	c := NewController(Options{Level: level, Scripts: newScripts(), Width: 640, Height: 360, TPS: 60})
	if n := countTag(c.World(), tags.Enemy); n != len(level.EnemySpawns) {
		t.Fatalf("enemies = %d, want %d", n, len(level.EnemySpawns))
	}
	for i := 0; i < 120; i++ {
		c.Tick(nil)
	}
}
