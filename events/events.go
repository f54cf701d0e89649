// Package events defines the typed notifications raised by the game loop.
//
// Emit publishes and immediately processes an event, so every subscriber has
// run, in subscription order, before Emit returns. A panicking handler
// propagates to the caller of Emit.
package events

import (
	"github.com/automoto/pixelrun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type EntityDestroyed struct {
	Entity donburi.Entity
	Kind   string // "player", "enemy" or "powerup"
}

type PlayerDamaged struct {
	LivesLeft int
}

type GameOver struct {
	Score int
}

type PowerUpActivated struct {
	Kind  config.PowerUpKind
	Score int
}

type EnemyDefeated struct {
	Name  string
	Score int
}

type Restarted struct {
	Lives int
}

type PauseToggled struct {
	Paused bool
}

type PlayerFired struct {
	X, Y      float64
	Direction float64
}

var (
	EntityDestroyedEvent  = events.NewEventType[EntityDestroyed]()
	PlayerDamagedEvent    = events.NewEventType[PlayerDamaged]()
	GameOverEvent         = events.NewEventType[GameOver]()
	PowerUpActivatedEvent = events.NewEventType[PowerUpActivated]()
	EnemyDefeatedEvent    = events.NewEventType[EnemyDefeated]()
	RestartedEvent        = events.NewEventType[Restarted]()
	PauseToggledEvent     = events.NewEventType[PauseToggled]()
	PlayerFiredEvent      = events.NewEventType[PlayerFired]()
)

// Emit delivers ev to every subscriber of t before returning.
func Emit[T any](w donburi.World, t *events.EventType[T], ev T) {
	t.Publish(w, ev)
	t.ProcessEvents(w)
}

// On subscribes handler to t. There is no unsubscribe; handlers live as long as the world.
func On[T any](w donburi.World, t *events.EventType[T], handler func(w donburi.World, ev T)) {
	t.Subscribe(w, handler)
}
