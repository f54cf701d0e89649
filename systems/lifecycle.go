package systems

import (
	"github.com/automoto/pixelrun/components"
	cfg "github.com/automoto/pixelrun/config"
	"github.com/automoto/pixelrun/events"
	"github.com/automoto/pixelrun/systems/factory"
	"github.com/automoto/pixelrun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// MarkDestroyed moves an active entity to Dying and notifies subscribers.
// The sweep removes it at the end of the tick. Marking twice is a no-op.
func MarkDestroyed(w donburi.World, e *donburi.Entry) {
	lifecycle := components.Lifecycle.Get(e)
	if lifecycle.State != cfg.Active {
		return
	}
	lifecycle.State = cfg.Dying
	events.Emit(w, events.EntityDestroyedEvent, events.EntityDestroyed{
		Entity: e.Entity(),
		Kind:   entityKind(e),
	})
}

// SweepDestroyed removes every Dying entity from the space and the world.
func SweepDestroyed(w donburi.World) {
	var dying []*donburi.Entry
	components.Lifecycle.Each(w, func(e *donburi.Entry) {
		if components.Lifecycle.Get(e).State == cfg.Dying {
			dying = append(dying, e)
		}
	})

	space := factory.GetSpace(w)
	for _, e := range dying {
		components.Lifecycle.Get(e).State = cfg.Destroyed
		removeEntity(w, e, space)
	}
}

// ClearEntities removes the player, enemies, power-ups and remote players.
// Singletons such as the space and the game state stay.
func ClearEntities(w donburi.World) {
	var entries []*donburi.Entry
	components.Object.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})

	space := factory.GetSpace(w)
	for _, e := range entries {
		removeEntity(w, e, space)
	}
}

func removeEntity(w donburi.World, e *donburi.Entry, space *resolv.Space) {
	if space != nil {
		if obj := components.Object.Get(e); obj != nil && obj.Space != nil {
			space.Remove(obj.Object)
		}
	}
	w.Remove(e.Entity())
}

func entityKind(e *donburi.Entry) string {
	switch {
	case e.HasComponent(tags.Player):
		return "player"
	case e.HasComponent(tags.Enemy):
		return "enemy"
	case e.HasComponent(tags.PowerUp):
		return "powerup"
	}
	return "entity"
}
