package systems

import (
	"github.com/automoto/pixelrun/components"
	"github.com/automoto/pixelrun/shared/gamemath"
	"github.com/automoto/pixelrun/tags"
	"github.com/yohamta/donburi"
)

// CollidesWith reports whether two entities' hitboxes overlap. Touching
// edges do not count.
func CollidesWith(a, b *donburi.Entry) bool {
	return gamemath.Overlaps(components.Object.Get(a).Rect(), components.Object.Get(b).Rect())
}

// Contacts are the entities overlapping the player this tick.
type Contacts struct {
	Enemies  []*donburi.Entry
	PowerUps []*donburi.Entry
}

// FindPlayerContacts returns the active-world enemies and power-ups whose
// hitboxes overlap the player. Every candidate is tested exactly, so
// sub-pixel overlaps across broadphase cell edges are not missed.
func FindPlayerContacts(w donburi.World, player *donburi.Entry) Contacts {
	var c Contacts
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if CollidesWith(player, e) {
			c.Enemies = append(c.Enemies, e)
		}
	})
	tags.PowerUp.Each(w, func(e *donburi.Entry) {
		if CollidesWith(player, e) {
			c.PowerUps = append(c.PowerUps, e)
		}
	})
	return c
}
