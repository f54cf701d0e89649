package archetypes

import (
	"github.com/automoto/pixelrun/components"
	"github.com/automoto/pixelrun/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Sprite,
		components.State,
		components.Lifecycle,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Physics,
		components.Sprite,
		components.State,
		components.Lifecycle,
	)
	PowerUp = newArchetype(
		tags.PowerUp,
		components.PowerUp,
		components.Object,
		components.Sprite,
		components.Lifecycle,
	)
	RemotePlayer = newArchetype(
		tags.RemotePlayer,
		components.RemotePlayer,
		components.Object,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	GameState = newArchetype(
		components.GameState,
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
