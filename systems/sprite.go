package systems

import (
	"github.com/automoto/pixelrun/components"
	cfg "github.com/automoto/pixelrun/config"
	"github.com/automoto/pixelrun/tags"
	"github.com/yohamta/donburi"
)

// invincibleBlinkTicks is how long the player stays visible or hidden while blinking.
const invincibleBlinkTicks = 4

// UpdateSprites picks the tile each entity shows this tick.
func UpdateSprites(w donburi.World) {
	tick := 0
	if gs := components.GetGameState(w); gs != nil {
		tick = gs.Tick
	}

	tags.Player.Each(w, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		sprite := components.Sprite.Get(e)
		sprite.Index = animationFrame(cfg.SpritePlayer, components.State.Get(e), player.Direction)
		sprite.Hidden = player.Invincible && (tick/invincibleBlinkTicks)%2 == 1
	})

	tags.Enemy.Each(w, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		sprite := components.Sprite.Get(e)
		sprite.Index = animationFrame(cfg.SpriteEnemy, components.State.Get(e), enemy.Direction)
	})
}

func animationFrame(spriteType string, state *components.StateData, direction float64) int {
	def, ok := cfg.SpriteAnimations[spriteType][state.CurrentState]
	if !ok {
		def = cfg.SpriteAnimations[spriteType][cfg.Idle]
	}
	frame := def.Frame(state.StateTimer)
	if direction < 0 {
		frame += cfg.FacingLeftOffset[spriteType]
	}
	return frame
}
