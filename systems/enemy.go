package systems

import (
	"github.com/automoto/pixelrun/ai"
	"github.com/automoto/pixelrun/components"
	cfg "github.com/automoto/pixelrun/config"
	"github.com/automoto/pixelrun/shared/gamemath"
	"github.com/automoto/pixelrun/tags"
	"github.com/yohamta/donburi"
)

// UpdateEnemies asks each active enemy's strategy for its velocity.
func UpdateEnemies(w donburi.World) {
	ctx := ai.Context{}
	if gs := components.GetGameState(w); gs != nil {
		ctx.Tick = gs.Tick
	}
	if p := GetPlayer(w); p != nil && components.Lifecycle.Get(p).Active() {
		obj := components.Object.Get(p)
		ctx.PlayerX, ctx.PlayerY, ctx.HasPlayer = obj.X, obj.Y, true
	}

	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if !components.Lifecycle.Get(e).Active() {
			return
		}
		enemy := components.Enemy.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		ctx.X, ctx.Y = obj.X, obj.Y
		v := enemy.Strategy.Step(ctx)
		physics.SpeedX = v.X
		if v.Y != 0 {
			physics.SpeedY = v.Y
		}
		if v.X < 0 {
			enemy.Direction = cfg.DirectionLeft
		} else if v.X > 0 {
			enemy.Direction = cfg.DirectionRight
		}

		physics.SpeedY = gamemath.ApplyGravity(physics.SpeedY, physics.Gravity, physics.MaxFallSpeed)

		state := components.State.Get(e)
		if physics.SpeedX != 0 {
			state.Set(cfg.Walk)
		} else {
			state.Set(cfg.Idle)
		}
	})
}
