package systems

import (
	"github.com/automoto/pixelrun/components"
	cfg "github.com/automoto/pixelrun/config"
	"github.com/automoto/pixelrun/tags"
	"github.com/yohamta/donburi"
)

// ApplyTuning copies the current config values that entities cache at spawn
// into the live player and enemies. Patrol speed stays with the strategy
// until the next restart.
func ApplyTuning(w donburi.World) {
	tags.Player.Each(w, func(e *donburi.Entry) {
		components.Player.Get(e).MoveSpeed = cfg.Player.MoveSpeed
		physics := components.Physics.Get(e)
		physics.Gravity = cfg.Player.Gravity
		physics.MaxFallSpeed = cfg.Player.MaxFallSpeed
	})
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		physics.Gravity = cfg.Enemy.Gravity
		physics.MaxFallSpeed = cfg.Enemy.MaxFallSpeed
	})
}
