package systems

import (
	"time"

	"github.com/automoto/pixelrun/components"
	"github.com/automoto/pixelrun/tags"
	"github.com/yohamta/donburi"
)

// TickDuration is the game time of one tick at tps ticks per second.
func TickDuration(tick, tps int) time.Duration {
	if tps <= 0 {
		return 0
	}
	return time.Duration(tick) * time.Second / time.Duration(tps)
}

// AdvanceClock counts one tick. The clock is derived from the tick count so
// it does not drift.
func AdvanceClock(w donburi.World, tps int) {
	gs := components.GetGameState(w)
	if gs == nil {
		return
	}
	gs.Tick++
	gs.Clock = TickDuration(gs.Tick, tps)
}

// UpdateEffects clears timed power-up effects whose deadline has passed.
func UpdateEffects(w donburi.World) {
	gs := components.GetGameState(w)
	if gs == nil {
		return
	}
	tags.Player.Each(w, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if player.Invincible && gs.Clock >= player.InvincibleUntil {
			player.Invincible = false
		}
		if player.SpeedBoosted && gs.Clock >= player.BoostUntil {
			player.SpeedBoosted = false
		}
	})
}
