package systems

import (
	"github.com/automoto/pixelrun/components"
	cfg "github.com/automoto/pixelrun/config"
	"github.com/automoto/pixelrun/events"
	"github.com/yohamta/donburi"
)

// UpdatePowerUps advances the hover tween of each power-up. dt is in seconds.
func UpdatePowerUps(w donburi.World, dt float32) {
	components.PowerUp.Each(w, func(e *donburi.Entry) {
		powerUp := components.PowerUp.Get(e)
		if powerUp.Hover == nil {
			return
		}
		offset, _, done := powerUp.Hover.Update(dt)
		if done {
			powerUp.Hover.Reset()
		}
		components.Sprite.Get(e).OffsetY = float64(offset)
	})
}

// ActivatePowerUp applies the power-up to the player, awards its score and
// marks the power-up destroyed. Effects last until the game clock passes
// their deadline.
func ActivatePowerUp(w donburi.World, powerUpEntry, playerEntry *donburi.Entry) {
	lifecycle := components.Lifecycle.Get(powerUpEntry)
	if !lifecycle.Active() {
		return
	}
	powerUp := components.PowerUp.Get(powerUpEntry)
	player := components.Player.Get(playerEntry)

	gs := components.GetGameState(w)
	if gs == nil {
		return
	}
	clock := gs.Clock

	switch powerUp.Kind {
	case cfg.PowerUpSpeed:
		player.SpeedBoosted = true
		player.BoostUntil = clock + cfg.Player.SpeedBoostDuration
	case cfg.PowerUpInvincibility:
		player.Invincible = true
		player.InvincibleUntil = clock + cfg.Player.InvincibilityDuration
	}

	gs.Score += cfg.PowerUp.Score
	events.Emit(w, events.PowerUpActivatedEvent, events.PowerUpActivated{
		Kind:  powerUp.Kind,
		Score: gs.Score,
	})
	MarkDestroyed(w, powerUpEntry)
}
