package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction float64 // config.DirectionLeft or config.DirectionRight
	MoveSpeed float64

	Invincible      bool
	InvincibleUntil time.Duration // game clock

	SpeedBoosted bool
	BoostUntil   time.Duration // game clock
}

// CurrentMoveSpeed is the move speed including an active boost.
func (p *PlayerData) CurrentMoveSpeed(multiplier float64) float64 {
	if p.SpeedBoosted {
		return p.MoveSpeed * multiplier
	}
	return p.MoveSpeed
}

var Player = donburi.NewComponentType[PlayerData]()
