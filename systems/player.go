package systems

import (
	"github.com/automoto/pixelrun/components"
	cfg "github.com/automoto/pixelrun/config"
	"github.com/automoto/pixelrun/events"
	"github.com/automoto/pixelrun/shared/gamemath"
	"github.com/automoto/pixelrun/tags"
	"github.com/yohamta/donburi"
)

// GetPlayer returns the player entry, or nil.
func GetPlayer(w donburi.World) *donburi.Entry {
	e, ok := tags.Player.First(w)
	if !ok {
		return nil
	}
	return e
}

// UpdatePlayer turns this tick's commands into player velocity.
func UpdatePlayer(w donburi.World) {
	e := GetPlayer(w)
	if e == nil || !components.Lifecycle.Get(e).Active() {
		return
	}

	input := GetInput(w)
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)

	handleMovementInput(input, player, physics)
	handleJumpInput(input, physics)

	if input.JustPressed(cfg.ActionFire) {
		obj := components.Object.Get(e)
		events.Emit(w, events.PlayerFiredEvent, events.PlayerFired{
			X:         obj.X + obj.W/2,
			Y:         obj.Y + obj.H/2,
			Direction: player.Direction,
		})
	}

	physics.SpeedY = gamemath.ApplyGravity(physics.SpeedY, physics.Gravity, physics.MaxFallSpeed)
	updatePlayerState(components.State.Get(e), physics)
}

func handleMovementInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData) {
	speed := player.CurrentMoveSpeed(cfg.Player.SpeedBoostMultiplier)
	left := input.Pressed(cfg.ActionMoveLeft)
	right := input.Pressed(cfg.ActionMoveRight)

	switch {
	case left && !right:
		physics.SpeedX = -speed
		player.Direction = cfg.DirectionLeft
	case right && !left:
		physics.SpeedX = speed
		player.Direction = cfg.DirectionRight
	}
}

// Jumping is only possible from the ground.
func handleJumpInput(input *components.InputData, physics *components.PhysicsData) {
	if input.Pressed(cfg.ActionJump) && physics.OnGround {
		physics.SpeedY -= cfg.Player.JumpSpeed
		physics.OnGround = false
	}
}

func updatePlayerState(state *components.StateData, physics *components.PhysicsData) {
	switch {
	case !physics.OnGround && physics.SpeedY < 0:
		state.Set(cfg.Jump)
	case !physics.OnGround:
		state.Set(cfg.Fall)
	case physics.SpeedX != 0:
		state.Set(cfg.Walk)
	default:
		state.Set(cfg.Idle)
	}
}
