package systems

import (
	"github.com/automoto/pixelrun/components"
	"github.com/automoto/pixelrun/shared/gamemath"
	"github.com/automoto/pixelrun/tags"
	"github.com/yohamta/donburi"
)

// Integrate moves an object by its velocity and keeps it inside
// [0, canvasWidth - W] horizontally. There is no vertical clamp here.
func Integrate(obj *components.ObjectData, physics *components.PhysicsData, canvasWidth float64) {
	obj.X += physics.SpeedX
	obj.Y += physics.SpeedY
	obj.X = gamemath.Clamp(obj.X, 0, canvasWidth-obj.W)
	if obj.Space != nil {
		obj.Update()
	}
}

// ClampToFloor stops an object from sinking below floorY and sets OnGround.
func ClampToFloor(obj *components.ObjectData, physics *components.PhysicsData, floorY float64) {
	if obj.Y+obj.H >= floorY && physics.SpeedY >= 0 {
		obj.Y = floorY - obj.H
		physics.SpeedY = 0
		physics.OnGround = true
		if obj.Space != nil {
			obj.Update()
		}
		return
	}
	physics.OnGround = false
}

// UpdatePhysics integrates every simulated entity. Player horizontal speed
// is reset after integration, so movement stops unless a move command
// arrives every tick.
func UpdatePhysics(w donburi.World, canvasWidth float64) {
	components.Physics.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		physics := components.Physics.Get(e)
		Integrate(obj, physics, canvasWidth)
		if e.HasComponent(tags.Player) {
			physics.SpeedX = 0
		}
	})
}

// UpdateFloor applies the current map's floor. Without a map nothing is clamped.
func UpdateFloor(w donburi.World, floorY float64, hasFloor bool) {
	if !hasFloor {
		return
	}
	components.Physics.Each(w, func(e *donburi.Entry) {
		ClampToFloor(components.Object.Get(e), components.Physics.Get(e), floorY)
	})
}
