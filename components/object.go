package components

import (
	"github.com/automoto/pixelrun/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the position and hitbox of an entity.
type ObjectData struct {
	*resolv.Object
}

// Rect returns the hitbox as a plain rectangle.
func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the broadphase shared by every object in the world.
var Space = donburi.NewComponentType[resolv.Space]()
