package factory

import (
	"github.com/automoto/pixelrun/archetypes"
	"github.com/automoto/pixelrun/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace adds the broadphase singleton. Objects outside width x height
// are not registered in any cell and are never reported as contacts.
func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// GetSpace returns the world's broadphase, or nil when none was created.
func GetSpace(w donburi.World) *resolv.Space {
	e, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(e)
}

func addToSpace(w donburi.World, obj *resolv.Object) {
	if space := GetSpace(w); space != nil {
		space.Add(obj)
	}
}
