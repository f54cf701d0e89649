package components

import (
	cfg "github.com/automoto/pixelrun/config"
	"github.com/yohamta/donburi"
)

// LifecycleData moves Active -> Dying when an entity is marked destroyed and
// Dying -> Destroyed in the end-of-frame sweep.
type LifecycleData struct {
	State cfg.LifecycleID
}

func (l *LifecycleData) Active() bool {
	return l.State == cfg.Active
}

var Lifecycle = donburi.NewComponentType[LifecycleData]()
