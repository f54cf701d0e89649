package systems

import (
	"github.com/automoto/pixelrun/components"
	cfg "github.com/automoto/pixelrun/config"
	"github.com/yohamta/donburi"
)

// ApplyCommands makes cmds the pressed actions for this tick.
// Must run BEFORE UpdatePlayer in the system order.
func ApplyCommands(w donburi.World, cmds []cfg.ActionID) {
	input := getOrCreateInput(w)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for _, a := range cmds {
		if a > cfg.ActionNone && a < cfg.ActionCount {
			input.Current[a] = true
		}
	}
}

// GetInput returns the commands applied this tick.
func GetInput(w donburi.World) *components.InputData {
	return getOrCreateInput(w)
}

func getOrCreateInput(w donburi.World) *components.InputData {
	e, ok := components.Input.First(w)
	if !ok {
		e = w.Entry(w.Create(components.Input))
	}
	return components.Input.Get(e)
}
