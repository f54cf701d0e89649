package components

import (
	cfg "github.com/automoto/pixelrun/config"
	"github.com/yohamta/donburi"
)

// InputData stores the commands applied during the current tick.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

func (i *InputData) Pressed(a cfg.ActionID) bool {
	return i.Current[a]
}

func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()
