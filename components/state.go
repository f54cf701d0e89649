package components

import (
	"github.com/automoto/pixelrun/config"
	"github.com/yohamta/donburi"
)

// StateData selects the animation for an entity
type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int
}

// Set switches state and restarts the timer when the state changed.
func (s *StateData) Set(state config.StateID) {
	if s.CurrentState == state {
		s.StateTimer++
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = state
	s.StateTimer = 0
}

var State = donburi.NewComponentType[StateData]()
