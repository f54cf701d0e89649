package components

import "github.com/yohamta/donburi"

// RemotePlayerData is another player seen through the presence relay. It is
// drawn but never simulated or collided.
type RemotePlayerData struct {
	ID   string
	Name string
	Chat string
}

var RemotePlayer = donburi.NewComponentType[RemotePlayerData]()
