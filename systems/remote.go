package systems

import (
	"github.com/automoto/pixelrun/components"
	"github.com/automoto/pixelrun/systems/factory"
	"github.com/automoto/pixelrun/tags"
	"github.com/yohamta/donburi"
)

// RemoteState is one entry of the presence roster.
type RemoteState struct {
	ID   string
	Name string
	X, Y float64
	Chat string
}

// SyncRemotePlayers makes the remote player entities match roster: new ids
// are spawned, known ids are moved, missing ids are removed.
func SyncRemotePlayers(w donburi.World, roster []RemoteState) {
	existing := make(map[string]*donburi.Entry)
	tags.RemotePlayer.Each(w, func(e *donburi.Entry) {
		existing[components.RemotePlayer.Get(e).ID] = e
	})

	for _, r := range roster {
		e, ok := existing[r.ID]
		if !ok {
			e = factory.CreateRemotePlayer(w, r.ID, r.Name, r.X, r.Y)
		}
		delete(existing, r.ID)

		obj := components.Object.Get(e)
		obj.X, obj.Y = r.X, r.Y
		remote := components.RemotePlayer.Get(e)
		remote.Name = r.Name
		remote.Chat = r.Chat
	}

	for _, e := range existing {
		w.Remove(e.Entity())
	}
}

// RemotePlayers returns the remote players currently in the world.
func RemotePlayers(w donburi.World) []RemoteState {
	var out []RemoteState
	tags.RemotePlayer.Each(w, func(e *donburi.Entry) {
		remote := components.RemotePlayer.Get(e)
		obj := components.Object.Get(e)
		out = append(out, RemoteState{
			ID:   remote.ID,
			Name: remote.Name,
			X:    obj.X,
			Y:    obj.Y,
			Chat: remote.Chat,
		})
	})
	return out
}
