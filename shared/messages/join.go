package messages

// Hello sets the sender's display name.
func Hello(name string) Envelope {
	return Envelope{Type: TypeHello, Name: name}
}

// CurrentPlayer tells a newcomer who it is.
func CurrentPlayer(p Player) Envelope {
	return Envelope{Type: TypeCurrentPlayer, Player: &p}
}

// ExistingPlayers lists everyone already connected.
func ExistingPlayers(players []Player) Envelope {
	return Envelope{Type: TypeExistingPlayers, Players: players}
}

func NewPlayer(p Player) Envelope {
	return Envelope{Type: TypeNewPlayer, Player: &p}
}

func PlayerDisconnected(id string) Envelope {
	return Envelope{Type: TypePlayerDisconnected, PlayerID: id}
}
