package messages

// Move reports the sender's position.
func Move(x, y float64) Envelope {
	return Envelope{Type: TypeMove, Pos: []float64{x, y}}
}

// Chat sends a line of chat. The relay fills in PlayerID when relaying it.
func Chat(text string) Envelope {
	return Envelope{Type: TypeChat, ChatMessage: text}
}

// ChatFrom is a relayed chat line. An empty text clears the player's line.
func ChatFrom(id, text string) Envelope {
	return Envelope{Type: TypeChat, PlayerID: id, ChatMessage: text}
}

func PlayerMoved(p Player) Envelope {
	return Envelope{Type: TypePlayerMoved, Player: &p}
}

// Position returns the coordinates of a move frame.
func (e Envelope) Position() (x, y float64, ok bool) {
	if len(e.Pos) != 2 {
		return 0, 0, false
	}
	return e.Pos[0], e.Pos[1], true
}
