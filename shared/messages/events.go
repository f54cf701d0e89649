// Package messages defines the frames exchanged with the presence relay.
// Both the relay and the game import it, so it stays free of ebiten.
package messages

// Client to relay
const (
	TypeHello = "hello"
	TypeMove  = "move"
	TypeChat  = "chat"
)

// Relay to client. Chat lines are relayed with TypeChat as well.
const (
	TypeCurrentPlayer      = "currentPlayer"
	TypeExistingPlayers    = "existingPlayers"
	TypeNewPlayer          = "newPlayer"
	TypePlayerMoved        = "playerMoved"
	TypePlayerDisconnected = "playerDisconnected"
)

// Player is the relay's view of one connection
type Player struct {
	ID          string     `json:"id" msgpack:"id"`
	Name        string     `json:"name" msgpack:"name"`
	Pos         [2]float64 `json:"pos" msgpack:"pos"`
	ChatMessage string     `json:"chatMessage,omitempty" msgpack:"chatMessage,omitempty"`
}

// Envelope is every frame on the wire. Only the fields used by Type are set.
type Envelope struct {
	Type        string    `json:"type" msgpack:"type"`
	Name        string    `json:"name,omitempty" msgpack:"name,omitempty"`
	Pos         []float64 `json:"pos,omitempty" msgpack:"pos,omitempty"`
	PlayerID    string    `json:"playerId,omitempty" msgpack:"playerId,omitempty"`
	ChatMessage string    `json:"chatMessage,omitempty" msgpack:"chatMessage,omitempty"`
	Player      *Player   `json:"player,omitempty" msgpack:"player,omitempty"`
	Players     []Player  `json:"players,omitempty" msgpack:"players,omitempty"`
}
