package config

// StateID selects an animation for an entity
type StateID int

const (
	StateNone StateID = iota
	Idle
	Walk
	Jump
	Fall
)

// GameStateID is the controller state machine
type GameStateID int

const (
	GameRunning GameStateID = iota
	GamePaused
	GameRestarting
)

func (s GameStateID) String() string {
	switch s {
	case GameRunning:
		return "running"
	case GamePaused:
		return "paused"
	case GameRestarting:
		return "restarting"
	}
	return "unknown"
}

// LifecycleID is the lifecycle of a game entity
type LifecycleID int

const (
	Active LifecycleID = iota
	Dying
	Destroyed
)

func (l LifecycleID) String() string {
	switch l {
	case Active:
		return "active"
	case Dying:
		return "dying"
	case Destroyed:
		return "destroyed"
	}
	return "unknown"
}

// PowerUpKind names the effect a power-up applies
type PowerUpKind string

const (
	PowerUpSpeed         PowerUpKind = "speed"
	PowerUpInvincibility PowerUpKind = "invincibility"
)
