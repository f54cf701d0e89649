package config

// AnimationDef is a run of tiles in a sprite sheet. Speed is ticks per frame;
// zero holds the first frame.
type AnimationDef struct {
	First int
	Last  int
	Speed int
}

// Frame returns the tile index to show at the given tick
func (a AnimationDef) Frame(tick int) int {
	if a.Speed <= 0 || a.Last <= a.First {
		return a.First
	}
	n := a.Last - a.First + 1
	return a.First + (tick/a.Speed)%n
}

// SpriteAnimations maps a sprite type to its animation definitions.
// Frames for a left-facing sprite are offset by FacingLeftOffset.
var SpriteAnimations = map[string]map[StateID]AnimationDef{
	SpritePlayer: {
		Idle: {First: 0, Last: 0},
		Walk: {First: 0, Last: 3, Speed: 6},
		Jump: {First: 1, Last: 1},
		Fall: {First: 2, Last: 2},
	},
	SpriteEnemy: {
		Idle: {First: 0, Last: 0},
		Walk: {First: 0, Last: 1, Speed: 12},
	},
}

// FacingLeftOffset is added to the frame index of sprites facing left
var FacingLeftOffset = map[string]int{
	SpritePlayer: 4,
}

// PowerUpTiles maps a power-up kind to its tile in the power-up sheet
var PowerUpTiles = map[PowerUpKind]int{
	PowerUpSpeed:         0,
	PowerUpInvincibility: 1,
}
