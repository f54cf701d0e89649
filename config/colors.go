package config

// DefaultSpriteColor is used when a sprite request names no color
const DefaultSpriteColor = "default"

// GhostColor tints players received from the presence relay
const GhostColor = "ghost"

// SpriteColors maps a color name to the hue rotation, in degrees, applied when drawing.
var SpriteColors = map[string]float64{
	DefaultSpriteColor: 0,
	"red":              -120,
	"green":            120,
	"gold":             -80,
	"purple":           60,
	GhostColor:         180,
}

// HueRotation returns the hue rotation for a color name. Unknown names rotate by 0.
func HueRotation(name string) float64 {
	if deg, ok := SpriteColors[name]; ok {
		return deg
	}
	return 0
}
