// Package input turns keyboard and gamepad state into config.ActionID commands.
package input

import (
	cfg "github.com/automoto/pixelrun/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding represents the keys and buttons that trigger one action
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings holds all input mappings
var Bindings map[cfg.ActionID]Binding

func init() {
	Bindings = map[cfg.ActionID]Binding{
		cfg.ActionMoveLeft: {
			Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			// D-pad Left (analog stick handled separately)
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftLeft,
			},
		},
		cfg.ActionMoveRight: {
			Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftRight,
			},
		},
		cfg.ActionJump: {
			Keys: []ebiten.Key{ebiten.KeyX, ebiten.KeyW, ebiten.KeyUp},
			// A / Cross button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightBottom,
			},
		},
		cfg.ActionFire: {
			Keys: []ebiten.Key{ebiten.KeyZ, ebiten.KeySpace},
			// X / Square button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightLeft,
			},
		},
		cfg.ActionTogglePause: {
			Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
			// Start / Options button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonCenterRight,
			},
		},
		cfg.ActionRestart: {
			Keys: []ebiten.Key{ebiten.KeyR},
			// Back / Share button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonCenterLeft,
			},
		},
		cfg.ActionChat: {
			Keys: []ebiten.Key{ebiten.KeyT},
		},
		cfg.ActionMenuUp: {
			Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftTop,
			},
		},
		cfg.ActionMenuDown: {
			Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftBottom,
			},
		},
		cfg.ActionMenuSelect: {
			Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightBottom,
			},
		},
		cfg.ActionMenuBack: {
			Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace},
			// B / Circle button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightRight,
			},
		},
	}
}
