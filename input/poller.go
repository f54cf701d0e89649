package input

import (
	cfg "github.com/automoto/pixelrun/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// heldCommands are forwarded every tick they are held
var heldCommands = []cfg.ActionID{
	cfg.ActionMoveLeft,
	cfg.ActionMoveRight,
	cfg.ActionJump,
	cfg.ActionFire,
}

// edgeCommands are forwarded only on the tick they are first pressed
var edgeCommands = []cfg.ActionID{
	cfg.ActionTogglePause,
	cfg.ActionRestart,
}

// Poller samples the bound keys and buttons once per tick.
type Poller struct {
	current    [cfg.ActionCount]bool
	previous   [cfg.ActionCount]bool
	gamepadIDs []ebiten.GamepadID
	cmds       []cfg.ActionID
}

func NewPoller() *Poller {
	return &Poller{}
}

// Update polls raw input. Call once per tick before reading any state.
func (p *Poller) Update() {
	// Swap buffers: current becomes previous, then zero out current
	p.previous = p.current
	p.current = [cfg.ActionCount]bool{}

	p.gamepadIDs = ebiten.AppendGamepadIDs(p.gamepadIDs[:0])

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				p.current[actionID] = true
			}
		}
		for _, gpID := range p.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					p.current[actionID] = true
				}
			}
		}
	}

	left, right, up, down := analogStickState(p.gamepadIDs)
	if left {
		p.current[cfg.ActionMoveLeft] = true
	}
	if right {
		p.current[cfg.ActionMoveRight] = true
	}
	if up {
		p.current[cfg.ActionMenuUp] = true
	}
	if down {
		p.current[cfg.ActionMenuDown] = true
	}
}

func (p *Poller) Pressed(a cfg.ActionID) bool {
	return p.current[a]
}

func (p *Poller) JustPressed(a cfg.ActionID) bool {
	return p.current[a] && !p.previous[a]
}

// Commands returns this tick's game commands. The slice is reused by the next call.
func (p *Poller) Commands() []cfg.ActionID {
	p.cmds = p.cmds[:0]
	for _, a := range heldCommands {
		if p.Pressed(a) {
			p.cmds = append(p.cmds, a)
		}
	}
	for _, a := range edgeCommands {
		if p.JustPressed(a) {
			p.cmds = append(p.cmds, a)
		}
	}
	return p.cmds
}

// Reset forgets held state so a key held across a scene change is not seen as a new press.
func (p *Poller) Reset() {
	p.previous = p.current
}

// analogStickState reads the left stick of every standard gamepad
func analogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone
	}
	return
}
