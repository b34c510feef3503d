package input

import (
	cfg "github.com/automoto/dragonfight/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding represents the keys and buttons that trigger one action
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Config holds all input mappings
type Config struct {
	Bindings map[cfg.ActionID]Binding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// Ticks within which a second press of the same direction dashes
	DoubleTapWindow int
}

// Default is the global input configuration
var Default Config

func init() {
	Default = Config{
		AnalogDeadzone:  0.25,
		DoubleTapWindow: 20,
		Bindings: map[cfg.ActionID]Binding{
			cfg.ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
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
			cfg.ActionMoveUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			cfg.ActionMoveDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			cfg.ActionAttack: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			cfg.ActionModifier: {
				Keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
				// Shoulder buttons
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			cfg.ActionUltimate: {
				Keys: []ebiten.Key{ebiten.KeyX},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			cfg.ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape},
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
			cfg.ActionStart: {
				Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			cfg.ActionUpgrade1: {
				Keys: []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyNumpad1},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			cfg.ActionUpgrade2: {
				Keys: []ebiten.Key{ebiten.KeyDigit2, ebiten.KeyNumpad2},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			cfg.ActionUpgrade3: {
				Keys: []ebiten.Key{ebiten.KeyDigit3, ebiten.KeyNumpad3},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
		},
	}
}
