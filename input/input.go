// Package input turns keyboard and gamepad state into per-tick actions and
// the player intent the simulation consumes.
package input

import (
	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/features/math"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

var directions = [...]struct {
	action cfg.ActionID
	dir    math.Vec2
}{
	{cfg.ActionMoveLeft, math.Vec2{X: -1, Y: 0}},
	{cfg.ActionMoveRight, math.Vec2{X: 1, Y: 0}},
	{cfg.ActionMoveUp, math.Vec2{X: 0, Y: -1}},
	{cfg.ActionMoveDown, math.Vec2{X: 0, Y: 1}},
}

// State is a double-buffered action snapshot plus the double-tap tracker.
type State struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	tick    int
	lastTap [len(directions)]int
	dash    *math.Vec2
}

func NewState() *State {
	s := &State{}
	for i := range s.lastTap {
		s.lastTap[i] = -1 << 30
	}
	return s
}

// Poll reads the devices for this tick.
func (s *State) Poll() {
	var current [cfg.ActionCount]bool

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Default.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					current[actionID] = true
				}
			}
		}
	}

	// Merge analog stick into directional actions
	deadzone := Default.AnalogDeadzone
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if horizontal < -deadzone {
			current[cfg.ActionMoveLeft] = true
		}
		if horizontal > deadzone {
			current[cfg.ActionMoveRight] = true
		}
		if vertical < -deadzone {
			current[cfg.ActionMoveUp] = true
		}
		if vertical > deadzone {
			current[cfg.ActionMoveDown] = true
		}
	}

	s.Step(current)
}

// Step swaps the buffers and records direction taps. Poll calls it with the
// device state; tests call it directly.
func (s *State) Step(current [cfg.ActionCount]bool) {
	s.Previous = s.Current
	s.Current = current
	s.tick++
	s.dash = nil

	for i, d := range directions {
		if !s.JustPressed(d.action) {
			continue
		}
		if s.tick-s.lastTap[i] <= Default.DoubleTapWindow {
			dir := d.dir
			s.dash = &dir
			s.lastTap[i] = -1 << 30
			continue
		}
		s.lastTap[i] = s.tick
	}
}

func (s *State) Pressed(id cfg.ActionID) bool {
	return s.Current[id]
}

// JustPressed reports a press that started this tick.
func (s *State) JustPressed(id cfg.ActionID) bool {
	return s.Current[id] && !s.Previous[id]
}

// Intent builds the player's request for the current tick. Attacks trigger on
// the press; the modifier makes an attack strong and otherwise holds a block.
func (s *State) Intent() components.IntentData {
	var in components.IntentData

	if s.Pressed(cfg.ActionMoveLeft) {
		in.MoveX--
	}
	if s.Pressed(cfg.ActionMoveRight) {
		in.MoveX++
	}
	if s.Pressed(cfg.ActionMoveUp) {
		in.MoveY--
	}
	if s.Pressed(cfg.ActionMoveDown) {
		in.MoveY++
	}

	modifier := s.Pressed(cfg.ActionModifier)
	in.Attack = s.JustPressed(cfg.ActionAttack)
	in.Strong = in.Attack && modifier
	in.Block = modifier && !in.Attack
	in.Ultimate = s.JustPressed(cfg.ActionUltimate)

	if s.dash != nil {
		in.Dash = true
		in.DashDir = *s.dash
	}
	return in
}

// UpgradeChoice returns the index of the upgrade key pressed this tick.
func (s *State) UpgradeChoice() (int, bool) {
	for i, id := range []cfg.ActionID{cfg.ActionUpgrade1, cfg.ActionUpgrade2, cfg.ActionUpgrade3} {
		if s.JustPressed(id) {
			return i, true
		}
	}
	return 0, false
}
