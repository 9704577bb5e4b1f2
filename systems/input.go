package systems

import (
	"github.com/automoto/fowlplay/components"
	cfg "github.com/automoto/fowlplay/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls the keyboard and gamepads into this frame's snapshot.
// Must run BEFORE UpdateChef in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input, ok := levelInput(ecs)
	if !ok {
		return
	}
	input.Push(PollInput())
}

// PollInput reads raw devices into a snapshot.
func PollInput() components.InputSnapshot {
	var snap components.InputSnapshot

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				snap.Actions[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					snap.Actions[actionID] = true
				}
			}
		}
	}

	// Digital directions
	if snap.Actions[cfg.ActionMoveLeft] {
		snap.MoveX--
	}
	if snap.Actions[cfg.ActionMoveRight] {
		snap.MoveX++
	}
	if snap.Actions[cfg.ActionMoveUp] {
		snap.MoveY--
	}
	if snap.Actions[cfg.ActionMoveDown] {
		snap.MoveY++
	}

	// Analog stick overrides the digital direction when outside the deadzone
	if h, v, ok := analogStick(gamepadIDs); ok {
		snap.MoveX, snap.MoveY = h, v
	}

	return snap
}

// analogStick reads the left stick of the first gamepad outside the deadzone.
func analogStick(gamepads []ebiten.GamepadID) (h, v float64, ok bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h = ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v = ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if h*h+v*v > deadzone*deadzone {
			return h, v, true
		}
	}
	return 0, 0, false
}

// levelInput returns the level's input component.
func levelInput(ecs *ecs.ECS) (*components.InputData, bool) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Input.Get(entry), true
}
