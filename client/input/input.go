package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// RepeatDelay is the number of ticks a key is held before it starts repeating
	RepeatDelay = 10
	// RepeatInterval is the number of ticks between repeats
	RepeatInterval = 3
)

// Action is a player command read from the keyboard.
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionSoftDrop
	ActionHardDrop
	ActionRotateCW
	ActionRotateCCW
	ActionHold
	ActionPause
	ActionMute
	ActionStart
)

func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionHold:
		return "Hold"
	case ActionPause:
		return "Pause"
	case ActionMute:
		return "Mute"
	case ActionStart:
		return "Start"
	}
	return "Unknown"
}

// Binding maps keys to an action. Repeating bindings fire again while held.
type Binding struct {
	Action Action
	Keys   []ebiten.Key
	Repeat bool
}

// DefaultBindings is the keyboard layout of the game.
var DefaultBindings = []Binding{
	{Action: ActionMoveLeft, Keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, Repeat: true},
	{Action: ActionMoveRight, Keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, Repeat: true},
	{Action: ActionSoftDrop, Keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, Repeat: true},
	{Action: ActionHardDrop, Keys: []ebiten.Key{ebiten.KeySpace}},
	{Action: ActionRotateCW, Keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyX}},
	{Action: ActionRotateCCW, Keys: []ebiten.Key{ebiten.KeyZ, ebiten.KeyControlLeft, ebiten.KeyControlRight}},
	{Action: ActionHold, Keys: []ebiten.Key{ebiten.KeyC, ebiten.KeyShiftLeft, ebiten.KeyShiftRight}},
	{Action: ActionPause, Keys: []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}},
	{Action: ActionMute, Keys: []ebiten.Key{ebiten.KeyM}},
	{Action: ActionStart, Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
}

// ShouldRepeat reports whether a key held for duration ticks fires this tick.
// It fires on the first tick, then once delay is reached and every interval ticks after.
func ShouldRepeat(duration, delay, interval int) bool {
	if duration <= 0 {
		return false
	}
	if duration == 1 {
		return true
	}
	if interval <= 0 {
		return false
	}
	return duration >= delay && (duration-delay)%interval == 0
}

// Triggered returns the actions that fire this tick, in binding order.
func Triggered(bindings []Binding) []Action {
	var actions []Action
	for _, b := range bindings {
		if bindingFires(b) {
			actions = append(actions, b.Action)
		}
	}
	return actions
}

// IsActionJustPressed reports whether the binding of action fires this tick.
func IsActionJustPressed(bindings []Binding, action Action) bool {
	for _, b := range bindings {
		if b.Action == action && bindingFires(b) {
			return true
		}
	}
	return false
}

func bindingFires(b Binding) bool {
	for _, key := range b.Keys {
		if !b.Repeat {
			if inpututil.IsKeyJustPressed(key) {
				return true
			}
			continue
		}
		if ShouldRepeat(inpututil.KeyPressDuration(key), RepeatDelay, RepeatInterval) {
			return true
		}
	}
	return false
}

// IsPositiveJustPressed returns a boolean value indicating whether the generic positive input is just pressed.
// This is used to handle keyboard, mouse, touch and gamepad inputs.
func IsPositiveJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		return true
	}
	gamepadIDs := ebiten.AppendGamepadIDs(nil)
	for _, g := range gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(g) {
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightBottom) {
				return true
			}
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightRight) {
				return true
			}
		} else {
			// The button 0/1 might not be A/B buttons.
			if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton0) {
				return true
			}
			if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton1) {
				return true
			}
		}
	}
	return false
}

// IsNegativeJustPressed returns a boolean value indicating whether the generic negative input is just pressed.
func IsNegativeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
