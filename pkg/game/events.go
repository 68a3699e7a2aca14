package game

import "github.com/cbodonnell/tetris/pkg/game/types"

// Action identifies what produced an Event.
type Action uint8

const (
	ActionStart Action = iota + 1
	ActionPause
	ActionResume
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionHardDrop
	ActionRotateCW
	ActionRotateCCW
	ActionHold
	// ActionTick is an automatic descent of the falling piece.
	ActionTick
)

func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionPause:
		return "pause"
	case ActionResume:
		return "resume"
	case ActionMoveLeft:
		return "move-left"
	case ActionMoveRight:
		return "move-right"
	case ActionSoftDrop:
		return "soft-drop"
	case ActionHardDrop:
		return "hard-drop"
	case ActionRotateCW:
		return "rotate-cw"
	case ActionRotateCCW:
		return "rotate-ccw"
	case ActionHold:
		return "hold"
	case ActionTick:
		return "tick"
	default:
		return "unknown"
	}
}

// Event describes the outcome of one action applied to the engine.
type Event struct {
	Action Action
	// Applied is false when the engine rejected the action
	Applied bool
	// Dropped is the number of rows a hard drop descended
	Dropped int
	// Locked is true when the action locked a piece into the board
	Locked bool
	// LinesCleared is the number of rows removed by the lock, if any
	LinesCleared int
	LevelBefore  int
	LevelAfter   int
	StatusBefore types.GameStatus
	StatusAfter  types.GameStatus
	// Snapshot is the state published after the action. Handlers must not modify it.
	Snapshot *types.Snapshot
}

func (e Event) LeveledUp() bool {
	return e.LevelAfter > e.LevelBefore
}

func (e Event) BecameGameOver() bool {
	return e.StatusBefore != types.GameStatusGameOver && e.StatusAfter == types.GameStatusGameOver
}

// EventHandler is notified of every event emitted by a GameManager.
type EventHandler func(Event)
