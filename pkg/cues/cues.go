package cues

import (
	"github.com/cbodonnell/tetris/pkg/game"
)

// Kind identifies a sound effect.
type Kind uint8

const (
	KindMove Kind = iota + 1
	KindRotate
	KindLock
	KindHardDrop
	KindLineClear
	KindLevelUp
	KindGameOver
)

// AllKinds lists every cue kind.
var AllKinds = [...]Kind{KindMove, KindRotate, KindLock, KindHardDrop, KindLineClear, KindLevelUp, KindGameOver}

func (k Kind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindRotate:
		return "rotate"
	case KindLock:
		return "lock"
	case KindHardDrop:
		return "hard-drop"
	case KindLineClear:
		return "line-clear"
	case KindLevelUp:
		return "level-up"
	case KindGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Cue is a sound effect to play. Lines is only set for KindLineClear.
type Cue struct {
	Kind  Kind
	Lines int
}

// For returns the single cue an event should produce, if any.
// When an action causes several effects the most significant one wins:
// game over, level up, line clear, hard drop, lock, rotate, move.
func For(ev game.Event) (Cue, bool) {
	if !ev.Applied && !ev.Locked {
		return Cue{}, false
	}

	if ev.BecameGameOver() {
		return Cue{Kind: KindGameOver}, true
	}

	if ev.Locked {
		switch {
		case ev.LeveledUp():
			return Cue{Kind: KindLevelUp}, true
		case ev.LinesCleared > 0:
			return Cue{Kind: KindLineClear, Lines: ev.LinesCleared}, true
		case ev.Action == game.ActionHardDrop:
			return Cue{Kind: KindHardDrop}, true
		default:
			return Cue{Kind: KindLock}, true
		}
	}

	switch ev.Action {
	case game.ActionRotateCW, game.ActionRotateCCW:
		return Cue{Kind: KindRotate}, true
	case game.ActionMoveLeft, game.ActionMoveRight, game.ActionSoftDrop:
		return Cue{Kind: KindMove}, true
	default:
		return Cue{}, false
	}
}
