package game

import (
	"time"

	"github.com/cbodonnell/tetris/pkg/game/constants"
	"github.com/cbodonnell/tetris/pkg/game/types"
)

// DropInterval returns the time between automatic descents at the given level.
func DropInterval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	interval := constants.BaseDropInterval - time.Duration(level-1)*constants.DropIntervalStep
	return max(constants.MinDropInterval, interval)
}

// SnapshotFromEngine copies the engine state into a new snapshot.
// Session fields are left for the caller to fill in.
func SnapshotFromEngine(e *Engine) *types.Snapshot {
	snapshot := &types.Snapshot{
		Board:        e.Board(),
		Score:        e.Score(),
		Level:        e.Level(),
		LinesCleared: e.LinesCleared(),
		Status:       e.Status(),
		CanHold:      e.CanHold(),
	}
	if p, ok := e.Current(); ok {
		snapshot.Current = &p
	}
	if p, ok := e.Ghost(); ok {
		snapshot.Ghost = &p
	}
	if p, ok := e.Next(); ok {
		snapshot.Next = &p
	}
	if p, ok := e.Held(); ok {
		snapshot.Held = &p
	}
	return snapshot
}
