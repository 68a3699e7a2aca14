package state

import (
	"context"
	"errors"

	"github.com/cbodonnell/tetris/pkg/game/types"
)

// ErrNilSnapshot is returned when a nil snapshot is stored.
var ErrNilSnapshot = errors.New("snapshot is nil")

// StateManager provides shared access to the latest game snapshot.
// Implementations must be thread-safe.
type StateManager interface {
	// Get returns a copy of the latest snapshot.
	Get(ctx context.Context) (*types.Snapshot, error)
	// Set replaces the latest snapshot.
	Set(ctx context.Context, snapshot *types.Snapshot) error
}
