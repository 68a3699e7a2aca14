package state

import (
	"context"
	"sync"

	"github.com/cbodonnell/tetris/pkg/game/types"
)

type InMemoryStateManager struct {
	lock     sync.RWMutex
	snapshot *types.Snapshot
}

func NewInMemoryStateManager() *InMemoryStateManager {
	return &InMemoryStateManager{
		snapshot: &types.Snapshot{
			Level:   1,
			Status:  types.GameStatusIdle,
			CanHold: true,
		},
	}
}

func (m *InMemoryStateManager) Get(ctx context.Context) (*types.Snapshot, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.snapshot.Copy(), nil
}

func (m *InMemoryStateManager) Set(ctx context.Context, snapshot *types.Snapshot) error {
	if snapshot == nil {
		return ErrNilSnapshot
	}

	m.lock.Lock()
	defer m.lock.Unlock()
	m.snapshot = snapshot.Copy()
	return nil
}
