package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/cbodonnell/tetris/pkg/log"
	"github.com/cbodonnell/tetris/pkg/queue"
	"github.com/cbodonnell/tetris/pkg/state"
	"github.com/google/uuid"
)

// Timer is the subset of time.Timer used by the descent loop.
type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

// Clock creates the timers that pace the descent loop.
type Clock interface {
	NewTimer(d time.Duration) Timer
}

type realClock struct{}

type realTimer struct {
	t *time.Timer
}

func (realClock) NewTimer(d time.Duration) Timer {
	return &realTimer{t: time.NewTimer(d)}
}

func (t *realTimer) C() <-chan time.Time {
	return t.t.C
}

func (t *realTimer) Stop() bool {
	return t.t.Stop()
}

// GameManager drives an Engine: it serializes every action behind one lock,
// runs the automatic descent loop and notifies handlers of each change.
type GameManager struct {
	lock         sync.Mutex
	engine       *Engine
	stateManager state.StateManager
	eventQueue   queue.Queue
	clock        Clock

	sessionID string
	sequence  uint64
	latest    *types.Snapshot

	loopCancel context.CancelFunc
	loopDone   chan struct{}

	// sessionLock serializes StartNewGame and Stop
	sessionLock sync.Mutex

	handlersLock sync.RWMutex
	handlers     []EventHandler
	// notifyLock keeps handler calls in the order events were produced.
	// It is always taken before lock.
	notifyLock sync.Mutex
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	// Engine is the engine to drive. Defaults to an engine with a uniform randomizer.
	Engine *Engine
	// StateManager receives every published snapshot. Defaults to an in-memory store.
	StateManager state.StateManager
	// EventQueue optionally receives every event, e.g. for spectators.
	EventQueue queue.Queue
	// Clock paces the descent loop. Defaults to the wall clock.
	Clock Clock
}

func NewGameManager(opts NewGameManagerOptions) *GameManager {
	gm := &GameManager{
		engine:       opts.Engine,
		stateManager: opts.StateManager,
		eventQueue:   opts.EventQueue,
		clock:        opts.Clock,
	}
	if gm.engine == nil {
		gm.engine = NewEngine(nil)
	}
	if gm.stateManager == nil {
		gm.stateManager = state.NewInMemoryStateManager()
	}
	if gm.clock == nil {
		gm.clock = realClock{}
	}
	gm.latest = SnapshotFromEngine(gm.engine)
	return gm
}

// RegisterHandler subscribes h to every future event.
// Handlers run on the goroutine that produced the event, one at a time and in event order.
// They may call Snapshot and SessionID, but must not call StartNewGame, Stop or any action method.
func (gm *GameManager) RegisterHandler(h EventHandler) {
	gm.handlersLock.Lock()
	defer gm.handlersLock.Unlock()
	gm.handlers = append(gm.handlers, h)
}

// StartNewGame stops any running descent loop, starts a new session and launches a new loop.
// The loop runs until ctx is cancelled, Stop is called or the game ends.
func (gm *GameManager) StartNewGame(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to start new game: %v", err)
	}
	gm.sessionLock.Lock()
	defer gm.sessionLock.Unlock()
	gm.stopLoop()

	gm.notifyLock.Lock()
	gm.lock.Lock()
	statusBefore := gm.engine.Status()
	gm.engine.StartNew()
	gm.sessionID = uuid.New().String()
	gm.sequence = 0
	ev := Event{
		Action:       ActionStart,
		Applied:      true,
		LevelBefore:  gm.engine.Level(),
		LevelAfter:   gm.engine.Level(),
		StatusBefore: statusBefore,
		StatusAfter:  gm.engine.Status(),
	}
	ev.Snapshot = gm.publish(ctx)
	gm.enqueue(ev)

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	gm.loopCancel = cancel
	gm.loopDone = done
	gm.lock.Unlock()

	log.Info("Started game session %s", ev.Snapshot.SessionID)
	gm.dispatch(ev)

	go gm.runDescent(loopCtx, done)
	return nil
}

// Stop cancels the descent loop and waits for it to exit. It is safe to call repeatedly.
func (gm *GameManager) Stop() {
	gm.sessionLock.Lock()
	defer gm.sessionLock.Unlock()
	gm.stopLoop()
}

func (gm *GameManager) stopLoop() {
	gm.lock.Lock()
	cancel, done := gm.loopCancel, gm.loopDone
	gm.loopCancel, gm.loopDone = nil, nil
	gm.lock.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// runDescent moves the current piece down once per drop interval of the current level.
func (gm *GameManager) runDescent(ctx context.Context, done chan struct{}) {
	defer close(done)

	for {
		gm.lock.Lock()
		interval := DropInterval(gm.engine.Level())
		gm.lock.Unlock()

		timer := gm.clock.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C():
		}

		ev, ok := gm.tick(ctx)
		if !ok {
			return
		}
		if ev.StatusAfter == types.GameStatusGameOver {
			log.Debug("Descent loop for session %s finished", ev.Snapshot.SessionID)
			return
		}
	}
}

// tick applies one automatic descent. It reports false if the loop should exit.
func (gm *GameManager) tick(ctx context.Context) (Event, bool) {
	gm.notifyLock.Lock()
	gm.lock.Lock()
	// cancellation may have raced with the timer
	if ctx.Err() != nil {
		gm.lock.Unlock()
		gm.notifyLock.Unlock()
		return Event{}, false
	}

	switch gm.engine.Status() {
	case types.GameStatusGameOver, types.GameStatusIdle:
		gm.lock.Unlock()
		gm.notifyLock.Unlock()
		return Event{}, false
	case types.GameStatusPaused:
		gm.lock.Unlock()
		gm.notifyLock.Unlock()
		return Event{StatusAfter: types.GameStatusPaused}, true
	}

	ev := gm.applyLocked(ActionTick, func(e *Engine) (bool, int) {
		return e.MoveDown(), 0
	})
	gm.lock.Unlock()

	log.Trace("Tick for session %s: locked=%t", ev.Snapshot.SessionID, ev.Locked)
	gm.dispatch(ev)
	return ev, true
}

func (gm *GameManager) MoveLeft() bool {
	return gm.apply(ActionMoveLeft, func(e *Engine) (bool, int) {
		return e.MoveLeft(), 0
	}).Applied
}

func (gm *GameManager) MoveRight() bool {
	return gm.apply(ActionMoveRight, func(e *Engine) (bool, int) {
		return e.MoveRight(), 0
	}).Applied
}

// SoftDrop moves the current piece down one row, locking it if it cannot move.
// It returns false when the piece locked or the action was rejected.
func (gm *GameManager) SoftDrop() bool {
	return gm.apply(ActionSoftDrop, func(e *Engine) (bool, int) {
		return e.MoveDown(), 0
	}).Applied
}

// HardDrop returns the number of rows dropped.
func (gm *GameManager) HardDrop() int {
	return gm.apply(ActionHardDrop, func(e *Engine) (bool, int) {
		if e.Status() != types.GameStatusRunning {
			return false, 0
		}
		rows := e.HardDrop()
		return true, rows
	}).Dropped
}

func (gm *GameManager) RotateCW() bool {
	return gm.apply(ActionRotateCW, func(e *Engine) (bool, int) {
		return e.RotateClockwise(), 0
	}).Applied
}

func (gm *GameManager) RotateCCW() bool {
	return gm.apply(ActionRotateCCW, func(e *Engine) (bool, int) {
		return e.RotateCounterClockwise(), 0
	}).Applied
}

func (gm *GameManager) Hold() bool {
	return gm.apply(ActionHold, func(e *Engine) (bool, int) {
		return e.Hold(), 0
	}).Applied
}

func (gm *GameManager) Pause() bool {
	return gm.apply(ActionPause, func(e *Engine) (bool, int) {
		return e.Pause(), 0
	}).Applied
}

func (gm *GameManager) Resume() bool {
	return gm.apply(ActionResume, func(e *Engine) (bool, int) {
		return e.Resume(), 0
	}).Applied
}

// TogglePause pauses a running game or resumes a paused one.
func (gm *GameManager) TogglePause() bool {
	gm.lock.Lock()
	status := gm.engine.Status()
	gm.lock.Unlock()

	switch status {
	case types.GameStatusRunning:
		return gm.Pause()
	case types.GameStatusPaused:
		return gm.Resume()
	default:
		return false
	}
}

// Snapshot returns a copy of the latest published snapshot.
func (gm *GameManager) Snapshot() *types.Snapshot {
	gm.lock.Lock()
	defer gm.lock.Unlock()
	return gm.latest.Copy()
}

// SessionID returns the ID of the current session, or an empty string before the first start.
func (gm *GameManager) SessionID() string {
	gm.lock.Lock()
	defer gm.lock.Unlock()
	return gm.sessionID
}

func (gm *GameManager) apply(action Action, fn func(e *Engine) (bool, int)) Event {
	gm.notifyLock.Lock()
	gm.lock.Lock()
	ev := gm.applyLocked(action, fn)
	gm.lock.Unlock()

	gm.dispatch(ev)
	return ev
}

// applyLocked runs fn against the engine and records the resulting delta.
// The caller must hold gm.lock.
func (gm *GameManager) applyLocked(action Action, fn func(e *Engine) (bool, int)) Event {
	e := gm.engine
	ev := Event{
		Action:       action,
		LevelBefore:  e.Level(),
		StatusBefore: e.Status(),
	}
	locksBefore := e.Locks()

	ev.Applied, ev.Dropped = fn(e)

	ev.LevelAfter = e.Level()
	ev.StatusAfter = e.Status()
	if e.Locks() != locksBefore {
		ev.Locked = true
		if lock, ok := e.LastLock(); ok {
			ev.LinesCleared = lock.LinesCleared
			log.Debug("Locked %s at (%d, %d), cleared %d lines, score %d", lock.Piece.Type, lock.Piece.Row, lock.Piece.Col, lock.LinesCleared, e.Score())
		}
	}

	if !ev.Applied && !ev.Locked {
		ev.Snapshot = gm.latest.Copy()
		return ev
	}

	ev.Snapshot = gm.publish(context.Background())
	gm.enqueue(ev)
	if ev.BecameGameOver() {
		log.Info("Game over for session %s: score %d, level %d, lines %d", gm.sessionID, e.Score(), e.Level(), e.LinesCleared())
	}
	return ev
}

// publish stores a new snapshot of the engine. The caller must hold gm.lock.
func (gm *GameManager) publish(ctx context.Context) *types.Snapshot {
	gm.sequence++
	snapshot := SnapshotFromEngine(gm.engine)
	snapshot.SessionID = gm.sessionID
	snapshot.Sequence = gm.sequence
	gm.latest = snapshot

	if err := gm.stateManager.Set(ctx, snapshot); err != nil {
		log.Error("Failed to set snapshot: %v", err)
	}
	return snapshot.Copy()
}

func (gm *GameManager) enqueue(ev Event) {
	if gm.eventQueue == nil {
		return
	}
	if dropped := gm.eventQueue.Enqueue(ev); dropped {
		log.Warn("Event queue full, dropped oldest event")
	}
}

// dispatch calls every handler with ev and releases notifyLock.
// The caller must hold notifyLock.
func (gm *GameManager) dispatch(ev Event) {
	defer gm.notifyLock.Unlock()

	gm.handlersLock.RLock()
	handlers := make([]EventHandler, len(gm.handlers))
	copy(handlers, gm.handlers)
	gm.handlersLock.RUnlock()

	for _, h := range handlers {
		h(ev)
	}
}
