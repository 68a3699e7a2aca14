package workers

import (
	"context"
	"fmt"

	"github.com/cbodonnell/tetris/pkg/game"
	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/cbodonnell/tetris/pkg/log"
	"github.com/cbodonnell/tetris/pkg/messages"
	"github.com/cbodonnell/tetris/pkg/queue"
)

// Broadcaster sends a serialized message to every spectator and returns how many it reached.
type Broadcaster interface {
	SendToAll(ctx context.Context, b []byte) int
}

// BroadcastWorker drains game events from a queue and forwards them to spectators.
type BroadcastWorker struct {
	eventQueue  queue.Queue
	broadcaster Broadcaster
}

type NewBroadcastWorkerOptions struct {
	EventQueue  queue.Queue
	Broadcaster Broadcaster
}

func NewBroadcastWorker(opts NewBroadcastWorkerOptions) *BroadcastWorker {
	return &BroadcastWorker{
		eventQueue:  opts.EventQueue,
		broadcaster: opts.Broadcaster,
	}
}

// Start flushes the queue every time it is notified until ctx is done.
func (w *BroadcastWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.eventQueue.Notify():
			if err := w.Flush(ctx); err != nil {
				log.Error("Failed to broadcast events: %v", err)
			}
		}
	}
}

// Flush sends one event message for every lock or status change in the queue,
// followed by the latest snapshot of the batch.
func (w *BroadcastWorker) Flush(ctx context.Context) error {
	items := w.eventQueue.ReadAllMessages()
	if len(items) == 0 {
		return nil
	}

	var latest *types.Snapshot
	var payloads [][]byte
	for _, item := range items {
		ev, ok := item.(game.Event)
		if !ok {
			log.Error("Unexpected item in event queue: %T", item)
			continue
		}
		if ev.Snapshot != nil {
			latest = ev.Snapshot
		}
		if !notable(ev) {
			continue
		}

		b, err := serializeEvent(ev)
		if err != nil {
			return err
		}
		payloads = append(payloads, b)
	}

	if latest != nil {
		msg, err := messages.NewSnapshotMessage(latest)
		if err != nil {
			return fmt.Errorf("failed to create snapshot message: %v", err)
		}
		b, err := messages.SerializeMessage(msg)
		if err != nil {
			return fmt.Errorf("failed to serialize snapshot message: %v", err)
		}
		payloads = append(payloads, b)
	}

	for _, b := range payloads {
		sent := w.broadcaster.SendToAll(ctx, b)
		log.Trace("Broadcast %d bytes to %d spectators", len(b), sent)
	}
	return nil
}

func notable(ev game.Event) bool {
	return ev.Locked || ev.StatusBefore != ev.StatusAfter
}

func serializeEvent(ev game.Event) ([]byte, error) {
	var sequence uint64
	if ev.Snapshot != nil {
		sequence = ev.Snapshot.Sequence
	}
	msg, err := messages.NewEventMessage(sequence, &messages.EventSummary{
		Action:       ev.Action.String(),
		Locked:       ev.Locked,
		LinesCleared: ev.LinesCleared,
		LevelBefore:  ev.LevelBefore,
		LevelAfter:   ev.LevelAfter,
		Status:       ev.StatusAfter.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create event message: %v", err)
	}
	b, err := messages.SerializeMessage(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize event message: %v", err)
	}
	return b, nil
}
