package cues_test

import (
	"context"
	"testing"

	mocks "github.com/cbodonnell/tetris/mocks/github.com/cbodonnell/tetris/pkg/cues"
	"github.com/cbodonnell/tetris/pkg/cues"
	"github.com/cbodonnell/tetris/pkg/game"
	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/stretchr/testify/assert"
)

func running(action game.Action) game.Event {
	return game.Event{
		Action:       action,
		Applied:      true,
		LevelBefore:  1,
		LevelAfter:   1,
		StatusBefore: types.GameStatusRunning,
		StatusAfter:  types.GameStatusRunning,
	}
}

func TestFor(t *testing.T) {
	tests := []struct {
		name   string
		event  func() game.Event
		want   cues.Cue
		wantOK bool
	}{
		{
			name:   "move left",
			event:  func() game.Event { return running(game.ActionMoveLeft) },
			want:   cues.Cue{Kind: cues.KindMove},
			wantOK: true,
		},
		{
			name:   "move right",
			event:  func() game.Event { return running(game.ActionMoveRight) },
			want:   cues.Cue{Kind: cues.KindMove},
			wantOK: true,
		},
		{
			name:   "soft drop",
			event:  func() game.Event { return running(game.ActionSoftDrop) },
			want:   cues.Cue{Kind: cues.KindMove},
			wantOK: true,
		},
		{
			name:   "rotate clockwise",
			event:  func() game.Event { return running(game.ActionRotateCW) },
			want:   cues.Cue{Kind: cues.KindRotate},
			wantOK: true,
		},
		{
			name:   "rotate counter clockwise",
			event:  func() game.Event { return running(game.ActionRotateCCW) },
			want:   cues.Cue{Kind: cues.KindRotate},
			wantOK: true,
		},
		{
			name: "rejected move",
			event: func() game.Event {
				ev := running(game.ActionMoveLeft)
				ev.Applied = false
				return ev
			},
			wantOK: false,
		},
		{
			name: "hold",
			event: func() game.Event {
				return running(game.ActionHold)
			},
			wantOK: false,
		},
		{
			name:   "tick without lock",
			event:  func() game.Event { return running(game.ActionTick) },
			wantOK: false,
		},
		{
			name: "tick lock",
			event: func() game.Event {
				ev := running(game.ActionTick)
				ev.Applied = false
				ev.Locked = true
				return ev
			},
			want:   cues.Cue{Kind: cues.KindLock},
			wantOK: true,
		},
		{
			name: "soft drop lock",
			event: func() game.Event {
				ev := running(game.ActionSoftDrop)
				ev.Applied = false
				ev.Locked = true
				return ev
			},
			want:   cues.Cue{Kind: cues.KindLock},
			wantOK: true,
		},
		{
			name: "hard drop",
			event: func() game.Event {
				ev := running(game.ActionHardDrop)
				ev.Locked = true
				ev.Dropped = 12
				return ev
			},
			want:   cues.Cue{Kind: cues.KindHardDrop},
			wantOK: true,
		},
		{
			name: "hard drop clearing lines",
			event: func() game.Event {
				ev := running(game.ActionHardDrop)
				ev.Locked = true
				ev.LinesCleared = 2
				return ev
			},
			want:   cues.Cue{Kind: cues.KindLineClear, Lines: 2},
			wantOK: true,
		},
		{
			name: "tick clearing four lines",
			event: func() game.Event {
				ev := running(game.ActionTick)
				ev.Applied = false
				ev.Locked = true
				ev.LinesCleared = 4
				return ev
			},
			want:   cues.Cue{Kind: cues.KindLineClear, Lines: 4},
			wantOK: true,
		},
		{
			name: "level up beats line clear",
			event: func() game.Event {
				ev := running(game.ActionHardDrop)
				ev.Locked = true
				ev.LinesCleared = 3
				ev.LevelAfter = 2
				return ev
			},
			want:   cues.Cue{Kind: cues.KindLevelUp},
			wantOK: true,
		},
		{
			name: "game over beats everything",
			event: func() game.Event {
				ev := running(game.ActionHardDrop)
				ev.Locked = true
				ev.LinesCleared = 1
				ev.LevelAfter = 2
				ev.StatusAfter = types.GameStatusGameOver
				return ev
			},
			want:   cues.Cue{Kind: cues.KindGameOver},
			wantOK: true,
		},
		{
			name: "hold into a blocked spawn",
			event: func() game.Event {
				ev := running(game.ActionHold)
				ev.StatusAfter = types.GameStatusGameOver
				return ev
			},
			want:   cues.Cue{Kind: cues.KindGameOver},
			wantOK: true,
		},
		{
			name: "start",
			event: func() game.Event {
				ev := running(game.ActionStart)
				ev.StatusBefore = types.GameStatusGameOver
				return ev
			},
			wantOK: false,
		},
		{
			name: "pause",
			event: func() game.Event {
				ev := running(game.ActionPause)
				ev.StatusAfter = types.GameStatusPaused
				return ev
			},
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cues.For(tt.event())
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKind_String(t *testing.T) {
	seen := make(map[string]bool)
	for _, k := range cues.AllKinds {
		s := k.String()
		assert.NotEqual(t, "unknown", s)
		assert.False(t, seen[s], "duplicate name %s", s)
		seen[s] = true
	}
	assert.Equal(t, "unknown", cues.Kind(0).String())
}

func TestDispatcher_Handle(t *testing.T) {
	tests := []struct {
		name  string
		event func() game.Event
		setup func(p *mocks.MockPlayer)
	}{
		{
			name: "start begins music",
			event: func() game.Event {
				ev := running(game.ActionStart)
				ev.StatusBefore = types.GameStatusIdle
				return ev
			},
			setup: func(p *mocks.MockPlayer) {
				p.EXPECT().StartMusic().Return().Once()
			},
		},
		{
			name: "pause stops music",
			event: func() game.Event {
				ev := running(game.ActionPause)
				ev.StatusAfter = types.GameStatusPaused
				return ev
			},
			setup: func(p *mocks.MockPlayer) {
				p.EXPECT().StopMusic().Return().Once()
			},
		},
		{
			name: "resume restarts music",
			event: func() game.Event {
				ev := running(game.ActionResume)
				ev.StatusBefore = types.GameStatusPaused
				return ev
			},
			setup: func(p *mocks.MockPlayer) {
				p.EXPECT().StartMusic().Return().Once()
			},
		},
		{
			name: "rejected pause does nothing",
			event: func() game.Event {
				ev := running(game.ActionPause)
				ev.Applied = false
				ev.StatusBefore = types.GameStatusGameOver
				ev.StatusAfter = types.GameStatusGameOver
				return ev
			},
			setup: func(p *mocks.MockPlayer) {},
		},
		{
			name: "rotate plays a cue",
			event: func() game.Event {
				return running(game.ActionRotateCW)
			},
			setup: func(p *mocks.MockPlayer) {
				p.EXPECT().Play(cues.Cue{Kind: cues.KindRotate}).Return().Once()
			},
		},
		{
			name: "game over plays a cue and stops music",
			event: func() game.Event {
				ev := running(game.ActionTick)
				ev.Applied = false
				ev.Locked = true
				ev.StatusAfter = types.GameStatusGameOver
				return ev
			},
			setup: func(p *mocks.MockPlayer) {
				p.EXPECT().Play(cues.Cue{Kind: cues.KindGameOver}).Return().Once()
				p.EXPECT().StopMusic().Return().Once()
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := mocks.NewMockPlayer(t)
			tt.setup(player)

			cues.NewDispatcher(player).Handle(tt.event())
		})
	}
}

func TestDispatcher_Attach(t *testing.T) {
	player := mocks.NewMockPlayer(t)
	gm := game.NewGameManager(game.NewGameManagerOptions{
		Engine: game.NewEngine(game.NewSequenceRandomizer(types.TetrominoT)),
	})
	cues.NewDispatcher(player).Attach(gm)

	t.Cleanup(gm.Stop)

	player.EXPECT().StartMusic().Return().Once()
	player.EXPECT().Play(cues.Cue{Kind: cues.KindMove}).Return().Once()
	player.EXPECT().Play(cues.Cue{Kind: cues.KindRotate}).Return().Once()
	player.EXPECT().StopMusic().Return().Once()

	// rejected before the first start
	gm.MoveLeft()

	assert.NoError(t, gm.StartNewGame(context.Background()))
	assert.True(t, gm.MoveLeft())
	assert.True(t, gm.RotateCW())
	assert.True(t, gm.Pause())
}
