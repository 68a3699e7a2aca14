package scenes_test

import (
	"testing"

	"github.com/cbodonnell/tetris/client/input"
	"github.com/cbodonnell/tetris/client/scenes"
	mocks "github.com/cbodonnell/tetris/mocks/github.com/cbodonnell/tetris/client/scenes"
	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameScene_NoController(t *testing.T) {
	_, err := scenes.NewGameScene(scenes.NewGameSceneOptions{})
	assert.Error(t, err)
}

func TestGameScene_HandleActions(t *testing.T) {
	tests := []struct {
		name    string
		actions []input.Action
		setup   func(c *mocks.MockController)
	}{
		{
			name:    "move left then right",
			actions: []input.Action{input.ActionMoveLeft, input.ActionMoveRight},
			setup: func(c *mocks.MockController) {
				c.EXPECT().MoveLeft().Return(true).Once()
				c.EXPECT().MoveRight().Return(false).Once()
			},
		},
		{
			name:    "drops",
			actions: []input.Action{input.ActionSoftDrop, input.ActionHardDrop},
			setup: func(c *mocks.MockController) {
				c.EXPECT().SoftDrop().Return(true).Once()
				c.EXPECT().HardDrop().Return(17).Once()
			},
		},
		{
			name:    "rotations",
			actions: []input.Action{input.ActionRotateCW, input.ActionRotateCCW, input.ActionRotateCW},
			setup: func(c *mocks.MockController) {
				c.EXPECT().RotateCW().Return(true).Twice()
				c.EXPECT().RotateCCW().Return(true).Once()
			},
		},
		{
			name:    "hold and pause",
			actions: []input.Action{input.ActionHold, input.ActionPause},
			setup: func(c *mocks.MockController) {
				c.EXPECT().Hold().Return(true).Once()
				c.EXPECT().TogglePause().Return(true).Once()
			},
		},
		{
			name:    "start is ignored during play",
			actions: []input.Action{input.ActionStart},
			setup:   func(c *mocks.MockController) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mocks.NewMockController(t)
			c.EXPECT().Snapshot().Return(&types.Snapshot{Level: 1, Status: types.GameStatusRunning}).Once()
			tt.setup(c)

			s, err := scenes.NewGameScene(scenes.NewGameSceneOptions{Controller: c})
			require.NoError(t, err)
			s.HandleActions(tt.actions)
		})
	}
}

func TestGameScene_HandleActions_Mute(t *testing.T) {
	c := mocks.NewMockController(t)
	c.EXPECT().Snapshot().Return(&types.Snapshot{Level: 1}).Once()

	toggles := 0
	s, err := scenes.NewGameScene(scenes.NewGameSceneOptions{
		Controller: c,
		OnToggleMute: func() bool {
			toggles++
			return toggles%2 == 1
		},
	})
	require.NoError(t, err)

	s.HandleActions([]input.Action{input.ActionMute, input.ActionMute})
	assert.Equal(t, 2, toggles)
}

func TestFinalScoreText(t *testing.T) {
	assert.Contains(t, scenes.FinalScoreText(&types.Snapshot{Score: 4200}), "Score 4200")
}

func TestSoundLabel(t *testing.T) {
	assert.Equal(t, "Sound: on", scenes.SoundLabel(false))
	assert.Equal(t, "Sound: off", scenes.SoundLabel(true))
}
