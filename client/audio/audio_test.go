package audio

import (
	"errors"
	"testing"

	"github.com/cbodonnell/tetris/pkg/cues"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPCMCache_Cue(t *testing.T) {
	renders := map[cues.Cue]int{}
	c := newPCMCache(func(cue cues.Cue) ([]byte, error) {
		renders[cue]++
		return []byte{byte(cue.Kind), byte(cue.Lines)}, nil
	}, nil)

	tests := []struct {
		name string
		cue  cues.Cue
		want []byte
	}{
		{name: "move", cue: cues.Cue{Kind: cues.KindMove}, want: []byte{byte(cues.KindMove), 0}},
		{name: "move again", cue: cues.Cue{Kind: cues.KindMove}, want: []byte{byte(cues.KindMove), 0}},
		{name: "lines ignored outside line clears", cue: cues.Cue{Kind: cues.KindLock, Lines: 2}, want: []byte{byte(cues.KindLock), 0}},
		{name: "single", cue: cues.Cue{Kind: cues.KindLineClear, Lines: 1}, want: []byte{byte(cues.KindLineClear), 1}},
		{name: "tetris", cue: cues.Cue{Kind: cues.KindLineClear, Lines: 4}, want: []byte{byte(cues.KindLineClear), 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.cue(tt.cue)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, 1, renders[cues.Cue{Kind: cues.KindMove}])
	assert.Equal(t, 1, renders[cues.Cue{Kind: cues.KindLock}])
	assert.Len(t, renders, 4)
}

func TestPCMCache_CueError(t *testing.T) {
	calls := 0
	c := newPCMCache(func(cue cues.Cue) ([]byte, error) {
		calls++
		return nil, errors.New("boom")
	}, nil)

	_, err := c.cue(cues.Cue{Kind: cues.KindMove})
	assert.Error(t, err)
	_, err = c.cue(cues.Cue{Kind: cues.KindMove})
	assert.Error(t, err)
	assert.Equal(t, 2, calls, "failed renders are not cached")
}

func TestPCMCache_Theme(t *testing.T) {
	calls := 0
	c := newPCMCache(nil, func() ([]byte, error) {
		calls++
		return []byte{1, 2, 3, 4}, nil
	})

	for i := 0; i < 3; i++ {
		got, err := c.theme()
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2, 3, 4}, got)
	}
	assert.Equal(t, 1, calls)
}
