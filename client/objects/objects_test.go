package objects

import (
	"errors"
	"testing"

	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObject struct {
	*BaseObject

	log     *[]string
	initErr error
}

func newRecordingObject(id string, zIndex int, log *[]string) *recordingObject {
	return &recordingObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex}),
		log:        log,
	}
}

func (o *recordingObject) Init() error {
	*o.log = append(*o.log, "init "+o.GetID())
	return o.initErr
}

func (o *recordingObject) Destroy() error {
	*o.log = append(*o.log, "destroy "+o.GetID())
	return nil
}

func ids(objs []GameObject) []string {
	out := make([]string, 0, len(objs))
	for _, o := range objs {
		out = append(out, o.GetID())
	}
	return out
}

func TestBaseObject_Tree(t *testing.T) {
	var log []string
	root := NewBaseObject("root", nil)
	parent := newRecordingObject("parent", 0, &log)
	child := newRecordingObject("child", 0, &log)

	require.NoError(t, parent.AddChild("child", child))
	require.NoError(t, root.AddChild("parent", parent))
	assert.Equal(t, []string{"init child", "init parent", "init child"}, log)
	assert.Equal(t, parent, root.GetChild("parent"))

	assert.Error(t, root.AddChild("parent", parent))

	log = nil
	require.NoError(t, parent.RemoveFromParent())
	assert.Equal(t, []string{"destroy child", "destroy parent"}, log)
	assert.Nil(t, root.GetChild("parent"))
	assert.Empty(t, root.GetChildren())
	assert.Nil(t, parent.GetParent())

	assert.Error(t, root.RemoveChild("parent"))
	assert.Error(t, parent.RemoveFromParent())
}

func TestBaseObject_InitError(t *testing.T) {
	var log []string
	root := NewBaseObject("root", nil)
	child := newRecordingObject("child", 0, &log)
	child.initErr = errors.New("boom")

	assert.Error(t, root.AddChild("child", child))
	assert.Nil(t, root.GetChild("child"))
}

func TestSortedZIndexObject(t *testing.T) {
	var log []string
	root := NewSortedZIndexObject("root")

	for _, c := range []struct {
		id     string
		zIndex int
	}{
		{"overlay", 100},
		{"board", 0},
		{"hud", 10},
		{"board2", 0},
		{"effect", 10},
	} {
		require.NoError(t, root.AddChild(c.id, newRecordingObject(c.id, c.zIndex, &log)))
	}
	assert.Equal(t, []string{"board", "board2", "hud", "effect", "overlay"}, ids(root.GetChildren()))

	require.NoError(t, root.RemoveChild("hud"))
	assert.Equal(t, []string{"board", "board2", "effect", "overlay"}, ids(root.GetChildren()))
	assert.Nil(t, root.GetChild("hud"))
	assert.Error(t, root.RemoveChild("hud"))
}

func TestTextEffect_RemovesItself(t *testing.T) {
	root := NewSortedZIndexObject("root")
	effect := NewTextEffect("effect", NewTextEffectOptions{
		Text: "Double",
		Y:    100,
		Rise: 1,
		TTL:  3,
	})
	require.NoError(t, root.AddChild("effect", effect))

	for i := 0; i < 2; i++ {
		require.NoError(t, UpdateTree(root))
		require.NotNil(t, root.GetChild("effect"))
	}
	assert.Equal(t, 98.0, effect.y)

	require.NoError(t, UpdateTree(root))
	assert.Nil(t, root.GetChild("effect"))
	assert.Empty(t, root.GetChildren())
}

func TestLineClearText(t *testing.T) {
	tests := []struct {
		lines int
		want  string
	}{
		{0, ""},
		{1, "Single"},
		{2, "Double"},
		{3, "Triple"},
		{4, "Tetris!"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LineClearText(tt.lines))
	}
}

func TestCellColor(t *testing.T) {
	assert.Equal(t, uint8(0), CellColor(0).A)
	for v := uint8(1); v <= 7; v++ {
		assert.Equal(t, uint8(0xff), CellColor(v).A, "value %d", v)
	}
	assert.Equal(t, unknownColor, CellColor(8))

	ghost := GhostColor(types.TetrominoT)
	assert.Equal(t, CellColor(uint8(types.TetrominoT)).R, ghost.R)
	assert.Less(t, DimmedColor(types.TetrominoT).A, ghost.A)
}

func TestCellOrigin(t *testing.T) {
	x, y := CellOrigin(10, 20, 22, 0, 0)
	assert.Equal(t, float32(10), x)
	assert.Equal(t, float32(20), y)

	x, y = CellOrigin(10, 20, 22, 2, 3)
	assert.Equal(t, float32(10+3*22), x)
	assert.Equal(t, float32(20+2*22), y)
}

func TestPreviewOffset_Centers(t *testing.T) {
	const box, cell = float32(110), float32(22)
	for _, pt := range []types.TetrominoType{
		types.TetrominoI, types.TetrominoO, types.TetrominoT,
		types.TetrominoS, types.TetrominoZ, types.TetrominoJ, types.TetrominoL,
	} {
		t.Run(pt.String(), func(t *testing.T) {
			dx, dy := PreviewOffset(pt, box, cell)
			var minX, maxX, minY, maxY float32 = box, 0, box, 0
			for _, o := range types.Cells(pt, 0) {
				x, y := CellOrigin(dx, dy, cell, o.Row, o.Col)
				minX, maxX = min(minX, x), max(maxX, x+cell)
				minY, maxY = min(minY, y), max(maxY, y+cell)
			}
			assert.InDelta(t, box-maxX, minX, 0.001)
			assert.InDelta(t, box-maxY, minY, 0.001)
		})
	}
}

func TestHUDLines(t *testing.T) {
	assert.Nil(t, HUDLines(nil))
	lines := HUDLines(&types.Snapshot{Score: 1200, Level: 3, LinesCleared: 21})
	assert.Equal(t, []HUDLine{
		{Label: "SCORE", Value: "1200"},
		{Label: "LEVEL", Value: "3"},
		{Label: "LINES", Value: "21"},
	}, lines)
}

func TestPieceFuncs(t *testing.T) {
	next := &types.Piece{Type: types.TetrominoI}
	held := &types.Piece{Type: types.TetrominoL}
	s := &types.Snapshot{Next: next, Held: held, CanHold: false}

	p, usable := NextPiece(s)
	assert.Equal(t, next, p)
	assert.True(t, usable)

	p, usable = HeldPiece(s)
	assert.Equal(t, held, p)
	assert.False(t, usable)
}
