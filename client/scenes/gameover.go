package scenes

import (
	"fmt"

	"github.com/cbodonnell/tetris/client/objects"
	"github.com/cbodonnell/tetris/pkg/game/types"
)

// GameOverScene shows the final board under a game over overlay.
type GameOverScene struct {
	*BaseScene

	final *types.Snapshot
}

var _ Scene = &GameOverScene{}

func NewGameOverScene(final *types.Snapshot) (Scene, error) {
	if final == nil {
		return nil, fmt.Errorf("failed to create game over scene: no final snapshot")
	}
	snapshot := func() *types.Snapshot { return final }

	root := objects.NewSortedZIndexObject("gameover-root")
	if err := root.AddChild("board", objects.NewBoardObject("board", objects.NewBoardObjectOptions{
		X:        objects.BoardX,
		Y:        objects.BoardY,
		CellSize: objects.CellSize,
		Snapshot: snapshot,
	})); err != nil {
		return nil, fmt.Errorf("failed to add board: %v", err)
	}
	if err := root.AddChild("hud", objects.NewHUDObject("hud", objects.HUDX, objects.HUDY, snapshot)); err != nil {
		return nil, fmt.Errorf("failed to add hud: %v", err)
	}
	if err := root.AddChild("overlay", objects.NewTextOverlayObject("overlay", "Game Over!", FinalScoreText(final))); err != nil {
		return nil, fmt.Errorf("failed to add overlay: %v", err)
	}

	return &GameOverScene{
		BaseScene: NewBaseScene(root),
		final:     final,
	}, nil
}

// FinalScoreText is the subtitle of the game over overlay.
func FinalScoreText(s *types.Snapshot) string {
	return fmt.Sprintf("Score %d   Enter: play again   Esc: menu", s.Score)
}
