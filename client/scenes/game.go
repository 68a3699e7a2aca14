package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/tetris/client/input"
	"github.com/cbodonnell/tetris/client/objects"
	"github.com/cbodonnell/tetris/pkg/game"
	"github.com/cbodonnell/tetris/pkg/game/constants"
	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/cbodonnell/tetris/pkg/log"
	"github.com/cbodonnell/tetris/pkg/queue"
)

const (
	effectTTL  = 45
	effectRise = 0.8
)

// Controller is the part of the game manager driven by the scene.
type Controller interface {
	MoveLeft() bool
	MoveRight() bool
	SoftDrop() bool
	HardDrop() int
	RotateCW() bool
	RotateCCW() bool
	Hold() bool
	TogglePause() bool
	Snapshot() *types.Snapshot
}

var _ Controller = &game.GameManager{}

type GameScene struct {
	*BaseScene

	controller   Controller
	onToggleMute func() bool
	bindings     []input.Binding
	// events receives game.Event values produced by the manager
	events queue.Queue
	// snapshot is the state drawn this frame
	snapshot *types.Snapshot
	overlay  *objects.TextOverlayObject
	effects  int
}

type NewGameSceneOptions struct {
	Controller Controller
	// Events is optional. Line clears and level ups read from it are shown as popups.
	Events queue.Queue
	// OnToggleMute is called when the mute key is pressed.
	OnToggleMute func() bool
	// Bindings defaults to input.DefaultBindings.
	Bindings []input.Binding
}

var _ Scene = &GameScene{}

func NewGameScene(opts NewGameSceneOptions) (*GameScene, error) {
	if opts.Controller == nil {
		return nil, fmt.Errorf("failed to create game scene: no controller")
	}
	bindings := opts.Bindings
	if bindings == nil {
		bindings = input.DefaultBindings
	}

	s := &GameScene{
		BaseScene:    NewBaseScene(objects.NewSortedZIndexObject("game-root")),
		controller:   opts.Controller,
		onToggleMute: opts.OnToggleMute,
		bindings:     bindings,
		events:       opts.Events,
		overlay:      objects.NewTextOverlayObject("overlay-paused", "Paused", "Press P to resume"),
	}
	s.snapshot = opts.Controller.Snapshot()
	return s, nil
}

func (s *GameScene) Init() error {
	if err := s.BaseScene.Init(); err != nil {
		return err
	}

	current := func() *types.Snapshot { return s.snapshot }
	children := []objects.GameObject{
		objects.NewBoardObject("board", objects.NewBoardObjectOptions{
			X:        objects.BoardX,
			Y:        objects.BoardY,
			CellSize: objects.CellSize,
			Snapshot: current,
		}),
		objects.NewPreviewObject("hold", objects.NewPreviewObjectOptions{
			Label:    "HOLD",
			X:        objects.HoldX,
			Y:        objects.PreviewY,
			Size:     objects.PreviewSize,
			CellSize: objects.CellSize,
			Snapshot: current,
			Piece:    objects.HeldPiece,
		}),
		objects.NewPreviewObject("next", objects.NewPreviewObjectOptions{
			Label:    "NEXT",
			X:        objects.NextX,
			Y:        objects.PreviewY,
			Size:     objects.PreviewSize,
			CellSize: objects.CellSize,
			Snapshot: current,
			Piece:    objects.NextPiece,
		}),
		objects.NewHUDObject("hud", objects.HUDX, objects.HUDY, current),
	}
	for _, child := range children {
		if err := s.Root.AddChild(child.GetID(), child); err != nil {
			return fmt.Errorf("failed to add %s: %v", child.GetID(), err)
		}
	}
	if s.events != nil {
		s.events.ClearQueue()
	}
	return nil
}

func (s *GameScene) Update() error {
	s.HandleActions(input.Triggered(s.bindings))
	s.processEvents()

	s.snapshot = s.controller.Snapshot()
	if err := s.syncOverlay(); err != nil {
		return fmt.Errorf("failed to update overlay: %v", err)
	}

	if err := s.BaseScene.Update(); err != nil {
		return fmt.Errorf("failed to update base scene: %v", err)
	}
	return nil
}

// HandleActions applies player actions to the controller in order.
func (s *GameScene) HandleActions(actions []input.Action) {
	for _, a := range actions {
		switch a {
		case input.ActionMoveLeft:
			s.controller.MoveLeft()
		case input.ActionMoveRight:
			s.controller.MoveRight()
		case input.ActionSoftDrop:
			s.controller.SoftDrop()
		case input.ActionHardDrop:
			s.controller.HardDrop()
		case input.ActionRotateCW:
			s.controller.RotateCW()
		case input.ActionRotateCCW:
			s.controller.RotateCCW()
		case input.ActionHold:
			s.controller.Hold()
		case input.ActionPause:
			s.controller.TogglePause()
		case input.ActionMute:
			if s.onToggleMute != nil {
				muted := s.onToggleMute()
				log.Debug("Sound muted: %t", muted)
			}
		}
	}
}

func (s *GameScene) processEvents() {
	if s.events == nil {
		return
	}
	for _, item := range s.events.ReadAllMessages() {
		ev, ok := item.(game.Event)
		if !ok {
			log.Error("Failed to cast event queue item to game.Event")
			continue
		}
		if text := objects.LineClearText(ev.LinesCleared); text != "" {
			s.addEffect(text, objects.ValueColor)
		}
		if ev.LeveledUp() {
			s.addEffect(fmt.Sprintf("Level %d", ev.LevelAfter), objects.CellColor(uint8(types.TetrominoO)))
		}
	}
}

func (s *GameScene) addEffect(text string, clr color.Color) {
	s.effects++
	id := fmt.Sprintf("effect-%d", s.effects)
	effect := objects.NewTextEffect(id, objects.NewTextEffectOptions{
		Text:   text,
		X:      float64(objects.BoardX + float32(constants.Cols)*objects.CellSize/2),
		Y:      float64(objects.BoardY + float32(constants.Rows)*objects.CellSize/2),
		Color:  clr,
		Rise:   effectRise,
		TTL:    effectTTL,
		ZIndex: 50,
	})
	if err := s.Root.AddChild(id, effect); err != nil {
		log.Error("Failed to add text effect: %v", err)
	}
}

// syncOverlay shows the paused overlay while the game is paused.
func (s *GameScene) syncOverlay() error {
	paused := s.snapshot != nil && s.snapshot.Status == types.GameStatusPaused
	shown := s.Root.GetChild(s.overlay.GetID()) != nil
	switch {
	case paused && !shown:
		return s.Root.AddChild(s.overlay.GetID(), s.overlay)
	case !paused && shown:
		return s.Root.RemoveChild(s.overlay.GetID())
	}
	return nil
}

// Snapshot is the state drawn by the scene.
func (s *GameScene) Snapshot() *types.Snapshot {
	return s.snapshot
}
