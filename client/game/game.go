package game

import (
	"context"
	"fmt"

	"github.com/cbodonnell/tetris/client/input"
	"github.com/cbodonnell/tetris/client/objects"
	"github.com/cbodonnell/tetris/client/scenes"
	tetris "github.com/cbodonnell/tetris/pkg/game"
	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/cbodonnell/tetris/pkg/log"
	"github.com/cbodonnell/tetris/pkg/queue"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// ctx bounds the descent loop of every session started by the game.
	ctx context.Context
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// gameManager drives the engine.
	gameManager *tetris.GameManager
	// sound is the audio output, nil when the game runs without sound.
	sound Sound
	// events receives every event of the game manager for the game scene.
	events *queue.InMemoryQueue
	// mode is the current game mode.
	mode GameMode
	// scene is the current scene.
	scene scenes.Scene
}

// Sound is the audio output toggled from the menu and the mute key.
type Sound interface {
	ToggleMute() bool
	Muted() bool
}

type GameMode int

const (
	GameModeMenu GameMode = iota
	GameModePlay
	GameModeOver
	GameModeError
)

func (m GameMode) String() string {
	switch m {
	case GameModeMenu:
		return "Menu"
	case GameModePlay:
		return "Play"
	case GameModeOver:
		return "Over"
	case GameModeError:
		return "Error"
	}
	return "Unknown"
}

// sceneEventQueueSize bounds the events buffered between two frames.
const sceneEventQueueSize = 64

type NewGameOptions struct {
	// Context bounds every session. Defaults to context.Background().
	Context     context.Context
	Debug       bool
	GameManager *tetris.GameManager
	Sound       Sound
}

func NewGame(opts NewGameOptions) (*Game, error) {
	if opts.GameManager == nil {
		return nil, fmt.Errorf("failed to create game: no game manager")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	g := &Game{
		ctx:         ctx,
		debug:       opts.Debug,
		gameManager: opts.GameManager,
		sound:       opts.Sound,
		events:      queue.NewInMemoryQueueWithSize(sceneEventQueueSize),
	}
	g.gameManager.RegisterHandler(func(ev tetris.Event) {
		g.events.Enqueue(ev)
	})

	if err := g.loadMenu(); err != nil {
		return nil, fmt.Errorf("failed to load menu scene: %v", err)
	}

	return g, nil
}

// Mode returns the current game mode.
func (g *Game) Mode() GameMode {
	return g.mode
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) toggleMute() bool {
	if g.sound == nil {
		return true
	}
	return g.sound.ToggleMute()
}

func (g *Game) muted() bool {
	return g.sound == nil || g.sound.Muted()
}

func (g *Game) loadMenu() error {
	g.gameManager.Stop()
	menu, err := scenes.NewMenuScene(scenes.MenuSceneOptions{
		OnStart:      g.startGame,
		OnToggleMute: g.toggleMute,
		Muted:        g.muted(),
	})
	if err != nil {
		return fmt.Errorf("failed to create menu scene: %v", err)
	}
	if err := g.SetScene(menu); err != nil {
		return fmt.Errorf("failed to set menu scene: %v", err)
	}
	g.mode = GameModeMenu
	return nil
}

// startGame starts a new session and shows it.
func (g *Game) startGame() error {
	if err := g.gameManager.StartNewGame(g.ctx); err != nil {
		return fmt.Errorf("failed to start new game: %v", err)
	}
	if err := g.loadGame(); err != nil {
		return fmt.Errorf("failed to load game scene: %v", err)
	}
	return nil
}

func (g *Game) loadGame() error {
	gameScene, err := scenes.NewGameScene(scenes.NewGameSceneOptions{
		Controller:   g.gameManager,
		Events:       g.events,
		OnToggleMute: g.toggleMute,
	})
	if err != nil {
		return fmt.Errorf("failed to create game scene: %v", err)
	}
	if err := g.SetScene(gameScene); err != nil {
		return fmt.Errorf("failed to set game scene: %v", err)
	}
	g.mode = GameModePlay
	return nil
}

func (g *Game) loadGameOver(final *types.Snapshot) error {
	g.gameManager.Stop()
	gameOver, err := scenes.NewGameOverScene(final)
	if err != nil {
		return fmt.Errorf("failed to create game over scene: %v", err)
	}
	if err := g.SetScene(gameOver); err != nil {
		return fmt.Errorf("failed to set game over scene: %v", err)
	}
	g.mode = GameModeOver
	return nil
}

func (g *Game) loadError(msg string) error {
	g.gameManager.Stop()
	errorScene, err := scenes.NewErrorScene(msg)
	if err != nil {
		return fmt.Errorf("failed to create error scene: %v", err)
	}
	if err := g.SetScene(errorScene); err != nil {
		return fmt.Errorf("failed to set error scene: %v", err)
	}
	g.mode = GameModeError
	return nil
}

func (g *Game) Update() error {
	// Handle input
	if err := g.handleInput(); err != nil {
		return fmt.Errorf("failed to handle input: %v", err)
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	if g.mode == GameModePlay {
		if err := g.checkGameOver(); err != nil {
			return fmt.Errorf("failed to check game over: %v", err)
		}
	}

	return nil
}

// checkGameOver switches to the game over scene once the session has ended.
func (g *Game) checkGameOver() error {
	snapshot := g.gameManager.Snapshot()
	if snapshot.Status != types.GameStatusGameOver {
		return nil
	}
	log.Debug("Session %s ended with score %d", snapshot.SessionID, snapshot.Score)
	return g.loadGameOver(snapshot)
}

func (g *Game) handleInput() error {
	switch g.mode {
	case GameModeMenu:
		if input.IsActionJustPressed(input.DefaultBindings, input.ActionStart) {
			if err := g.startGame(); err != nil {
				log.Error("Failed to start game: %v", err)
				if err := g.loadError("Failed to start game"); err != nil {
					return fmt.Errorf("failed to load error scene: %v", err)
				}
			}
		}
	case GameModePlay:
		// the game scene reads its own bindings
	case GameModeOver:
		if input.IsNegativeJustPressed() {
			if err := g.loadMenu(); err != nil {
				return fmt.Errorf("failed to load menu scene: %v", err)
			}
			break
		}
		if input.IsPositiveJustPressed() {
			if err := g.startGame(); err != nil {
				return fmt.Errorf("failed to restart game: %v", err)
			}
		}
	case GameModeError:
		if input.IsPositiveJustPressed() {
			if err := g.loadMenu(); err != nil {
				return fmt.Errorf("failed to load menu scene: %v", err)
			}
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Mode: %s", g.mode))

	if g.mode != GameModePlay {
		return
	}
	snapshot := g.gameManager.Snapshot()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Session: %.8s", snapshot.SessionID))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   Drop: %s", tetris.DropInterval(snapshot.Level)))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return objects.ScreenWidth, objects.ScreenHeight
}
