package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cbodonnell/tetris/client/audio"
	clientgame "github.com/cbodonnell/tetris/client/game"
	"github.com/cbodonnell/tetris/client/objects"
	"github.com/cbodonnell/tetris/pkg/api"
	"github.com/cbodonnell/tetris/pkg/clients"
	"github.com/cbodonnell/tetris/pkg/cues"
	"github.com/cbodonnell/tetris/pkg/game"
	"github.com/cbodonnell/tetris/pkg/log"
	"github.com/cbodonnell/tetris/pkg/network"
	"github.com/cbodonnell/tetris/pkg/queue"
	"github.com/cbodonnell/tetris/pkg/state"
	"github.com/cbodonnell/tetris/pkg/version"
	"github.com/cbodonnell/tetris/pkg/workers"
	"github.com/hajimehoshi/ebiten/v2"
)

// spectatorEventQueueSize bounds the events waiting to be broadcast to spectators
const spectatorEventQueueSize = 1024

func main() {
	logLevel := flag.String("log-level", envOrDefault("TETRIS_LOG_LEVEL", "info"), "Log level")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	mute := flag.Bool("mute", false, "Start with sound muted")
	spectateAddr := flag.String("spectate-addr", os.Getenv("TETRIS_SPECTATE_ADDR"), "Address to serve the spectator feed on, e.g. :8080 (disabled if empty)")
	seed := flag.Uint64("seed", 0, "Seed for piece selection (0 uses the clock)")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting client version %s", version.Get())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	randomizer := game.NewUniformRandomizer(nil)
	if *seed != 0 {
		log.Info("Using piece seed %d", *seed)
		randomizer = game.NewSeededRandomizer(*seed)
	}

	stateManager := state.NewInMemoryStateManager()
	gameManagerOpts := game.NewGameManagerOptions{
		Engine:       game.NewEngine(randomizer),
		StateManager: stateManager,
	}

	if *spectateAddr != "" {
		eventQueue := queue.NewInMemoryQueueWithSize(spectatorEventQueueSize)
		gameManagerOpts.EventQueue = eventQueue
		startSpectatorFeed(ctx, *spectateAddr, stateManager, eventQueue)
	}

	gameManager := game.NewGameManager(gameManagerOpts)
	defer gameManager.Stop()

	player := audio.NewPlayer(audio.NewPlayerOptions{
		Muted: *mute,
	})
	cues.NewDispatcher(player).Attach(gameManager)

	g, err := clientgame.NewGame(clientgame.NewGameOptions{
		Context:     ctx,
		Debug:       *debug,
		GameManager: gameManager,
		Sound:       player,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(objects.ScreenWidth, objects.ScreenHeight)
	ebiten.SetWindowTitle("Tetris")
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}

// startSpectatorFeed serves the read-only spectator feed until ctx is done.
func startSpectatorFeed(ctx context.Context, addr string, stateManager state.StateManager, eventQueue queue.Queue) {
	clientEvents := clients.NewClientEventManager()
	clientEvents.RegisterHandler(func(event clients.ClientEvent) {
		log.Info("Spectator %d %s from %s", event.ClientID, event.Type, event.RemoteAddr)
	})
	clientManager := clients.NewClientManager(clientEvents)
	networkManager := network.NewNetworkManager(network.NewNetworkManagerOptions{
		ClientManager: clientManager,
	})

	broadcastWorker := workers.NewBroadcastWorker(workers.NewBroadcastWorkerOptions{
		EventQueue:  eventQueue,
		Broadcaster: networkManager,
	})
	go broadcastWorker.Start(ctx)

	apiServerOpts := api.NewAPIServerOptions{
		Addr:           addr,
		StateManager:   stateManager,
		NetworkManager: networkManager,
	}
	tlsCertFile := os.Getenv("TETRIS_SPECTATE_TLS_CERT_FILE")
	tlsKeyFile := os.Getenv("TETRIS_SPECTATE_TLS_KEY_FILE")
	if tlsCertFile != "" && tlsKeyFile != "" {
		apiServerOpts.TLS = &api.TLSConfig{
			CertFile: tlsCertFile,
			KeyFile:  tlsKeyFile,
		}
	}
	server := api.NewAPIServer(apiServerOpts)
	go func() {
		if err := server.Start(ctx); err != nil {
			log.Error("Spectator feed stopped: %v", err)
		}
	}()
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
