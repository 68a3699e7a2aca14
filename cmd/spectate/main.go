package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cbodonnell/tetris/client/network"
	"github.com/cbodonnell/tetris/pkg/game/constants"
	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/cbodonnell/tetris/pkg/log"
	"github.com/cbodonnell/tetris/pkg/messages"
	"github.com/cbodonnell/tetris/pkg/version"
)

func main() {
	addr := flag.String("addr", "ws://localhost:8080/ws", "Spectator feed URL")
	logLevel := flag.String("log-level", "warn", "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stderr, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Starting spectator version %s", version.Get())

	// Gracefully handle Ctrl+C to stop the program
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client := network.NewWSClient(network.NewWSClientOptions{
		ServerAddr: *addr,
		SnapshotHandler: func(snapshot *types.Snapshot) {
			fmt.Print(RenderSnapshot(snapshot))
		},
		EventHandler: func(sequence uint64, summary *messages.EventSummary) {
			if summary.LinesCleared > 0 {
				fmt.Printf("#%d %s cleared %d lines\n", sequence, summary.Action, summary.LinesCleared)
			}
			if summary.LevelAfter > summary.LevelBefore {
				fmt.Printf("#%d level %d\n", sequence, summary.LevelAfter)
			}
		},
	})
	if err := client.Connect(ctx); err != nil {
		panic(fmt.Sprintf("Failed to connect: %v", err))
	}

	err = client.HandleMessages(ctx)
	var closedByServer *network.ErrConnectionClosedByServer
	if errors.As(err, &closedByServer) {
		fmt.Println("Spectator feed ended.")
		return
	}
	fmt.Println("Exiting spectator.")
}

// RenderSnapshot draws the board as text, with the falling piece over the locked cells.
func RenderSnapshot(s *types.Snapshot) string {
	grid := s.Board
	if s.Current != nil {
		for _, c := range s.Current.Cells() {
			if c.Row >= 0 && c.Row < constants.Rows && c.Col >= 0 && c.Col < constants.Cols {
				grid[c.Row][c.Col] = uint8(s.Current.Type)
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n#%d %s  score %d  level %d  lines %d\n", s.Sequence, s.Status, s.Score, s.Level, s.LinesCleared)
	for _, row := range grid {
		b.WriteByte('|')
		for _, cell := range row {
			if cell == 0 {
				b.WriteString(" .")
				continue
			}
			b.WriteByte(' ')
			b.WriteString(types.TetrominoType(cell).String())
		}
		b.WriteString(" |\n")
	}
	b.WriteString("+" + strings.Repeat("--", constants.Cols) + "-+\n")
	if s.Next != nil {
		fmt.Fprintf(&b, "next %s", s.Next.Type)
	}
	if s.Held != nil {
		fmt.Fprintf(&b, "  held %s", s.Held.Type)
	}
	b.WriteByte('\n')
	return b.String()
}
