package cues

import (
	"github.com/cbodonnell/tetris/pkg/game"
	"github.com/cbodonnell/tetris/pkg/log"
)

// Player produces sound for cues and background music.
// Implementations must be safe for concurrent use.
type Player interface {
	Play(cue Cue)
	StartMusic()
	StopMusic()
}

// Dispatcher turns game events into calls on a Player.
type Dispatcher struct {
	player Player
}

func NewDispatcher(player Player) *Dispatcher {
	return &Dispatcher{player: player}
}

// Attach registers the dispatcher as an event handler of gm.
func (d *Dispatcher) Attach(gm *game.GameManager) {
	gm.RegisterHandler(d.Handle)
}

// Handle plays the cue for ev and starts or stops the music on status changes.
func (d *Dispatcher) Handle(ev game.Event) {
	if cue, ok := For(ev); ok {
		log.Trace("Playing %s cue for %s", cue.Kind, ev.Action)
		d.player.Play(cue)
	}

	if !ev.Applied && !ev.Locked {
		return
	}
	switch {
	case ev.Action == game.ActionStart, ev.Action == game.ActionResume:
		d.player.StartMusic()
	case ev.Action == game.ActionPause, ev.BecameGameOver():
		d.player.StopMusic()
	}
}
