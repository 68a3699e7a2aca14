package audio

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/cbodonnell/tetris/pkg/cues"
	"github.com/cbodonnell/tetris/pkg/log"
	"github.com/cbodonnell/tetris/pkg/sound"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Player plays cues and the theme through the ebiten audio context.
type Player struct {
	context *audio.Context
	cache   *pcmCache

	lock        sync.Mutex
	muted       bool
	musicWanted bool
	music       *audio.Player
}

var _ cues.Player = &Player{}

type NewPlayerOptions struct {
	// Muted starts the player without output
	Muted bool
}

// NewPlayer creates a player on the process-wide audio context, creating it if needed.
func NewPlayer(opts NewPlayerOptions) *Player {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(int(sound.SampleRate))
	}
	return &Player{
		context: ctx,
		cache:   newPCMCache(sound.RenderCue, sound.RenderTheme),
		muted:   opts.Muted,
	}
}

func (p *Player) Play(cue cues.Cue) {
	p.lock.Lock()
	muted := p.muted
	p.lock.Unlock()
	if muted {
		return
	}

	pcm, err := p.cache.cue(cue)
	if err != nil {
		log.Error("Failed to render %s cue: %v", cue.Kind, err)
		return
	}
	p.context.NewPlayerFromBytes(pcm).Play()
}

func (p *Player) StartMusic() {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.musicWanted = true
	if p.muted {
		return
	}
	if err := p.playMusicLocked(); err != nil {
		log.Error("Failed to start music: %v", err)
	}
}

func (p *Player) StopMusic() {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.musicWanted = false
	if p.music == nil {
		return
	}
	p.music.Pause()
	if err := p.music.Rewind(); err != nil {
		log.Error("Failed to rewind music: %v", err)
	}
}

// ToggleMute silences or restores all output and returns the new muted state.
func (p *Player) ToggleMute() bool {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.muted = !p.muted
	switch {
	case p.muted && p.music != nil:
		p.music.Pause()
	case !p.muted && p.musicWanted:
		if err := p.playMusicLocked(); err != nil {
			log.Error("Failed to resume music: %v", err)
		}
	}
	log.Info("Sound muted: %t", p.muted)
	return p.muted
}

func (p *Player) Muted() bool {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.muted
}

func (p *Player) playMusicLocked() error {
	if p.music == nil {
		pcm, err := p.cache.theme()
		if err != nil {
			return fmt.Errorf("failed to render theme: %v", err)
		}
		loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		music, err := p.context.NewPlayer(loop)
		if err != nil {
			return fmt.Errorf("failed to create music player: %v", err)
		}
		p.music = music
	}
	p.music.Play()
	return nil
}

// pcmCache renders every cue variant and the theme at most once.
type pcmCache struct {
	renderCue   func(cues.Cue) ([]byte, error)
	renderTheme func() ([]byte, error)

	lock  sync.Mutex
	cues  map[cues.Cue][]byte
	music []byte
}

func newPCMCache(renderCue func(cues.Cue) ([]byte, error), renderTheme func() ([]byte, error)) *pcmCache {
	return &pcmCache{
		renderCue:   renderCue,
		renderTheme: renderTheme,
		cues:        make(map[cues.Cue][]byte),
	}
}

func (c *pcmCache) cue(cue cues.Cue) ([]byte, error) {
	// only line clears sound different per line count
	if cue.Kind != cues.KindLineClear {
		cue.Lines = 0
	}

	c.lock.Lock()
	defer c.lock.Unlock()
	if pcm, ok := c.cues[cue]; ok {
		return pcm, nil
	}
	pcm, err := c.renderCue(cue)
	if err != nil {
		return nil, err
	}
	c.cues[cue] = pcm
	return pcm, nil
}

func (c *pcmCache) theme() ([]byte, error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.music != nil {
		return c.music, nil
	}
	pcm, err := c.renderTheme()
	if err != nil {
		return nil, err
	}
	c.music = pcm
	return pcm, nil
}
