package sound

import (
	"time"

	"github.com/cbodonnell/tetris/pkg/cues"
	"github.com/gopxl/beep"
)

var (
	lineClearNotes = []float64{523.25, 659.25, 783.99}
	tetrisNotes    = []float64{523.25, 659.25, 783.99, 1046.50}
	levelUpNotes   = []float64{261.63, 329.63, 392.00, 523.25, 659.25}
	gameOverNotes  = []float64{392.00, 349.23, 329.63, 293.66, 261.63, 220.00}
)

// CueNotes returns the arrangement of a cue.
func CueNotes(cue cues.Cue) []Note {
	switch cue.Kind {
	case cues.KindMove:
		return []Note{
			{Freq: 200, Wave: WaveSquare, Duration: 40 * time.Millisecond, Volume: 0.12},
		}
	case cues.KindRotate:
		return []Note{
			{Freq: 380, EndFreq: 560, Wave: WaveTriangle, Duration: 70 * time.Millisecond, Volume: 0.18},
		}
	case cues.KindLock:
		return []Note{
			{Freq: 160, EndFreq: 80, Wave: WaveSaw, Duration: 100 * time.Millisecond, Volume: 0.22},
		}
	case cues.KindHardDrop:
		return []Note{
			{Freq: 280, EndFreq: 80, Wave: WaveSaw, Duration: 40 * time.Millisecond, Volume: 0.30},
			{Freq: 140, Wave: WaveSquare, Start: 40 * time.Millisecond, Duration: 80 * time.Millisecond, Volume: 0.18},
		}
	case cues.KindLineClear:
		if cue.Lines >= 4 {
			return sequence(tetrisNotes, WaveSquare, 70*time.Millisecond, 280*time.Millisecond, 0.35)
		}
		lines := min(max(cue.Lines, 1), len(lineClearNotes))
		return sequence(lineClearNotes[:lines], WaveSquare, 90*time.Millisecond, 180*time.Millisecond, 0.30)
	case cues.KindLevelUp:
		return sequence(levelUpNotes, WaveTriangle, 60*time.Millisecond, 140*time.Millisecond, 0.28)
	case cues.KindGameOver:
		return sequence(gameOverNotes, WaveSaw, 180*time.Millisecond, 220*time.Millisecond, 0.25)
	default:
		return nil
	}
}

// sequence starts one note every step.
func sequence(freqs []float64, wave Wave, step, duration time.Duration, volume float64) []Note {
	notes := make([]Note, len(freqs))
	for i, f := range freqs {
		notes[i] = Note{
			Freq:     f,
			Wave:     wave,
			Start:    time.Duration(i) * step,
			Duration: duration,
			Volume:   volume,
		}
	}
	return notes
}

// CueStreamer streams a cue at rate. It returns nil for an unknown cue.
func CueStreamer(cue cues.Cue, rate beep.SampleRate) beep.Streamer {
	notes := CueNotes(cue)
	if len(notes) == 0 {
		return nil
	}
	return Arrange(rate, 0, notes...)
}
