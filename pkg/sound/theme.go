package sound

import (
	"time"

	"github.com/gopxl/beep"
)

// beat is a quarter note of the theme.
const beat = 320 * time.Millisecond

const (
	themeVolume = 0.12
	// themeGate is the share of each step a note sounds for
	themeGate = 0.82
)

type step struct {
	// freq of 0 is a rest
	freq  float64
	beats float64
}

// Korobeiniki, part A then the bridge.
var themeSteps = []step{
	{659.25, 1}, {493.88, 0.5}, {523.25, 0.5}, {587.33, 1}, {523.25, 0.5}, {493.88, 0.5},
	{440.00, 1}, {440.00, 0.5}, {523.25, 0.5}, {659.25, 1}, {587.33, 0.5}, {523.25, 0.5},
	{493.88, 1.5}, {523.25, 0.5}, {587.33, 1}, {659.25, 1},
	{523.25, 1}, {440.00, 1}, {440.00, 2},
	{0, 0.5},
	{587.33, 1}, {698.46, 0.5}, {880.00, 1}, {783.99, 0.5}, {698.46, 0.5},
	{659.25, 1.5}, {523.25, 0.5}, {659.25, 1}, {587.33, 0.5}, {523.25, 0.5},
	{493.88, 1}, {493.88, 0.5}, {523.25, 0.5}, {587.33, 1}, {659.25, 1},
	{523.25, 1}, {440.00, 1}, {440.00, 2},

	{329.63, 2}, {261.63, 2},
	{293.66, 2}, {246.94, 2},
	{261.63, 2}, {220.00, 2},
	{207.65, 2}, {246.94, 2},
	{329.63, 2}, {261.63, 2},
	{293.66, 2}, {246.94, 2},
	{261.63, 1}, {329.63, 1}, {440.00, 2},
	{415.30, 2}, {0, 2},
}

func (s step) duration() time.Duration {
	return time.Duration(s.beats * float64(beat))
}

// ThemeDuration returns the length of one pass of the theme, including trailing rests.
func ThemeDuration() time.Duration {
	var total time.Duration
	for _, s := range themeSteps {
		total += s.duration()
	}
	return total
}

// ThemeNotes returns one pass of the theme. Rests produce no note.
func ThemeNotes() []Note {
	notes := make([]Note, 0, len(themeSteps))
	var t time.Duration
	for _, s := range themeSteps {
		d := s.duration()
		if s.freq > 0 {
			notes = append(notes, Note{
				Freq:     s.freq,
				Wave:     WaveSquare,
				Start:    t,
				Duration: time.Duration(float64(d) * themeGate),
				Volume:   themeVolume,
			})
		}
		t += d
	}
	return notes
}

// Theme streams one pass of the theme, padded so it can be looped seamlessly.
func Theme(rate beep.SampleRate) beep.Streamer {
	return Arrange(rate, ThemeDuration(), ThemeNotes()...)
}
