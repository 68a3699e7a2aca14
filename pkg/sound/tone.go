package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the rate every cue and theme is rendered at.
const SampleRate = beep.SampleRate(44100)

const (
	// attack is the linear fade-in of every note
	attack = 10 * time.Millisecond
	// decayFloor is the gain a note decays to by its end
	decayFloor = 0.001
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSquare Wave = iota
	WaveTriangle
	WaveSaw
)

// Note is a single enveloped tone in an arrangement.
type Note struct {
	// Freq is the starting frequency in Hz
	Freq float64
	// EndFreq, if set, is reached by an exponential sweep at the end of the note
	EndFreq  float64
	Wave     Wave
	Start    time.Duration
	Duration time.Duration
	// Volume is the peak gain, 0-1
	Volume float64
}

// End returns the time the note finishes.
func (n Note) End() time.Duration {
	return n.Start + n.Duration
}

type tone struct {
	note    Note
	rate    beep.SampleRate
	total   int
	attack  int
	pos     int
	phase   float64
	logFreq float64
}

// Tone streams a single note, ignoring its Start.
func Tone(n Note, rate beep.SampleRate) beep.Streamer {
	t := &tone{
		note:   n,
		rate:   rate,
		total:  rate.N(n.Duration),
		attack: min(rate.N(attack), rate.N(n.Duration)),
	}
	if n.EndFreq > 0 && n.Freq > 0 {
		t.logFreq = math.Log(n.EndFreq / n.Freq)
	}
	return t
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		val := oscillate(t.note.Wave, t.phase) * t.gain()
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq() / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

func (t *tone) freq() float64 {
	if t.logFreq == 0 {
		return t.note.Freq
	}
	progress := float64(t.pos) / float64(t.total)
	return t.note.Freq * math.Exp(t.logFreq*progress)
}

// gain ramps linearly up to the note volume, then decays exponentially to decayFloor.
func (t *tone) gain() float64 {
	vol := t.note.Volume
	if t.pos < t.attack {
		return vol * float64(t.pos) / float64(t.attack)
	}
	span := t.total - t.attack
	if span <= 0 || vol <= decayFloor {
		return vol
	}
	progress := float64(t.pos-t.attack) / float64(span)
	return vol * math.Pow(decayFloor/vol, progress)
}

// oscillate returns the value of wave at phase, which is in [0, 1).
func oscillate(wave Wave, phase float64) float64 {
	switch wave {
	case WaveTriangle:
		return 4*math.Abs(phase-0.5) - 1
	case WaveSaw:
		return 2*phase - 1
	default:
		if phase < 0.5 {
			return 1
		}
		return -1
	}
}

// Span returns the time from zero until the last note ends.
func Span(notes []Note) time.Duration {
	var span time.Duration
	for _, n := range notes {
		span = max(span, n.End())
	}
	return span
}

// Arrange mixes notes at their start offsets into a streamer of exactly length.
// A zero length uses the span of the notes.
func Arrange(rate beep.SampleRate, length time.Duration, notes ...Note) beep.Streamer {
	if length <= 0 {
		length = Span(notes)
	}
	streamers := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		streamers = append(streamers, beep.Seq(beep.Silence(rate.N(n.Start)), Tone(n, rate)))
	}
	return beep.Take(rate.N(length), beep.Seq(beep.Mix(streamers...), beep.Silence(-1)))
}

// WithVolume scales s by vol, where 1 leaves it unchanged.
func WithVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
