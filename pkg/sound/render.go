package sound

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cbodonnell/tetris/pkg/cues"
	"github.com/gopxl/beep"
)

// BytesPerFrame is the size of one stereo 16-bit frame.
const BytesPerFrame = 4

// Render drains s into interleaved signed 16-bit little-endian stereo PCM.
// s must be finite.
func Render(s beep.Streamer) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("streamer is nil")
	}

	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to render stream: %v", err)
	}
	return out, nil
}

// RenderCue renders a cue at SampleRate.
func RenderCue(cue cues.Cue) ([]byte, error) {
	s := CueStreamer(cue, SampleRate)
	if s == nil {
		return nil, fmt.Errorf("no sound for cue %s", cue.Kind)
	}
	return Render(s)
}

// RenderTheme renders one loopable pass of the theme at SampleRate.
func RenderTheme() ([]byte, error) {
	return Render(Theme(SampleRate))
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
