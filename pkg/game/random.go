package game

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/cbodonnell/tetris/pkg/game/types"
)

// Randomizer returns the type of the next piece to spawn.
type Randomizer func() types.TetrominoType

// NewUniformRandomizer picks each type with equal probability.
// A nil src is seeded from the clock.
func NewUniformRandomizer(src rand.Source) Randomizer {
	if src == nil {
		seed := uint64(time.Now().UnixNano())
		src = rand.NewPCG(seed, seed>>32|1)
	}
	r := rand.New(src)
	return func() types.TetrominoType {
		return types.AllTetrominoTypes[r.IntN(types.TetrominoTypeCount)]
	}
}

// NewSeededRandomizer is a uniform randomizer with a reproducible sequence.
func NewSeededRandomizer(seed uint64) Randomizer {
	return NewUniformRandomizer(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSequenceRandomizer cycles through seq forever. It panics if seq is empty.
func NewSequenceRandomizer(seq ...types.TetrominoType) Randomizer {
	if len(seq) == 0 {
		panic("sequence randomizer needs at least one type")
	}
	var (
		lock sync.Mutex
		i    int
	)
	return func() types.TetrominoType {
		lock.Lock()
		defer lock.Unlock()
		t := seq[i%len(seq)]
		i++
		return t
	}
}
