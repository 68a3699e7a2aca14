package types

import "fmt"

// TetrominoType identifies one of the seven pieces.
// The value doubles as the color index written to the board, so 0 is never a valid type.
type TetrominoType uint8

const (
	TetrominoI TetrominoType = iota + 1
	TetrominoO
	TetrominoT
	TetrominoS
	TetrominoZ
	TetrominoJ
	TetrominoL
)

// TetrominoTypeCount is the number of distinct piece types.
const TetrominoTypeCount = 7

// AllTetrominoTypes lists every piece type in color index order.
var AllTetrominoTypes = [TetrominoTypeCount]TetrominoType{
	TetrominoI,
	TetrominoO,
	TetrominoT,
	TetrominoS,
	TetrominoZ,
	TetrominoJ,
	TetrominoL,
}

func (t TetrominoType) String() string {
	switch t {
	case TetrominoI:
		return "I"
	case TetrominoO:
		return "O"
	case TetrominoT:
		return "T"
	case TetrominoS:
		return "S"
	case TetrominoZ:
		return "Z"
	case TetrominoJ:
		return "J"
	case TetrominoL:
		return "L"
	}
	return "Unknown"
}

// Valid reports whether t is one of the seven piece types.
func (t TetrominoType) Valid() bool {
	return t >= TetrominoI && t <= TetrominoL
}

// GameStatus is the lifecycle state of a game session.
type GameStatus uint8

const (
	GameStatusIdle GameStatus = iota
	GameStatusRunning
	GameStatusPaused
	GameStatusGameOver
)

func (s GameStatus) String() string {
	switch s {
	case GameStatusIdle:
		return "idle"
	case GameStatusRunning:
		return "running"
	case GameStatusPaused:
		return "paused"
	case GameStatusGameOver:
		return "gameover"
	}
	return "unknown"
}

func (s GameStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *GameStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "idle":
		*s = GameStatusIdle
	case "running":
		*s = GameStatusRunning
	case "paused":
		*s = GameStatusPaused
	case "gameover":
		*s = GameStatusGameOver
	default:
		return fmt.Errorf("unknown game status: %s", text)
	}
	return nil
}
