package types

import "github.com/cbodonnell/tetris/pkg/game/constants"

// Board is the grid of color indices. 0 is empty, 1-7 is a locked piece's type.
type Board [constants.Rows][constants.Cols]uint8

// Snapshot is a read-only copy of a game session at one point in time.
// Optional pieces are nil when absent.
type Snapshot struct {
	// SessionID identifies the game session that produced the snapshot
	SessionID string `json:"sessionID"`
	// Sequence increases with every published snapshot of a session
	Sequence uint64 `json:"sequence"`
	// Board is the locked cells
	Board Board `json:"board"`
	// Current is the falling piece
	Current *Piece `json:"current,omitempty"`
	// Ghost is the landing projection of the current piece
	Ghost *Piece `json:"ghost,omitempty"`
	// Next is the queued piece
	Next *Piece `json:"next,omitempty"`
	// Held is the piece in the hold slot
	Held *Piece `json:"held,omitempty"`

	Score        int        `json:"score"`
	Level        int        `json:"level"`
	LinesCleared int        `json:"linesCleared"`
	Status       GameStatus `json:"status"`
	CanHold      bool       `json:"canHold"`
}

// Copy returns a deep copy of the snapshot.
func (s *Snapshot) Copy() *Snapshot {
	if s == nil {
		return nil
	}
	c := *s
	c.Current = copyPiece(s.Current)
	c.Ghost = copyPiece(s.Ghost)
	c.Next = copyPiece(s.Next)
	c.Held = copyPiece(s.Held)
	return &c
}

// Equal reports whether two snapshots hold the same values.
func (s *Snapshot) Equal(other *Snapshot) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.SessionID == other.SessionID &&
		s.Sequence == other.Sequence &&
		s.Board == other.Board &&
		piecesEqual(s.Current, other.Current) &&
		piecesEqual(s.Ghost, other.Ghost) &&
		piecesEqual(s.Next, other.Next) &&
		piecesEqual(s.Held, other.Held) &&
		s.Score == other.Score &&
		s.Level == other.Level &&
		s.LinesCleared == other.LinesCleared &&
		s.Status == other.Status &&
		s.CanHold == other.CanHold
}

func copyPiece(p *Piece) *Piece {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func piecesEqual(a, b *Piece) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
