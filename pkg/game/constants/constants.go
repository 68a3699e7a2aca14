package constants

import "time"

const (
	// Rows is the number of rows on the board
	Rows int = 20
	// Cols is the number of columns on the board
	Cols int = 10

	// SpawnRow is the row of a new piece's bounding box origin
	SpawnRow int = 0
	// SpawnCol centers a 4-wide bounding box on the board
	SpawnCol int = 3

	// RotationStates is the number of orientations of every piece
	RotationStates int = 4
	// PieceCells is the number of cells occupied by every piece
	PieceCells int = 4
	// PieceBoxSize is the width and height of a piece's local grid
	PieceBoxSize int = 4

	// LinesPerLevel is the number of cleared lines needed to advance a level
	LinesPerLevel int = 10
	// HardDropPointsPerRow is the score awarded for every row of a hard drop
	HardDropPointsPerRow int = 2

	// BaseDropInterval is the descent interval at level 1
	BaseDropInterval time.Duration = 1000 * time.Millisecond
	// DropIntervalStep is subtracted from the descent interval for every level above 1
	DropIntervalStep time.Duration = 90 * time.Millisecond
	// MinDropInterval is the fastest descent interval
	MinDropInterval time.Duration = 100 * time.Millisecond
)

// LineClearPoints maps the number of lines cleared by a single lock
// to the points awarded per level. Four or more lines score the last entry.
var LineClearPoints = [...]int{0, 100, 300, 500, 800}

// KickOffsets are the column offsets tried, in order, when a rotation is blocked.
var KickOffsets = [...]int{0, 1, -1, 2, -2}
