package game

import (
	"fmt"

	"github.com/cbodonnell/tetris/pkg/game/constants"
	"github.com/cbodonnell/tetris/pkg/game/types"
)

// LockResult describes the most recent lock of a piece into the board.
type LockResult struct {
	// Piece is the piece that was locked
	Piece types.Piece
	// LinesCleared is the number of rows removed by this lock
	LinesCleared int
	// Points is the line clear score awarded by this lock
	Points int
	// LevelBefore is the level used to score this lock
	LevelBefore int
	// LevelAfter is the level once the cleared lines were counted
	LevelAfter int
	// GameOver is true if the piece spawned after the lock did not fit
	GameOver bool
}

// Engine owns the board and every piece of a single game session.
// It is not safe for concurrent use; GameManager serializes access to it.
type Engine struct {
	board types.Board

	current    types.Piece
	hasCurrent bool
	next       types.Piece
	hasNext    bool
	held       types.Piece
	hasHeld    bool

	score   int
	level   int
	lines   int
	status  types.GameStatus
	canHold bool

	random   Randomizer
	locks    uint64
	lastLock LockResult
}

// NewEngine creates an idle engine drawing pieces from random.
// A nil random uses a uniform randomizer seeded from the clock.
func NewEngine(random Randomizer) *Engine {
	if random == nil {
		random = NewUniformRandomizer(nil)
	}
	return &Engine{
		level:   1,
		status:  types.GameStatusIdle,
		canHold: true,
		random:  random,
	}
}

// StartNew resets the board and counters and spawns the first piece.
func (e *Engine) StartNew() {
	e.board = types.Board{}
	e.score = 0
	e.level = 1
	e.lines = 0
	e.canHold = true
	e.held, e.hasHeld = types.Piece{}, false
	e.locks = 0
	e.lastLock = LockResult{}
	e.status = types.GameStatusRunning

	e.next, e.hasNext = e.spawnRandom(), true
	e.spawnNext()
}

// Pause stops a running game. It reports whether the status changed.
func (e *Engine) Pause() bool {
	if e.status != types.GameStatusRunning {
		return false
	}
	e.status = types.GameStatusPaused
	return true
}

// Resume continues a paused game. It reports whether the status changed.
func (e *Engine) Resume() bool {
	if e.status != types.GameStatusPaused {
		return false
	}
	e.status = types.GameStatusRunning
	return true
}

func (e *Engine) MoveLeft() bool {
	return e.shift(-1)
}

func (e *Engine) MoveRight() bool {
	return e.shift(1)
}

func (e *Engine) shift(dc int) bool {
	if !e.active() {
		return false
	}
	moved := e.current.Moved(0, dc)
	if !e.fits(moved) {
		return false
	}
	e.current = moved
	return true
}

// MoveDown advances the current piece one row.
// It returns false if the piece could not move and was locked instead.
func (e *Engine) MoveDown() bool {
	if !e.active() {
		return false
	}
	below := e.current.Moved(1, 0)
	if e.fits(below) {
		e.current = below
		return true
	}
	e.lockPiece()
	return false
}

// HardDrop drops the current piece as far as it goes and locks it.
// It returns the number of rows the piece descended.
func (e *Engine) HardDrop() int {
	if !e.active() {
		return 0
	}
	dropped := 0
	for e.fits(e.current.Moved(1, 0)) {
		e.current = e.current.Moved(1, 0)
		dropped++
	}
	e.score += dropped * constants.HardDropPointsPerRow
	e.lockPiece()
	return dropped
}

func (e *Engine) RotateClockwise() bool {
	if !e.active() {
		return false
	}
	return e.tryRotate(e.current.Rotation + 1)
}

func (e *Engine) RotateCounterClockwise() bool {
	if !e.active() {
		return false
	}
	return e.tryRotate(e.current.Rotation + 3)
}

// tryRotate places the current piece in the target rotation at the first kick offset that fits.
func (e *Engine) tryRotate(rotation int) bool {
	rotated := e.current.WithRotation(rotation)
	for _, kick := range constants.KickOffsets {
		candidate := rotated.Moved(0, kick)
		if e.fits(candidate) {
			e.current = candidate
			return true
		}
	}
	return false
}

// Hold swaps the current piece with the hold slot. It is allowed once per piece.
func (e *Engine) Hold() bool {
	if !e.active() || !e.canHold {
		return false
	}

	previous, hadHeld := e.held, e.hasHeld
	e.held, e.hasHeld = types.NewSpawnPiece(e.current.Type), true
	e.canHold = false

	if !hadHeld {
		e.spawnNext()
		return true
	}

	e.current = types.NewSpawnPiece(previous.Type)
	if !e.fits(e.current) {
		e.triggerGameOver()
	}
	return true
}

// CanPlace reports whether a piece of type t with the given rotation fits at (row, col).
func (e *Engine) CanPlace(t types.TetrominoType, rotation, row, col int) bool {
	for _, c := range types.CellsAt(t, rotation, row, col) {
		if c.Row < 0 || c.Row >= constants.Rows || c.Col < 0 || c.Col >= constants.Cols {
			return false
		}
		if e.board[c.Row][c.Col] != 0 {
			return false
		}
	}
	return true
}

func (e *Engine) fits(p types.Piece) bool {
	return e.CanPlace(p.Type, p.Rotation, p.Row, p.Col)
}

func (e *Engine) active() bool {
	return e.hasCurrent && e.status == types.GameStatusRunning
}

func (e *Engine) lockPiece() {
	if !e.hasCurrent {
		return
	}

	for _, c := range e.current.Cells() {
		e.board[c.Row][c.Col] = uint8(e.current.Type)
	}

	levelBefore := e.level
	cleared := e.clearLines()
	points := linePoints(cleared, levelBefore)
	e.score += points
	e.lines += cleared
	e.level = max(1, e.lines/constants.LinesPerLevel+1)
	e.canHold = true

	e.lastLock = LockResult{
		Piece:        e.current,
		LinesCleared: cleared,
		Points:       points,
		LevelBefore:  levelBefore,
		LevelAfter:   e.level,
	}
	e.locks++

	e.spawnNext()
	e.lastLock.GameOver = e.status == types.GameStatusGameOver
}

// clearLines removes every full row and returns how many were removed.
func (e *Engine) clearLines() int {
	cleared := 0
	for r := constants.Rows - 1; r >= 0; r-- {
		if e.rowFull(r) {
			e.removeRow(r)
			// the row above now occupies index r
			r++
			cleared++
		}
	}
	return cleared
}

func (e *Engine) rowFull(row int) bool {
	for c := 0; c < constants.Cols; c++ {
		if e.board[row][c] == 0 {
			return false
		}
	}
	return true
}

func (e *Engine) removeRow(row int) {
	for r := row; r > 0; r-- {
		e.board[r] = e.board[r-1]
	}
	e.board[0] = [constants.Cols]uint8{}
}

func linePoints(cleared, level int) int {
	if cleared <= 0 {
		return 0
	}
	idx := min(cleared, len(constants.LineClearPoints)-1)
	return constants.LineClearPoints[idx] * level
}

// spawnNext promotes the queued piece and queues a new one.
func (e *Engine) spawnNext() {
	e.current, e.hasCurrent = e.next, e.hasNext
	e.next, e.hasNext = e.spawnRandom(), true

	if e.hasCurrent && !e.fits(e.current) {
		e.triggerGameOver()
	}
}

func (e *Engine) spawnRandom() types.Piece {
	return types.NewSpawnPiece(e.random())
}

func (e *Engine) triggerGameOver() {
	e.status = types.GameStatusGameOver
	e.current, e.hasCurrent = types.Piece{}, false
}

// Cell returns the color index at (row, col).
// Coordinates outside the board are a programming error and panic.
func (e *Engine) Cell(row, col int) uint8 {
	if row < 0 || row >= constants.Rows || col < 0 || col >= constants.Cols {
		panic(fmt.Sprintf("cell (%d, %d) is outside the %dx%d board", row, col, constants.Rows, constants.Cols))
	}
	return e.board[row][col]
}

// Board returns a copy of the grid.
func (e *Engine) Board() types.Board {
	return e.board
}

func (e *Engine) Current() (types.Piece, bool) {
	return e.current, e.hasCurrent
}

func (e *Engine) Next() (types.Piece, bool) {
	return e.next, e.hasNext
}

func (e *Engine) Held() (types.Piece, bool) {
	return e.held, e.hasHeld
}

// Ghost returns the current piece projected onto its landing row.
// It reports false when there is no current piece or it cannot descend at all.
func (e *Engine) Ghost() (types.Piece, bool) {
	if !e.hasCurrent {
		return types.Piece{}, false
	}
	ghost := e.current
	for e.fits(ghost.Moved(1, 0)) {
		ghost = ghost.Moved(1, 0)
	}
	if ghost.Row == e.current.Row {
		return types.Piece{}, false
	}
	return ghost, true
}

func (e *Engine) Score() int {
	return e.score
}

func (e *Engine) Level() int {
	return e.level
}

func (e *Engine) LinesCleared() int {
	return e.lines
}

func (e *Engine) Status() types.GameStatus {
	return e.status
}

func (e *Engine) CanHold() bool {
	return e.canHold
}

// Locks returns the number of pieces locked in the current session.
func (e *Engine) Locks() uint64 {
	return e.locks
}

// LastLock returns the result of the most recent lock in the current session.
func (e *Engine) LastLock() (LockResult, bool) {
	return e.lastLock, e.locks > 0
}
