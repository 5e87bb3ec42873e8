// Package tetris is a falling-block puzzle engine: a fixed playfield, one
// falling piece, gravity, movement and rotation with collision, full-row
// clearing and a score/level progression that speeds gravity up.
//
// The engine draws nothing and reads no keyboard. A front-end feeds it
// elapsed time and Intents through Board.Tick and renders from Board.View.
package tetris

import (
	"slices"
	"time"
)

//go:generate go tool stringer -type=State -trimprefix=State

// State is the phase of the board's piece lifecycle.
type State int

const (
	StateSpawning State = iota
	StateFalling
	StateLocking
	StateClearing
	StateGameOver
)

// Config holds the values fixed for the lifetime of a Board.
type Config struct {
	Columns int
	Rows    int

	// Gravity is the starting interval between automatic downward moves.
	Gravity time.Duration
	// MoveRepeat and RotateRepeat gate how often a held intent is re-applied.
	MoveRepeat   time.Duration
	RotateRepeat time.Duration
}

// DefaultConfig returns the classic 10x20 board.
func DefaultConfig() Config {
	return Config{
		Columns:      10,
		Rows:         20,
		Gravity:      200 * time.Millisecond,
		MoveRepeat:   200 * time.Millisecond,
		RotateRepeat: 200 * time.Millisecond,
	}
}

// Intents are the player inputs sampled for one tick.
// Left, Right and Rotate are re-applied at most once per repeat delay while held.
type Intents struct {
	Left     bool
	Right    bool
	Rotate   bool
	SoftDrop bool
}

// Board owns the grid and the active piece and runs the piece lifecycle:
// spawn, fall, lock, clear, spawn again, until a lock leaves a block above the board.
// A Board is not safe for concurrent use.
type Board struct {
	cfg         Config
	grid        *Grid
	locked      *blockStore
	piece       *Piece
	progression *Progression
	shapes      ShapeSource
	hooks       Hooks
	state       State
	softDrop    bool

	gravity    *Timer
	horizontal *Timer
	rotation   *Timer
}

// New creates a board and spawns its first piece from shapes.
func New(cfg Config, shapes ShapeSource, hooks Hooks) *Board {
	b := &Board{
		cfg:    cfg,
		grid:   NewGrid(cfg.Columns, cfg.Rows),
		locked: newBlockStore(cfg.Columns * cfg.Rows),
		shapes: shapes,
		hooks:  hooks,
	}

	b.gravity = NewTimer(cfg.Gravity, true, b.moveDown)
	b.horizontal = NewTimer(cfg.MoveRepeat, false, nil)
	b.rotation = NewTimer(cfg.RotateRepeat, false, nil)

	b.Reset()
	return b
}

// Reset empties the playfield, restarts progression at level 1 and spawns a new piece.
func (b *Board) Reset() {
	b.grid.Reset()
	b.locked.reset()
	b.progression = NewProgression(b.cfg.Gravity)
	b.softDrop = false

	b.horizontal.Deactivate()
	b.rotation.Deactivate()
	b.gravity.SetDuration(b.progression.Interval())
	b.gravity.Activate()

	b.spawn()
}

// State returns the current lifecycle phase. Between ticks it is either
// StateFalling or StateGameOver.
func (b *Board) State() State {
	return b.state
}

// Tick advances the board by elapsed time with the given intents and returns
// the resulting state. Once the game is over Tick does nothing.
func (b *Board) Tick(elapsed time.Duration, in Intents) State {
	if b.state == StateGameOver {
		return b.state
	}

	b.horizontal.Update(elapsed)
	b.rotation.Update(elapsed)
	b.apply(in)
	b.gravity.Update(elapsed)

	return b.state
}

// View returns a read-only view for renderers.
func (b *Board) View() View {
	return View{board: b}
}

func (b *Board) apply(in Intents) {
	if !b.horizontal.Active() {
		if in.Left {
			b.moveHorizontal(-1)
			b.horizontal.Activate()
		}
		if in.Right {
			b.moveHorizontal(1)
			b.horizontal.Activate()
		}
	}

	if !b.rotation.Active() && in.Rotate {
		if b.piece.Rotate(b.grid) {
			b.hooks.event(Event{Kind: EventRotate, Shape: b.piece.Shape()})
		}
		b.rotation.Activate()
	}

	b.setSoftDrop(in.SoftDrop)
}

func (b *Board) moveHorizontal(delta int) {
	if b.piece.MoveHorizontal(delta, b.grid) {
		b.hooks.event(Event{Kind: EventMove, Shape: b.piece.Shape()})
	}
}

// setSoftDrop only swaps the gravity interval; the piece is never moved here.
func (b *Board) setSoftDrop(held bool) {
	if held == b.softDrop {
		return
	}
	b.softDrop = held
	b.gravity.SetDuration(b.gravityInterval())
}

func (b *Board) gravityInterval() time.Duration {
	if b.softDrop {
		return b.progression.SoftDropInterval()
	}
	return b.progression.Interval()
}

// moveDown is the gravity timer callback.
func (b *Board) moveDown() {
	if b.state != StateFalling {
		return
	}
	if b.piece.MoveDown(b.grid) {
		return
	}
	b.lock()
}

func (b *Board) spawn() {
	b.state = StateSpawning

	shape := b.shapes.NextShape()
	def, ok := Shapes[shape]
	if !ok {
		panic("unknown shape " + shape.String())
	}

	b.piece = NewPiece(shape, def, Point{X: b.cfg.Columns / 2, Y: -1})
	b.state = StateFalling
	b.hooks.event(Event{Kind: EventSpawn, Shape: shape})

	// A piece spawned onto the stack cannot move anywhere useful. Locking it
	// right away ends the game, since its pivot always starts above row 0.
	if b.overlapsStack() {
		b.lock()
	}
}

func (b *Board) overlapsStack() bool {
	for _, blk := range b.piece.Blocks() {
		if b.grid.occupied(blk.Y, blk.X) {
			return true
		}
	}
	return false
}

func (b *Board) lock() {
	b.state = StateLocking

	shape := b.piece.Shape()
	overflow := false
	for _, blk := range b.piece.Blocks() {
		if blk.Y < 0 {
			overflow = true
			continue
		}
		if b.grid.occupied(blk.Y, blk.X) {
			continue
		}
		b.grid.Set(blk.Y, blk.X, OccupiedCell(blk.Color))
		b.locked.add(blk)
	}
	b.piece = nil
	b.hooks.event(Event{Kind: EventLock, Shape: shape})

	if overflow {
		b.state = StateGameOver
		b.gravity.Deactivate()
		b.hooks.event(Event{Kind: EventGameOver, Shape: shape, Progress: b.progression.Progress()})
		return
	}

	b.clearRows()
	b.spawn()
}

type placedBlock struct {
	id    uint32
	block Block
}

// clearRows removes every full row at once. Each surviving block drops by the
// number of removed rows below it, counted against the original row indices,
// so simultaneous clears never shift a block twice for the same row.
func (b *Board) clearRows() {
	b.state = StateClearing

	var full []int
	for row := range b.grid.Rows() {
		if b.grid.IsFullRow(row) {
			full = append(full, row)
		}
	}
	if len(full) == 0 {
		return
	}

	var removed []uint32
	var shifted []placedBlock
	b.locked.each(func(id uint32, blk Block) bool {
		if slices.Contains(full, blk.Y) {
			removed = append(removed, id)
			return true
		}

		drop := 0
		for _, row := range full {
			if blk.Y < row {
				drop++
			}
		}
		if drop > 0 {
			blk.Y += drop
			shifted = append(shifted, placedBlock{id: id, block: blk})
		}
		return true
	})

	for _, id := range removed {
		b.locked.remove(id)
	}
	for _, p := range shifted {
		b.locked.set(p.id, p.block)
	}

	// The grid is rebuilt from the block store, never shifted in place.
	b.locked.rebuild(b.grid)

	levelUp := b.progression.RecordClear(len(full))
	progress := b.progression.Progress()
	if levelUp {
		b.gravity.SetDuration(b.gravityInterval())
		b.hooks.event(Event{Kind: EventLevelUp, Progress: progress})
	}

	b.hooks.event(Event{Kind: EventClear, Lines: len(full), Progress: progress})
	b.hooks.progress(progress)
}
