package pentix

import (
	"github.com/vovakirdan/pentix/internal/core"
)

// Position is a (row, col) board coordinate. Row grows downward.
type Position struct {
	Row int
	Col int
}

// Offset returns the position shifted by dRow rows and dCol columns.
func (p Position) Offset(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Piece is the active falling shape.
type Piece struct {
	catalog    []Shape
	selector   Selector
	spawnAt    Position
	spawnColor core.Color

	cells Shape
	color core.Color
	pos   Position
}

// NewPiece creates a piece that draws its shapes from catalog using sel and
// appears at spawnAt in spawnColor. The piece is empty until Spawn.
func NewPiece(catalog []Shape, sel Selector, spawnAt Position, spawnColor core.Color) *Piece {
	if len(catalog) == 0 {
		panic("pentix: empty shape catalog")
	}
	if spawnColor == core.ColorDefault {
		panic("pentix: spawn color collides with the empty cell tag")
	}
	return &Piece{
		catalog:    catalog,
		selector:   sel,
		spawnAt:    spawnAt,
		spawnColor: spawnColor,
	}
}

// Cells returns a copy of the current shape matrix.
func (p *Piece) Cells() Shape { return p.cells.Clone() }

// Position returns the board position of the matrix origin.
func (p *Piece) Position() Position { return p.pos }

// Color returns the tag written into the board when the piece lands.
func (p *Piece) Color() core.Color { return p.color }

// Spawned reports whether the piece has a shape yet.
func (p *Piece) Spawned() bool { return p.cells != nil }

// Spawn replaces the piece with a freshly selected shape at the spawn
// position and clears the board's awaiting flag. If the new shape does not
// fit there the board is over; this is the only way a game ends.
func (p *Piece) Spawn(b *Board) {
	p.cells = p.catalog[p.selector.Pick(len(p.catalog))].Clone()
	p.color = p.spawnColor
	p.pos = p.spawnAt
	b.awaitingPiece = false

	if !p.AttemptMove(b, p.spawnAt) {
		b.gameOver = true
	}
}

// AttemptMove moves the piece to target if every occupied cell lands in
// bounds on an empty board cell. It reports whether the move happened and
// never changes the piece otherwise.
func (p *Piece) AttemptMove(b *Board, target Position) bool {
	if !fits(b, p.cells, target) {
		return false
	}
	p.pos = target
	return true
}

// MoveDownOrLand moves the piece one row down, or lands it on b when it
// cannot descend. It reports whether the piece landed.
func (p *Piece) MoveDownOrLand(b *Board) bool {
	if p.AttemptMove(b, p.pos.Offset(1, 0)) {
		return false
	}
	b.LandPiece(p)
	return true
}

// DropToBottom moves the piece down as far as it goes and lands it.
// Returns the number of rows it fell.
func (p *Piece) DropToBottom(b *Board) int {
	fell := 0
	for p.AttemptMove(b, p.pos.Offset(1, 0)) {
		fell++
	}
	b.LandPiece(p)
	return fell
}

// Rotate turns the piece clockwise and moves it to target. If the rotated
// shape does not fit there the previous shape is restored and the position
// is left alone. Reports whether the rotation happened.
func (p *Piece) Rotate(b *Board, target Position) bool {
	if !p.Spawned() {
		return false
	}
	old := p.cells
	p.cells = RotateClockwise(old)
	if !p.AttemptMove(b, target) {
		p.cells = old
		return false
	}
	return true
}

// fits reports whether shape placed with its origin at at lies inside b and
// only over empty cells.
func fits(b *Board, shape Shape, at Position) bool {
	for y, row := range shape {
		for x, v := range row {
			if v == 0 {
				continue
			}
			r, c := at.Row+y, at.Col+x
			if !b.InBounds(r, c) || b.IsCellOccupied(r, c) {
				return false
			}
		}
	}
	return true
}
