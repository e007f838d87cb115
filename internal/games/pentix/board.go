// Package pentix implements a falling-block puzzle game (Tetris family)
// with a catalog that mixes tetrominoes and pentominoes.
//
// Board and Piece form the game-state model. A Piece never owns a Board:
// every operation receives the Board it acts on, and Board only learns about
// a Piece when one lands on it. Game owns one of each and mediates.
package pentix

import (
	"fmt"

	"github.com/vovakirdan/pentix/internal/core"
)

// Board is a fixed-size grid of landed cells.
// A cell holds core.ColorDefault when empty, otherwise the color of the
// piece that landed there.
type Board struct {
	rows         int
	columns      int
	pointsPerRow int
	grid         [][]core.Color

	score int
	lines int

	// awaitingPiece is true from a landing until the next Spawn.
	// A fresh board starts awaiting its first piece.
	awaitingPiece bool
	// gameOver only ever goes from false to true.
	gameOver bool
}

// NewBoard creates an empty rows×columns board awarding pointsPerRow for
// each cleared row. Panics if either dimension is not positive.
func NewBoard(rows, columns, pointsPerRow int) *Board {
	if rows <= 0 || columns <= 0 {
		panic(fmt.Sprintf("pentix: invalid board size %dx%d", rows, columns))
	}
	b := &Board{
		rows:          rows,
		columns:       columns,
		pointsPerRow:  pointsPerRow,
		grid:          make([][]core.Color, rows),
		awaitingPiece: true,
	}
	for y := range b.grid {
		b.grid[y] = b.emptyRow()
	}
	return b
}

func (b *Board) emptyRow() []core.Color {
	return make([]core.Color, b.columns)
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Columns returns the number of columns.
func (b *Board) Columns() int { return b.columns }

// Score returns the accumulated score.
func (b *Board) Score() int { return b.score }

// Lines returns the number of rows cleared so far.
func (b *Board) Lines() int { return b.lines }

// AwaitingPiece reports whether a piece has landed and no new one has spawned.
func (b *Board) AwaitingPiece() bool { return b.awaitingPiece }

// GameOver reports whether a spawn has failed. Once true it stays true.
func (b *Board) GameOver() bool { return b.gameOver }

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.columns
}

// Cell returns the color tag at (row, col). The caller keeps it in bounds.
func (b *Board) Cell(row, col int) core.Color {
	return b.grid[row][col]
}

// IsCellOccupied reports whether (row, col) holds a landed cell.
// The caller keeps it in bounds.
func (b *Board) IsCellOccupied(row, col int) bool {
	return b.grid[row][col] != core.ColorDefault
}

// Grid returns a copy of the cell grid, top row first.
func (b *Board) Grid() [][]core.Color {
	out := make([][]core.Color, b.rows)
	for y, row := range b.grid {
		out[y] = append([]core.Color(nil), row...)
	}
	return out
}

// LandPiece fuses p into the grid, clears full rows and marks the board as
// awaiting the next piece. Spawning that piece is left to the caller.
//
// p must have been spawned and must fit at its current position: every
// occupied cell on the board and over an empty cell. Violations panic.
func (b *Board) LandPiece(p *Piece) {
	if !p.Spawned() {
		panic("pentix: landing a piece that was never spawned")
	}
	if !fits(b, p.cells, p.pos) {
		panic(fmt.Sprintf("pentix: piece at (%d, %d) does not fit the board", p.pos.Row, p.pos.Col))
	}

	for y, row := range p.cells {
		for x, v := range row {
			if v != 0 {
				b.grid[p.pos.Row+y][p.pos.Col+x] = p.color
			}
		}
	}

	b.ClearFullRows()
	b.awaitingPiece = true
}

// ClearFullRows removes every row without an empty cell, inserting an empty
// row at the top for each one, and returns how many rows were removed.
// Rows are checked once, top to bottom. Each cleared row scores
// pointsPerRow. The board is left awaiting a piece even if nothing cleared.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for y := 0; y < b.rows; y++ {
		if !b.rowFull(y) {
			continue
		}
		// Drop row y and shift everything above it down by one.
		copy(b.grid[1:y+1], b.grid[0:y])
		b.grid[0] = b.emptyRow()
		cleared++
	}

	b.score += cleared * b.pointsPerRow
	b.lines += cleared
	b.awaitingPiece = true
	return cleared
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.grid[y] {
		if c == core.ColorDefault {
			return false
		}
	}
	return true
}
