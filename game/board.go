package game

import (
	"fmt"
	"iter"
	"strings"
)

// Board is a square grid holding a fleet. Cells are stored row-major, so the
// cell at (col, row) lives at index row*size+col.
type Board struct {
	size  int
	fleet Fleet
	cells []Cell
}

func (board *Board) Size() int {
	return board.size
}

func (board *Board) NumCells() int {
	return board.size * board.size
}

func (board *Board) Fleet() Fleet {
	return board.fleet
}

func (board *Board) inBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < board.size && row < board.size
}

func (board *Board) CellAt(col, row int) *Cell {
	if board.inBounds(col, row) {
		return &board.cells[row*board.size+col]
	}
	return nil
}

func (board *Board) Cells() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for i := range board.cells {
			if !yield(&board.cells[i]) {
				return
			}
		}
	}
}

// ShipCells returns the cells occupied by a ship, in grid order.
func (board *Board) ShipCells(id ShipID) []*Cell {
	var cells []*Cell
	for cell := range board.Cells() {
		if ship, ok := cell.Ship(); ok && ship == id {
			cells = append(cells, cell)
		}
	}
	return cells
}

// clear returns every cell to Empty, dropping ships, hits and misses.
func (board *Board) clear() {
	for cell := range board.Cells() {
		cell.clear()
	}
}

// Render is the player's view of the board: column letters across the top,
// 1-based row numbers down the side, and one glyph per cell.
func (board *Board) Render() string {
	var out strings.Builder

	out.WriteString("   ")
	out.WriteString(ColumnNames[:board.size])
	out.WriteByte('\n')

	for row := 0; row < board.size; row++ {
		fmt.Fprintf(&out, "%2d ", row+1)
		for col := 0; col < board.size; col++ {
			out.WriteRune(CellGlyph(board.CellAt(col, row).State()))
		}
		out.WriteByte('\n')
	}

	return out.String()
}

func CellGlyph(state CellState) rune {
	switch state {
	case Miss:
		return 'o'
	case HitUnsunk:
		return 'x'
	case HitSunk:
		return '#'
	default:
		return '.'
	}
}

func validateSize(size int) error {
	if size < MinSize || size > MaxSize {
		return fmt.Errorf("%w: size must be between %d and %d, got %d",
			ErrSizeOutOfRange, MinSize, MaxSize, size)
	}
	return nil
}

// CreateBoard allocates an empty size x size board for fleet. No ships are
// placed; see PlaceFleet.
func CreateBoard(size int, fleet Fleet) (*Board, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}
	if fleet.Len() == 0 {
		return nil, fmt.Errorf("%w: no ships", ErrInvalidFleet)
	}

	board := &Board{
		size:  size,
		fleet: fleet,
		cells: make([]Cell, size*size),
	}

	for idx := range board.cells {
		cell := &board.cells[idx]
		cell.board = board
		cell.idx = idx
		cell.col, cell.row = idx%size, idx/size
	}

	return board, nil
}
