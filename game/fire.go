package game

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseMove converts a move such as "B7" into zero-based column and row
// indexes. The column letter is case-insensitive; both axes are bounded by the
// board size.
func ParseMove(raw string, size int) (col, row int, err error) {
	move := strings.TrimSpace(raw)
	if move == "" {
		return 0, 0, fmt.Errorf("%w: empty move", ErrInvalidMove)
	}

	col = strings.IndexRune(ColumnNames, unicode.ToUpper(rune(move[0])))
	if col < 0 {
		return 0, 0, fmt.Errorf("%w: invalid column %q", ErrInvalidMove, move[0])
	}
	if col >= size {
		return 0, 0, fmt.Errorf("%w: column %c out of range", ErrInvalidMove, ColumnNames[col])
	}

	n, convErr := strconv.Atoi(move[1:])
	if convErr != nil {
		return 0, 0, fmt.Errorf("%w: invalid row %q", ErrInvalidMove, move[1:])
	}
	if n < 1 || n > size {
		return 0, 0, fmt.Errorf("%w: row %d out of range", ErrInvalidMove, n)
	}

	return col, n - 1, nil
}

// Fire parses a move and fires at it. Malformed or out-of-range moves return
// Invalid and leave the board untouched.
func (board *Board) Fire(raw string) FireResult {
	col, row, err := ParseMove(raw, board.size)
	if err != nil {
		return Invalid
	}
	return board.FireAt(col, row)
}

// FireAt fires at a zero-based coordinate. Empty cells become misses and ship
// parts become hit; firing again at a tried cell changes nothing and reports
// AlreadyTried.
func (board *Board) FireAt(col, row int) FireResult {
	cell := board.CellAt(col, row)
	if cell == nil {
		return Invalid
	}
	return cell.fire()
}
