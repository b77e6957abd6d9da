package game

import (
	"errors"
	"testing"
)

func TestCreateBoard(t *testing.T) {
	board, err := CreateBoard(MinSize, DefaultFleet())
	if err != nil {
		t.Fatalf("CreateBoard failed: %v", err)
	}

	if board.NumCells() != 36 {
		t.Errorf("expected 36 cells, got %d", board.NumCells())
	}

	for cell := range board.Cells() {
		if !cell.IsEmpty() {
			t.Errorf("%v is not empty", cell)
		}
		if board.CellAt(cell.Col(), cell.Row()) != cell {
			t.Errorf("%v is not at its own coordinates", cell)
		}
	}
}

func TestCreateBoardSizeOutOfRange(t *testing.T) {
	for _, size := range []int{-1, 0, MinSize - 1, MaxSize + 1} {
		if _, err := CreateBoard(size, DefaultFleet()); !errors.Is(err, ErrSizeOutOfRange) {
			t.Errorf("size %d: expected ErrSizeOutOfRange, got %v", size, err)
		}
	}

	if _, err := CreateBoard(MaxSize, DefaultFleet()); err != nil {
		t.Errorf("size %d should be valid: %v", MaxSize, err)
	}
}

func TestCellAtOutOfBounds(t *testing.T) {
	board, _ := CreateBoard(MinSize, DefaultFleet())

	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {6, 0}, {0, 6}} {
		if board.CellAt(pos[0], pos[1]) != nil {
			t.Errorf("CellAt(%d, %d) should be nil", pos[0], pos[1])
		}
	}
}

func TestRenderHidesShips(t *testing.T) {
	board := newTestBoard(t)
	board.Fire("A1")
	board.Fire("F1")

	expected := "   ABCDEF\n" +
		" 1 x....o\n" +
		" 2 ......\n" +
		" 3 ......\n" +
		" 4 ......\n" +
		" 5 ......\n" +
		" 6 ......\n"

	if got := board.Render(); got != expected {
		t.Errorf("unexpected render:\n%s\nwant:\n%s", got, expected)
	}

	board.Fire("B1")
	if got := rowsOf(board.Render())[1]; got != " 1 ##...o" {
		t.Errorf("sunk ship should render as #, got %q", got)
	}
}
