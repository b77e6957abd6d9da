package game

import (
	"strings"
	"testing"
)

// testLayout is a 6x6 board holding the default fleet, with the Patrol Boat
// across A1-B1.
const testLayout = `PP....
S.CCC.
S.....
DDD...
BBBB..
AAAAA.`

func newTestBoard(t *testing.T) *Board {
	t.Helper()

	snapshot := &BoardSnapshot{SerializedBoard: testLayout}
	board, err := snapshot.CreateBoard(true)
	if err != nil {
		t.Fatalf("CreateBoard failed: %v", err)
	}
	return board
}

func shipID(t *testing.T, board *Board, name string) ShipID {
	t.Helper()

	for _, ship := range board.Fleet().Ships() {
		if ship.Name == name {
			return ship.ID
		}
	}
	t.Fatalf("no ship named %q", name)
	return 0
}

// sinkShip fires at every cell of a ship.
func sinkShip(board *Board, id ShipID) {
	for _, cell := range board.ShipCells(id) {
		board.FireAt(cell.Col(), cell.Row())
	}
}

type fixedRand struct {
	values []int
	i      int
}

func (r *fixedRand) Intn(n int) int {
	v := r.values[r.i%len(r.values)] % n
	r.i++
	return v
}

func rowsOf(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}
