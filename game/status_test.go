package game

import "testing"

func TestAllSunk(t *testing.T) {
	board := newTestBoard(t)
	ships := board.Fleet().Ships()

	for i, ship := range ships {
		if board.AllSunk() {
			t.Fatalf("AllSunk before sinking %s", ship.Name)
		}
		sinkShip(board, ship.ID)
		if !board.IsSunk(ship.ID) {
			t.Errorf("%s should be sunk", ship.Name)
		}
		for _, other := range ships[i+1:] {
			if board.IsSunk(other.ID) {
				t.Errorf("%s should still be afloat", other.Name)
			}
		}
	}

	if !board.AllSunk() {
		t.Error("every ship is hit, AllSunk should be true")
	}
}

func TestSunkIsMonotonic(t *testing.T) {
	board := newTestBoard(t)
	cruiser := shipID(t, board, "Cruiser")
	sinkShip(board, cruiser)

	for _, move := range []string{"C2", "D2", "E2", "F6", "Z9", "A1"} {
		board.Fire(move)
		if !board.IsSunk(cruiser) {
			t.Fatalf("Cruiser un-sunk after firing %s", move)
		}
	}
}

func TestIsSunkUnknownShip(t *testing.T) {
	board := newTestBoard(t)
	if board.IsSunk(99) {
		t.Error("unknown ship should not be sunk")
	}
}

func TestShipStatuses(t *testing.T) {
	board := newTestBoard(t)
	board.Fire("A1")
	board.Fire("B1")
	board.Fire("A2")

	statuses := board.ShipStatuses()
	if len(statuses) != 6 {
		t.Fatalf("expected 6 statuses, got %d", len(statuses))
	}

	patrol, sub := statuses[0], statuses[1]
	if patrol.Name != "Patrol Boat" || patrol.Length != 2 || patrol.Condition != Sunk {
		t.Errorf("unexpected Patrol Boat status %+v", patrol)
	}
	if sub.Name != "Submarine" || sub.Hits != 1 || sub.Condition != Afloat {
		t.Errorf("unexpected Submarine status %+v", sub)
	}
	for _, status := range statuses[2:] {
		if status.Hits != 0 || status.Condition != Afloat {
			t.Errorf("unexpected status %+v", status)
		}
	}
}

func TestSnapshotStates(t *testing.T) {
	board := newTestBoard(t)
	board.Fire("A1")
	board.Fire("A2")
	board.Fire("A3")
	board.Fire("F6")

	grid := board.Snapshot()
	expected := map[[2]int]CellState{
		{0, 0}: HitUnsunk,
		{0, 1}: HitSunk,
		{0, 2}: HitSunk,
		{5, 5}: Miss,
		{1, 0}: Empty,
		{3, 3}: Empty,
	}

	for pos, state := range expected {
		if got := grid[pos[1]][pos[0]]; got != state {
			t.Errorf("%c%d: got %v, want %v", ColumnNames[pos[0]], pos[1]+1, got, state)
		}
	}
}
