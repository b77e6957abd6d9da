package game

type ShipStatus struct {
	Name      string
	Length    int
	Letter    rune
	Hits      int
	Condition ShipCondition
}

func (board *Board) hits(id ShipID) int {
	hits := 0
	for cell := range board.Cells() {
		if ship, ok := cell.Ship(); ok && ship == id && cell.hit {
			hits++
		}
	}
	return hits
}

// IsSunk reports whether every cell of the ship has been hit. Hits are never
// cleared within a round, so once true it stays true.
func (board *Board) IsSunk(id ShipID) bool {
	ship, ok := board.fleet.Ship(id)
	if !ok {
		return false
	}
	return board.hits(id) >= ship.Length
}

func (board *Board) AllSunk() bool {
	for _, ship := range board.fleet.ships {
		if !board.IsSunk(ship.ID) {
			return false
		}
	}
	return true
}

// ShipStatuses lists every ship in catalog order for the scoreboard.
func (board *Board) ShipStatuses() []ShipStatus {
	statuses := make([]ShipStatus, 0, board.fleet.Len())
	for _, ship := range board.fleet.ships {
		status := ShipStatus{
			Name:   ship.Name,
			Length: ship.Length,
			Letter: ship.Letter,
			Hits:   board.hits(ship.ID),
		}
		if status.Hits >= ship.Length {
			status.Condition = Sunk
		}
		statuses = append(statuses, status)
	}
	return statuses
}

// Snapshot returns the display state of every cell, indexed [row][col].
func (board *Board) Snapshot() [][]CellState {
	grid := make([][]CellState, board.size)
	for row := range grid {
		grid[row] = make([]CellState, board.size)
		for col := range grid[row] {
			grid[row][col] = board.CellAt(col, row).State()
		}
	}
	return grid
}
