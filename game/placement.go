package game

import "fmt"

// Rand is the source of randomness used for placement. *math/rand.Rand
// satisfies it.
type Rand interface {
	Intn(n int) int
}

// Placement positions a ship by the index of its first cell and the direction
// it extends in.
type Placement struct {
	Origin      int
	Orientation Orientation
}

func (board *Board) PlacementAt(col, row int, orientation Orientation) Placement {
	return Placement{Origin: row*board.size + col, Orientation: orientation}
}

func (board *Board) step(orientation Orientation) int {
	if orientation == Horizontal {
		return 1
	}
	return board.size
}

// canPlace reports whether a run of length cells starting at the placement
// stays on the board, does not wrap past the end of a row, and covers only
// empty cells. It never mutates the board.
func (board *Board) canPlace(length int, placement Placement) bool {
	if length < 1 || length > board.size {
		return false
	}

	step := board.step(placement.Orientation)
	origin := placement.Origin
	last := origin + (length-1)*step

	if origin < 0 || last >= board.NumCells() {
		return false
	}

	if placement.Orientation == Horizontal && last%board.size < origin%board.size {
		return false
	}

	for i := 0; i < length; i++ {
		if !board.cells[origin+i*step].IsEmpty() {
			return false
		}
	}

	return true
}

func (board *Board) commit(ship Ship, placement Placement) {
	step := board.step(placement.Orientation)
	for i := 0; i < ship.Length; i++ {
		board.cells[placement.Origin+i*step].occupy(ship.ID)
	}
}

// PlaceShip places a single ship at a fixed position.
func (board *Board) PlaceShip(id ShipID, placement Placement) error {
	ship, ok := board.fleet.Ship(id)
	if !ok {
		return fmt.Errorf("%w: unknown ship %d", ErrInvalidFleet, id)
	}
	if len(board.ShipCells(id)) > 0 {
		return fmt.Errorf("%w: %s is already placed", ErrInvalidFleet, ship.Name)
	}
	if !board.canPlace(ship.Length, placement) {
		return fmt.Errorf("%w: %s does not fit %s at cell %d",
			ErrUnplaceable, ship.Name, placement.Orientation, placement.Origin)
	}

	board.commit(ship, placement)
	return nil
}

// PlaceFleet places every ship of the board's fleet, in catalog order, by
// rejection sampling: random origin and orientation until a trial fits. Each
// ship gets at most maxAttempts trials; when one runs out, the board is
// cleared and the whole fleet is placed again, up to placementPasses times.
// On failure the board is left empty.
func (board *Board) PlaceFleet(rng Rand, maxAttempts int) error {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxPlacementAttempts
	}

	if total := board.fleet.TotalLength(); total > board.NumCells() {
		return fmt.Errorf("%w: fleet needs %d cells, board has %d",
			ErrUnplaceable, total, board.NumCells())
	}

	var stuck Ship
	for pass := 0; pass < placementPasses; pass++ {
		board.clear()

		var ok bool
		if stuck, ok = board.placeShips(rng, maxAttempts); ok {
			return nil
		}
	}

	board.clear()
	return fmt.Errorf("%w: gave up on %s after %d passes of %d attempts",
		ErrUnplaceable, stuck.Name, placementPasses, maxAttempts)
}

// placeShips makes a single pass over the fleet. It returns the first ship
// that could not be placed.
func (board *Board) placeShips(rng Rand, maxAttempts int) (Ship, bool) {
	for _, ship := range board.fleet.ships {
		placed := false

		for attempt := 0; attempt < maxAttempts; attempt++ {
			placement := Placement{
				Origin:      rng.Intn(board.NumCells()),
				Orientation: Orientation(rng.Intn(2)),
			}
			if board.canPlace(ship.Length, placement) {
				board.commit(ship, placement)
				placed = true
				break
			}
		}

		if !placed {
			return ship, false
		}
	}

	return Ship{}, true
}
