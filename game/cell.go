package game

import (
	"fmt"
	"unicode"
)

type cellKind int

const (
	emptyCell cellKind = iota
	shipCell
	missCell
)

type Cell struct {
	board *Board

	col, row int
	idx      int

	kind cellKind
	ship ShipID
	hit  bool
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%c%d)", ColumnNames[cell.col], cell.row+1)
}

func (cell *Cell) Col() int {
	return cell.col
}

func (cell *Cell) Row() int {
	return cell.row
}

// Move is the player-facing name of the cell, e.g. "B7".
func (cell *Cell) Move() string {
	return fmt.Sprintf("%c%d", ColumnNames[cell.col], cell.row+1)
}

func (cell *Cell) IsEmpty() bool {
	return cell.kind == emptyCell
}

func (cell *Cell) IsMiss() bool {
	return cell.kind == missCell
}

// Ship reports the id of the ship occupying the cell, if any.
func (cell *Cell) Ship() (ShipID, bool) {
	return cell.ship, cell.kind == shipCell
}

func (cell *Cell) IsHit() bool {
	return cell.kind == shipCell && cell.hit
}

func (cell *Cell) IsTried() bool {
	return cell.kind == missCell || cell.IsHit()
}

// State is the display state of the cell. Unhit ship parts show as Empty.
func (cell *Cell) State() CellState {
	switch {
	case cell.kind == missCell:
		return Miss
	case cell.IsHit():
		if cell.board.IsSunk(cell.ship) {
			return HitSunk
		}
		return HitUnsunk
	default:
		return Empty
	}
}

func (cell *Cell) fire() FireResult {
	switch cell.kind {
	case emptyCell:
		cell.kind = missCell
		return MissResult
	case shipCell:
		if cell.hit {
			return AlreadyTried
		}
		cell.hit = true
		return HitResult
	default:
		return AlreadyTried
	}
}

func (cell *Cell) occupy(id ShipID) {
	cell.kind = shipCell
	cell.ship = id
	cell.hit = false
}

func (cell *Cell) clear() {
	cell.kind = emptyCell
	cell.ship = 0
	cell.hit = false
}

// serialize encodes the full cell state: '.' empty, '!' miss, the ship letter
// in upper case when unhit and lower case when hit.
func (cell *Cell) serialize() rune {
	switch cell.kind {
	case missCell:
		return '!'
	case shipCell:
		ship, _ := cell.board.fleet.Ship(cell.ship)
		if cell.hit {
			return unicode.ToLower(ship.Letter)
		}
		return ship.Letter
	default:
		return '.'
	}
}

func (cell *Cell) deserialize(c rune, fresh bool) bool {
	switch c {
	case '.':
		cell.clear()
	case '!':
		cell.clear()
		if !fresh {
			cell.kind = missCell
		}
	default:
		ship, ok := cell.board.fleet.ByLetter(c)
		if !ok {
			return false
		}
		cell.occupy(ship.ID)
		cell.hit = !fresh && unicode.IsLower(c)
	}
	return true
}
