package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// BoardSnapshot is a textual record of a complete layout, including the
// positions of unhit ships. See Cell.serialize for the encoding.
type BoardSnapshot struct {
	Seed            int64      `yaml:"seed"`
	Fleet           []ShipSpec `yaml:"fleet,omitempty"`
	SerializedBoard string     `yaml:"board"`
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func (board *Board) serialize() string {
	rows := make([]string, board.size)
	for row := range rows {
		var line strings.Builder
		for col := 0; col < board.size; col++ {
			line.WriteRune(board.CellAt(col, row).serialize())
		}
		rows[row] = line.String()
	}
	return strings.Join(rows, "\n")
}

func (board *Board) snapshot(seed int64) *BoardSnapshot {
	return &BoardSnapshot{
		Seed:            seed,
		Fleet:           board.fleet.Specs(),
		SerializedBoard: board.serialize(),
	}
}

// CreateBoard rebuilds the board described by the snapshot. With fresh set,
// hits and misses are dropped and only ship positions are kept.
func (snapshot *BoardSnapshot) CreateBoard(fresh bool) (*Board, error) {
	fleet := DefaultFleet()
	if len(snapshot.Fleet) > 0 {
		var err error
		if fleet, err = NewFleet(snapshot.Fleet); err != nil {
			return nil, err
		}
	}

	rows := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")
	size := len(rows)

	board, err := CreateBoard(size, fleet)
	if err != nil {
		return nil, err
	}

	for row, line := range rows {
		line = strings.TrimSpace(line)
		if len(line) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrInvalidSnapshot, row+1, len(line), size)
		}

		for col, c := range line {
			if !board.CellAt(col, row).deserialize(c, fresh) {
				return nil, fmt.Errorf("%w: unknown cell %q at %c%d",
					ErrInvalidSnapshot, c, ColumnNames[col], row+1)
			}
		}
	}

	for _, ship := range fleet.ships {
		if !board.isStraightRun(ship) {
			return nil, fmt.Errorf("%w: %s must cover %d cells in a straight line",
				ErrInvalidSnapshot, ship.Name, ship.Length)
		}
	}

	return board, nil
}

func (board *Board) isStraightRun(ship Ship) bool {
	cells := board.ShipCells(ship.ID)
	if len(cells) != ship.Length {
		return false
	}

	origin := cells[0]
	for _, orientation := range []Orientation{Horizontal, Vertical} {
		step := board.step(orientation)
		last := origin.idx + (ship.Length-1)*step
		if last >= board.NumCells() {
			continue
		}
		if orientation == Horizontal && last%board.size < origin.idx%board.size {
			continue
		}

		matches := true
		for i, cell := range cells {
			if cell.idx != origin.idx+i*step {
				matches = false
				break
			}
		}
		if matches {
			return true
		}
	}
	return false
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
