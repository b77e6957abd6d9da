package game

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/they4kman/gobattleship/util/collections"
)

type ShipID int

type ShipSpec struct {
	Name   string `yaml:"name"`
	Length int    `yaml:"length"`
}

type Ship struct {
	ShipSpec
	ID     ShipID
	Letter rune
}

// Fleet is the ordered set of ships placed on every board. Catalog order is
// placement order.
type Fleet struct {
	ships []Ship
}

var DefaultFleetSpecs = []ShipSpec{
	{"Patrol Boat", 2},
	{"Submarine", 2},
	{"Cruiser", 3},
	{"Destroyer", 3},
	{"Battleship", 4},
	{"Aircraft Carrier", 5},
}

func DefaultFleet() Fleet {
	fleet, err := NewFleet(DefaultFleetSpecs)
	if err != nil {
		panic(err)
	}
	return fleet
}

// NewFleet validates specs and assigns each ship a distinct letter: the first
// letter of its name not taken by an earlier ship, falling back to A..Z.
func NewFleet(specs []ShipSpec) (Fleet, error) {
	if len(specs) == 0 {
		return Fleet{}, fmt.Errorf("%w: no ships", ErrInvalidFleet)
	}
	if len(specs) > len(ColumnNames) {
		return Fleet{}, fmt.Errorf("%w: at most %d ships", ErrInvalidFleet, len(ColumnNames))
	}

	used := make(collections.Set[rune])
	ships := make([]Ship, len(specs))

	for i, spec := range specs {
		name := strings.TrimSpace(spec.Name)
		if name == "" {
			return Fleet{}, fmt.Errorf("%w: ship %d has no name", ErrInvalidFleet, i)
		}
		if spec.Length < MinShipLength || spec.Length > MaxShipLength {
			return Fleet{}, fmt.Errorf("%w: %s has length %d, want %d-%d",
				ErrInvalidFleet, name, spec.Length, MinShipLength, MaxShipLength)
		}

		letter := pickLetter(name, used)
		used.Add(letter)

		ships[i] = Ship{
			ShipSpec: ShipSpec{Name: name, Length: spec.Length},
			ID:       ShipID(i),
			Letter:   letter,
		}
	}

	return Fleet{ships: ships}, nil
}

func pickLetter(name string, used collections.Set[rune]) rune {
	for _, r := range strings.ToUpper(name) {
		if r < unicode.MaxASCII && unicode.IsUpper(r) && !used.Contains(r) {
			return r
		}
	}
	for _, r := range ColumnNames {
		if !used.Contains(r) {
			return r
		}
	}
	// unreachable while fleets are capped at len(ColumnNames) ships
	return '?'
}

func (fleet Fleet) Len() int {
	return len(fleet.ships)
}

func (fleet Fleet) Ships() []Ship {
	out := make([]Ship, len(fleet.ships))
	copy(out, fleet.ships)
	return out
}

func (fleet Fleet) Ship(id ShipID) (Ship, bool) {
	if id < 0 || int(id) >= len(fleet.ships) {
		return Ship{}, false
	}
	return fleet.ships[id], true
}

func (fleet Fleet) ByLetter(letter rune) (Ship, bool) {
	letter = unicode.ToUpper(letter)
	for _, ship := range fleet.ships {
		if ship.Letter == letter {
			return ship, true
		}
	}
	return Ship{}, false
}

// TotalLength is the number of cells the fleet occupies once placed.
func (fleet Fleet) TotalLength() int {
	total := 0
	for _, ship := range fleet.ships {
		total += ship.Length
	}
	return total
}

func (fleet Fleet) Specs() []ShipSpec {
	specs := make([]ShipSpec, len(fleet.ships))
	for i, ship := range fleet.ships {
		specs[i] = ship.ShipSpec
	}
	return specs
}
