package game

type CellState int
type RoundOutcome int
type Orientation int
type FireResult int
type ShipCondition int

// Display states of a cell, as seen by the player. Unhit ship parts are
// reported as Empty.
const (
	Empty CellState = iota
	Miss
	HitUnsunk
	HitSunk
)

const (
	Playing RoundOutcome = iota
	Won
)

const (
	Vertical Orientation = iota
	Horizontal
)

const (
	Invalid FireResult = iota
	MissResult
	HitResult
	AlreadyTried
)

const (
	Afloat ShipCondition = iota
	Sunk
)

const ColumnNames = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const (
	MinSize     = 6
	DefaultSize = 20
	MaxSize     = len(ColumnNames)
)

const (
	MinShipLength = 2
	MaxShipLength = 5
)

const (
	DefaultMaxPlacementAttempts = 10000
	DefaultHistoryLength        = 5

	placementPasses = 8
)

func (state CellState) String() string {
	switch state {
	case Empty:
		return "empty"
	case Miss:
		return "miss"
	case HitUnsunk:
		return "hit"
	case HitSunk:
		return "sunk"
	default:
		return "unknown"
	}
}

func (outcome RoundOutcome) String() string {
	if outcome == Won {
		return "won"
	}
	return "playing"
}

func (orientation Orientation) String() string {
	if orientation == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

func (result FireResult) String() string {
	switch result {
	case MissResult:
		return "miss"
	case HitResult:
		return "hit"
	case AlreadyTried:
		return "already tried"
	default:
		return "invalid move"
	}
}

func (condition ShipCondition) String() string {
	if condition == Sunk {
		return "Sunk"
	}
	return "Afloat"
}
