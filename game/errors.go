package game

import "errors"

var (
	// ErrSizeOutOfRange is returned when a board size lies outside [MinSize, MaxSize].
	ErrSizeOutOfRange = errors.New("board size out of range")

	// ErrUnplaceable is returned when a ship could not be placed within the
	// configured number of attempts.
	ErrUnplaceable = errors.New("fleet cannot be placed on board")

	// ErrInvalidFleet is returned when a fleet definition fails validation.
	ErrInvalidFleet = errors.New("invalid fleet")

	// ErrInvalidMove is returned by ParseMove for malformed or out-of-range moves.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidSnapshot is returned when a snapshot layout cannot be loaded.
	ErrInvalidSnapshot = errors.New("invalid board snapshot")
)
