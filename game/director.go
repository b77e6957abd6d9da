package game

// Director picks moves on the player's behalf.
type Director interface {
	// Init prepares the director for a freshly placed board.
	Init(*Board)

	// Act returns the next move to fire at, or false once it has none left.
	Act() (string, bool)
}
