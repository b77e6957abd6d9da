package random

import (
	"math/rand"

	"github.com/they4kman/gobattleship/game"
)

// Director fires at every cell of the board once, in a shuffled order.
type Director struct {
	Rand *rand.Rand

	board *game.Board
	moves []string
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.moves = director.moves[:0]

	for cell := range board.Cells() {
		director.moves = append(director.moves, cell.Move())
	}

	shuffle := rand.Shuffle
	if director.Rand != nil {
		shuffle = director.Rand.Shuffle
	}
	shuffle(len(director.moves), func(i, j int) {
		director.moves[i], director.moves[j] = director.moves[j], director.moves[i]
	})
}

func (director *Director) Act() (string, bool) {
	for len(director.moves) > 0 {
		move := director.moves[0]
		director.moves = director.moves[1:]

		col, row, err := game.ParseMove(move, director.board.Size())
		if err != nil {
			continue
		}
		if !director.board.CellAt(col, row).IsTried() {
			return move, true
		}
	}
	return "", false
}
