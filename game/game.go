package game

import (
	"math/rand"
	"time"

	"github.com/gammazero/deque"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type GameConfig struct {
	Size  int
	Seed  int64
	Fleet Fleet

	// Placement trials allowed per ship before giving up
	MaxPlacementAttempts int
	// Number of recent shots kept for display
	HistoryLength int

	Director Director
	Logger   logrus.FieldLogger
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Size:                 DefaultSize,
		Seed:                 time.Now().UnixNano(),
		Fleet:                DefaultFleet(),
		MaxPlacementAttempts: DefaultMaxPlacementAttempts,
		HistoryLength:        DefaultHistoryLength,
		Director:             nil,
		Logger:               logrus.StandardLogger(),
	}
}

// Shot is one entry of the recent shots log.
type Shot struct {
	Move   string
	Result FireResult
	// Name of the ship this shot sank, if any
	Sunk string
}

// Game is a single player's session: the current board plus the round
// bookkeeping needed for replay.
type Game struct {
	config GameConfig

	board   *Board
	rand    *rand.Rand
	seed    int64
	round   int
	roundID uuid.UUID
	outcome RoundOutcome
	shots   int

	history *deque.Deque[Shot]
	log     *logrus.Entry
}

// NewBoard creates a board of the given size with the default fleet placed
// from seed.
func NewBoard(size int, seed int64) (*Board, error) {
	board, err := CreateBoard(size, DefaultFleet())
	if err != nil {
		return nil, err
	}
	if err := board.PlaceFleet(rand.New(rand.NewSource(seed)), DefaultMaxPlacementAttempts); err != nil {
		return nil, err
	}
	return board, nil
}

// Reset clears every cell and places the fleet again, keeping the size.
func (board *Board) Reset(rng Rand, maxAttempts int) error {
	board.clear()
	return board.PlaceFleet(rng, maxAttempts)
}

func NewGame(config GameConfig) (*Game, error) {
	if err := validateSize(config.Size); err != nil {
		return nil, err
	}
	if config.Fleet.Len() == 0 {
		config.Fleet = DefaultFleet()
	}
	if config.HistoryLength < 1 {
		config.HistoryLength = DefaultHistoryLength
	}
	if config.Logger == nil {
		config.Logger = logrus.StandardLogger()
	}

	board, err := CreateBoard(config.Size, config.Fleet)
	if err != nil {
		return nil, err
	}

	g := &Game{
		config:  config,
		board:   board,
		history: deque.New[Shot](config.HistoryLength),
	}

	if err := g.startRound(config.Seed); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) startRound(seed int64) error {
	g.seed = seed
	g.rand = rand.New(rand.NewSource(seed))
	g.round++
	g.roundID = uuid.New()
	g.outcome = Playing
	g.shots = 0
	g.history.Clear()

	g.log = g.config.Logger.WithFields(logrus.Fields{
		"round":    g.round,
		"round_id": g.roundID.String(),
	})

	if err := g.board.Reset(g.rand, g.config.MaxPlacementAttempts); err != nil {
		g.log.WithError(err).Error("placing fleet")
		return err
	}

	g.log.WithFields(logrus.Fields{
		"size": g.board.size,
		"seed": seed,
	}).Info("round started")
	g.log.Debugf("layout:\n%s", g.Snapshot().Serialize())

	if g.config.Director != nil {
		g.config.Director.Init(g.board)
	}
	return nil
}

// Reset starts a new round on a board of the same size. The next seed is drawn
// from the current round's generator, so a session replays deterministically.
func (g *Game) Reset() error {
	return g.startRound(g.rand.Int63())
}

// Fire resolves a move and records it. Once the round is won every move is
// Invalid until Reset.
func (g *Game) Fire(raw string) FireResult {
	if g.outcome == Won {
		return Invalid
	}

	col, row, err := ParseMove(raw, g.board.size)
	if err != nil {
		g.log.WithField("move", raw).WithError(err).Debug("rejected move")
		return Invalid
	}

	cell := g.board.CellAt(col, row)
	result := g.board.FireAt(col, row)
	shot := Shot{Move: cell.Move(), Result: result}
	g.shots++

	if result == HitResult {
		id, _ := cell.Ship()
		if g.board.IsSunk(id) {
			ship, _ := g.board.fleet.Ship(id)
			shot.Sunk = ship.Name
			g.log.WithField("ship", ship.Name).Info("ship sunk")
		}
	}

	g.log.WithFields(logrus.Fields{
		"move":   shot.Move,
		"result": result.String(),
	}).Debug("fired")

	g.record(shot)

	if g.board.AllSunk() {
		g.outcome = Won
		g.log.WithField("shots", g.shots).Info("fleet destroyed")
	}

	return result
}

func (g *Game) record(shot Shot) {
	g.history.PushFront(shot)
	for g.history.Len() > g.config.HistoryLength {
		g.history.PopBack()
	}
}

// RequestDirectorAct fires one move chosen by the configured director.
func (g *Game) RequestDirectorAct() (Shot, bool) {
	if g.config.Director == nil || g.outcome == Won {
		return Shot{}, false
	}

	move, ok := g.config.Director.Act()
	if !ok {
		return Shot{}, false
	}

	if g.Fire(move) == Invalid {
		return Shot{}, false
	}
	return g.LastShot()
}

func (g *Game) HasDirector() bool {
	return g.config.Director != nil
}

// History returns recent shots, most recent first.
func (g *Game) History() []Shot {
	shots := make([]Shot, g.history.Len())
	for i := range shots {
		shots[i] = g.history.At(i)
	}
	return shots
}

func (g *Game) LastShot() (Shot, bool) {
	if g.history.Len() == 0 {
		return Shot{}, false
	}
	return g.history.Front(), true
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) Outcome() RoundOutcome {
	return g.outcome
}

func (g *Game) Round() int {
	return g.round
}

func (g *Game) RoundID() uuid.UUID {
	return g.roundID
}

func (g *Game) Seed() int64 {
	return g.seed
}

func (g *Game) Shots() int {
	return g.shots
}

func (g *Game) ShipStatuses() []ShipStatus {
	return g.board.ShipStatuses()
}

func (g *Game) Snapshot() *BoardSnapshot {
	return g.board.snapshot(g.seed)
}
