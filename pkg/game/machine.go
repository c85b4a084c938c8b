package game

// State is the position of a peer in the turn exchange.
type State int

const (
	// AwaitingOwnMove means this peer fires next.
	AwaitingOwnMove State = iota
	// AwaitingOpponentMove means this peer answers the next incoming shot.
	AwaitingOpponentMove
	// Over is terminal; Won tells the two apart.
	Over
)

// Game holds one peer's complete view of the match: its own board and
// fleet, the shots the opponent has fired at it, and its own shot record
// against the (never directly visible) enemy board.
type Game struct {
	board   *Board
	fleet   Fleet
	catalog []ShipClass

	// shots fired by the opponent at this peer's board.
	opponentShots map[Coordinate]bool
	sunk          map[string]bool

	// this peer's own shots at the enemy, and which of them hit.
	shots map[Coordinate]bool
	hits  map[Coordinate]bool

	state State
	won   bool
}

//New returns an empty game for the given ship catalog. Ships are placed
//separately, via PlaceFleet or PlaceShipAt.
func New(catalog []ShipClass) *Game {
	return &Game{
		board:         NewBoard(BoardSize),
		fleet:         make(Fleet, len(catalog)),
		catalog:       catalog,
		opponentShots: make(map[Coordinate]bool),
		sunk:          make(map[string]bool),
		shots:         make(map[Coordinate]bool),
		hits:          make(map[Coordinate]bool),
	}
}

//Start fixes the initial turn state. The connecting peer moves first.
func (g *Game) Start(movesFirst bool) {
	if movesFirst {
		g.state = AwaitingOwnMove
	} else {
		g.state = AwaitingOpponentMove
	}
}

func (g *Game) State() State {
	return g.state
}

//Won reports whether this peer sank the opposing fleet. Meaningful only
//once State is Over.
func (g *Game) Won() bool {
	return g.won
}

func (g *Game) Board() *Board {
	return g.board
}

//Shots returns the coordinates this peer has fired at the enemy.
func (g *Game) Shots() map[Coordinate]bool {
	return g.shots
}

//Hits returns the subset of Shots that hit an enemy ship.
func (g *Game) Hits() map[Coordinate]bool {
	return g.hits
}

//RecordOwnShot folds the opponent's classification of this peer's shot
//into the local shot record and advances the turn state. Invalid and
//Repeat leave the state unchanged so the same turn is retried.
func (g *Game) RecordOwnShot(c Coordinate, o Outcome) {
	switch o {
	case OutcomeInvalid, OutcomeRepeat:
		return
	case OutcomeMiss:
		g.shots[c] = true
		g.state = AwaitingOpponentMove
	case OutcomeHit, OutcomeHitAndSunk:
		g.shots[c] = true
		g.hits[c] = true
		g.state = AwaitingOpponentMove
	case OutcomeGameOver:
		g.shots[c] = true
		g.hits[c] = true
		g.state = Over
		g.won = true
	}
}
