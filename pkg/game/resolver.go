package game

// Outcome classifies the resolution of a single shot.
type Outcome int

const (
	OutcomeInvalid Outcome = iota
	OutcomeRepeat
	OutcomeMiss
	OutcomeHit
	OutcomeHitAndSunk
	OutcomeGameOver
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInvalid:
		return "invalid"
	case OutcomeRepeat:
		return "repeat"
	case OutcomeMiss:
		return "miss"
	case OutcomeHit:
		return "hit"
	case OutcomeHitAndSunk:
		return "hit and sunk"
	case OutcomeGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

//ResolveShot resolves an opponent shot at c against this peer's own
//fleet and advances the turn state. Rules apply in order: out-of-bounds
//shots are Invalid and previously fired coordinates are Repeat, both
//leaving all state untouched so the opponent retries the same turn. Any
//other shot is recorded, the targeted cell is marked Hit or Miss, and a
//ship whose every cell has now been shot is newly sunk. Sinking the last
//ship ends the game.
func (g *Game) ResolveShot(c Coordinate) Outcome {
	if !g.board.InBounds(c) {
		return OutcomeInvalid
	}
	if g.opponentShots[c] {
		return OutcomeRepeat
	}
	g.opponentShots[c] = true

	ship := g.fleet.ShipAt(c)
	if ship == nil {
		g.board.Mark(c, Miss)
		g.state = AwaitingOwnMove
		return OutcomeMiss
	}

	g.board.Mark(c, Hit)
	outcome := OutcomeHit
	if !g.sunk[ship.Name] && ship.SunkBy(g.opponentShots) {
		g.sunk[ship.Name] = true
		if len(g.sunk) == len(g.fleet) {
			outcome = OutcomeGameOver
		} else {
			outcome = OutcomeHitAndSunk
		}
	}

	if outcome == OutcomeGameOver {
		g.state = Over
		g.won = false
	} else {
		g.state = AwaitingOwnMove
	}
	return outcome
}
