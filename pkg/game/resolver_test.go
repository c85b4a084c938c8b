package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newGameWithShips places the given ships on a fresh game and marks it
// as awaiting the opponent's move, the state in which shots arrive.
func newGameWithShips(t *testing.T, ships map[ShipClass]Coordinate) *Game {
	t.Helper()

	catalog := make([]ShipClass, 0, len(ships))
	for class := range ships {
		catalog = append(catalog, class)
	}
	g := New(catalog)
	for class, anchor := range ships {
		require.NoError(t, g.PlaceShipAt(class, anchor, true))
	}
	g.Start(false)
	return g
}

func TestGame_ResolveShot(t *testing.T) {
	destroyer := ShipClass{Name: "Destroyer", Length: 2}
	carrier := ShipClass{Name: "Carrier", Length: 5}

	t.Run("out of bounds is invalid and mutates nothing", func(t *testing.T) {
		// when
		g := newGameWithShips(t, map[ShipClass]Coordinate{destroyer: {Col: 3, Row: 0}})

		// then
		outcome := g.ResolveShot(Coordinate{Col: 25, Row: 9})
		assert.Equal(t, OutcomeInvalid, outcome)
		assert.Equal(t, AwaitingOpponentMove, g.State())

		// the same in-bounds shot afterwards is fresh, nothing was recorded
		assert.Equal(t, OutcomeHit, g.ResolveShot(Coordinate{Col: 3, Row: 0}))
	})

	t.Run("repeat leaves state unchanged", func(t *testing.T) {
		// when
		g := newGameWithShips(t, map[ShipClass]Coordinate{destroyer: {Col: 3, Row: 0}})
		require.Equal(t, OutcomeMiss, g.ResolveShot(Coordinate{Col: 0, Row: 0}))
		g.Start(false)

		// then
		outcome := g.ResolveShot(Coordinate{Col: 0, Row: 0})
		assert.Equal(t, OutcomeRepeat, outcome)
		assert.Equal(t, AwaitingOpponentMove, g.State())
		assert.Equal(t, rune(Miss), g.Board().At(Coordinate{Col: 0, Row: 0}))
	})

	t.Run("miss marks the cell and hands the turn over", func(t *testing.T) {
		// when
		g := newGameWithShips(t, map[ShipClass]Coordinate{destroyer: {Col: 3, Row: 0}})

		// then
		outcome := g.ResolveShot(Coordinate{Col: 7, Row: 7})
		assert.Equal(t, OutcomeMiss, outcome)
		assert.Equal(t, rune(Miss), g.Board().At(Coordinate{Col: 7, Row: 7}))
		assert.Equal(t, AwaitingOwnMove, g.State())
	})

	t.Run("destroyer at D0-E0 plays out the classic scenario", func(t *testing.T) {
		// when: two ships so sinking the destroyer is not yet game over
		g := newGameWithShips(t, map[ShipClass]Coordinate{
			destroyer: {Col: 3, Row: 0},
			carrier:   {Col: 0, Row: 5},
		})

		// then
		g.Start(false)
		assert.Equal(t, OutcomeHit, g.ResolveShot(Coordinate{Col: 3, Row: 0})) // D0

		g.Start(false)
		assert.Equal(t, OutcomeHitAndSunk, g.ResolveShot(Coordinate{Col: 4, Row: 0})) // E0

		g.Start(false)
		assert.Equal(t, OutcomeRepeat, g.ResolveShot(Coordinate{Col: 3, Row: 0})) // D0 again

		g.Start(false)
		assert.Equal(t, OutcomeInvalid, g.ResolveShot(Coordinate{Col: 25, Row: 9})) // Z9
	})

	t.Run("single destroyer fleet ends with gameover, never hit and sunk", func(t *testing.T) {
		// when
		g := newGameWithShips(t, map[ShipClass]Coordinate{destroyer: {Col: 3, Row: 0}})

		// then
		assert.Equal(t, OutcomeHit, g.ResolveShot(Coordinate{Col: 3, Row: 0}))
		assert.Equal(t, OutcomeGameOver, g.ResolveShot(Coordinate{Col: 4, Row: 0}))
		assert.Equal(t, Over, g.State())
		assert.False(t, g.Won())
	})

	t.Run("gameover exactly on the shot completing the last ship", func(t *testing.T) {
		// when
		g := newGameWithShips(t, map[ShipClass]Coordinate{
			destroyer: {Col: 3, Row: 0},
			carrier:   {Col: 0, Row: 5},
		})

		shots := []struct {
			c        Coordinate
			expected Outcome
		}{
			{Coordinate{Col: 3, Row: 0}, OutcomeHit},
			{Coordinate{Col: 4, Row: 0}, OutcomeHitAndSunk},
			{Coordinate{Col: 0, Row: 5}, OutcomeHit},
			{Coordinate{Col: 1, Row: 5}, OutcomeHit},
			{Coordinate{Col: 2, Row: 5}, OutcomeHit},
			{Coordinate{Col: 3, Row: 5}, OutcomeHit},
			{Coordinate{Col: 4, Row: 5}, OutcomeGameOver},
		}

		// then
		for _, shot := range shots {
			g.Start(false)
			assert.Equal(t, shot.expected, g.ResolveShot(shot.c), "shot at %v", shot.c)
		}
		assert.Equal(t, Over, g.State())
	})
}
