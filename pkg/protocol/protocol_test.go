package protocol

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeGarbage/battleshipy/pkg/game"
)

func TestValidMoveFormat(t *testing.T) {
	testCases := []struct {
		Move     string
		Expected bool
	}{
		{Move: "A5", Expected: true},
		{Move: "j9", Expected: true},
		{Move: "A10", Expected: true},
		{Move: "A", Expected: false},
		{Move: "", Expected: false},
		{Move: "55", Expected: false},
		{Move: "AB", Expected: false},
		{Move: "A5x", Expected: false},
		{Move: "5A", Expected: false},
	}

	for _, testCase := range testCases {
		t.Run(fmt.Sprintf("%q", testCase.Move), func(t *testing.T) {
			assert.Equal(t, testCase.Expected, ValidMoveFormat(testCase.Move))
		})
	}
}

func TestParseMove(t *testing.T) {
	t.Run("round trip for every coordinate in bounds", func(t *testing.T) {
		for col := 0; col < game.BoardSize; col++ {
			for row := 0; row < game.BoardSize; row++ {
				c := game.Coordinate{Col: col, Row: row}

				parsed, err := ParseMove(FormatMove(c))
				require.NoError(t, err)
				assert.Equal(t, c, parsed)
			}
		}
	})

	t.Run("column letter is case-insensitive", func(t *testing.T) {
		upper, err := ParseMove("D7")
		require.NoError(t, err)
		lower, err := ParseMove("d7")
		require.NoError(t, err)
		assert.Equal(t, upper, lower)
	})

	t.Run("two-digit rows parse and are left to bounds checking", func(t *testing.T) {
		c, err := ParseMove("A10")
		require.NoError(t, err)
		assert.Equal(t, game.Coordinate{Col: 0, Row: 10}, c)
		assert.False(t, game.NewBoard(game.BoardSize).InBounds(c))
	})

	t.Run("multi-byte column letters decode to out-of-range coordinates", func(t *testing.T) {
		c, err := ParseMove("Ж5")
		require.NoError(t, err)
		assert.Equal(t, 5, c.Row)
		assert.False(t, game.NewBoard(game.BoardSize).InBounds(c))
	})

	t.Run("malformed moves fail", func(t *testing.T) {
		// "A٥" carries a non-ASCII digit that passes the pre-filter but
		// cannot decode to a row.
		for _, move := range []string{"", "A", "99", "A5x", "A٥"} {
			_, err := ParseMove(move)
			assert.ErrorIs(t, err, ErrMalformedMove, "move %q", move)
		}
	})
}

func TestOutcomeTokens(t *testing.T) {
	testCases := []struct {
		Token   string
		Outcome game.Outcome
	}{
		{Token: TokenInvalid, Outcome: game.OutcomeInvalid},
		{Token: TokenRepeat, Outcome: game.OutcomeRepeat},
		{Token: TokenMiss, Outcome: game.OutcomeMiss},
		{Token: TokenHit, Outcome: game.OutcomeHit},
		{Token: TokenHitSunk, Outcome: game.OutcomeHitAndSunk},
		{Token: TokenGameOver, Outcome: game.OutcomeGameOver},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Outcome.String(), func(t *testing.T) {
			assert.Equal(t, testCase.Token, EncodeOutcome(testCase.Outcome))

			parsed, err := ParseOutcome(testCase.Token)
			require.NoError(t, err)
			assert.Equal(t, testCase.Outcome, parsed)
		})
	}

	t.Run("hit and sunk token keeps the embedded newline", func(t *testing.T) {
		assert.Equal(t, "hit\nsunk", EncodeOutcome(game.OutcomeHitAndSunk))
	})

	t.Run("unknown token is an error", func(t *testing.T) {
		_, err := ParseOutcome("torpedo")
		assert.Error(t, err)
	})
}
