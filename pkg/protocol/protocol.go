// Package protocol defines the text tokens exchanged between peers and
// the move string codec. The encoding is kept bit-exact with the wire
// format of the original game so peers of either implementation
// interoperate.
package protocol

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"github.com/LeGarbage/battleshipy/pkg/game"
)

// Ready is sent by the listening peer once a connection is accepted,
// before placement or play begins.
const Ready = "ready"

// MaxMessageSize caps a single wire message. A move is at most three
// characters and the longest outcome token is nine, so this is ample.
const MaxMessageSize = 1024

const (
	TokenInvalid  = "invalid"
	TokenRepeat   = "repeat"
	TokenMiss     = "miss"
	TokenHit      = "hit"
	TokenHitSunk  = "hit\nsunk"
	TokenGameOver = "gameover"
)

var ErrMalformedMove = errors.New("malformed move")

//ValidMoveFormat is the pre-filter applied to raw move strings before
//any decoding: at least two characters, an alphabetic column followed by
//digits only.
func ValidMoveFormat(move string) bool {
	if len(move) < 2 {
		return false
	}
	runes := []rune(move)
	if !unicode.IsLetter(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

//ParseMove decodes a move string such as "A5" or "j9" into a coordinate.
//The column letter is case-insensitive. Only the format is checked here;
//bounds are the shot resolver's concern.
func ParseMove(move string) (game.Coordinate, error) {
	if !ValidMoveFormat(move) {
		return game.Coordinate{}, fmt.Errorf("%w: %q", ErrMalformedMove, move)
	}
	// Slice by rune, not byte: the column letter may be multi-byte. Such
	// a column decodes to an out-of-range coordinate that the resolver
	// classifies as invalid, like any other out-of-bounds shot.
	runes := []rune(move)
	col := int(unicode.ToUpper(runes[0]) - 'A')
	row, err := strconv.Atoi(string(runes[1:]))
	if err != nil {
		return game.Coordinate{}, fmt.Errorf("%w: %q", ErrMalformedMove, move)
	}
	return game.Coordinate{Col: col, Row: row}, nil
}

//FormatMove is the inverse of ParseMove for in-bounds coordinates.
func FormatMove(c game.Coordinate) string {
	return fmt.Sprintf("%c%d", rune('A'+c.Col), c.Row)
}

//EncodeOutcome renders an outcome as its wire token.
func EncodeOutcome(o game.Outcome) string {
	switch o {
	case game.OutcomeRepeat:
		return TokenRepeat
	case game.OutcomeMiss:
		return TokenMiss
	case game.OutcomeHit:
		return TokenHit
	case game.OutcomeHitAndSunk:
		return TokenHitSunk
	case game.OutcomeGameOver:
		return TokenGameOver
	default:
		return TokenInvalid
	}
}

//ParseOutcome decodes a wire token into an outcome. Unknown tokens are
//an error: when a peer expects an outcome, anything else is a protocol
//violation, not a move.
func ParseOutcome(token string) (game.Outcome, error) {
	switch token {
	case TokenInvalid:
		return game.OutcomeInvalid, nil
	case TokenRepeat:
		return game.OutcomeRepeat, nil
	case TokenMiss:
		return game.OutcomeMiss, nil
	case TokenHit:
		return game.OutcomeHit, nil
	case TokenHitSunk:
		return game.OutcomeHitAndSunk, nil
	case TokenGameOver:
		return game.OutcomeGameOver, nil
	default:
		return game.OutcomeInvalid, fmt.Errorf("unknown outcome token %q", token)
	}
}
