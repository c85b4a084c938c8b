// Package session drives the alternating turn exchange between two
// peers over a single ordered connection. A peer sends at most one shot
// and then blocks for the opponent's classification; every received shot
// is answered with exactly one outcome token.
package session

import (
	"errors"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/LeGarbage/battleshipy/pkg/game"
	"github.com/LeGarbage/battleshipy/pkg/protocol"
)

//go:generate mockery -name=Conn -output=automock -outpkg=automock -case=underscore
type Conn interface {
	WriteMessage(int, []byte) error
	Close() error
	ReadMessage() (int, []byte, error)
}

//go:generate mockery -name=MoveSource -output=automock -outpkg=automock -case=underscore
type MoveSource interface {
	ReadMove() (string, error)
}

//go:generate mockery -name=Display -output=automock -outpkg=automock -case=underscore
type Display interface {
	ShowBoards(board *game.Board, shots map[game.Coordinate]bool, hits map[game.Coordinate]bool)
	ShowOutcome(o game.Outcome, own bool)
	ShowOpponentMove(move string)
	ShowMessage(message string)
}

type Role int

const (
	// RoleConnector dialed the connection and moves first.
	RoleConnector Role = iota
	// RoleListener accepted the connection, sends the ready token and
	// moves second.
	RoleListener
)

var (
	// ErrPeerDisconnected marks an abnormal end: the channel closed
	// mid-game. It is never interpreted as a move or an outcome.
	ErrPeerDisconnected = errors.New("peer disconnected")
	// ErrProtocol marks bytes that do not parse where an outcome or the
	// ready token was required.
	ErrProtocol = errors.New("protocol violation")
)

type Session struct {
	ID      string
	Conn    Conn
	Game    *game.Game
	Input   MoveSource
	Display Display
}

func New(id string, conn Conn, g *game.Game, input MoveSource, display Display) *Session {
	return &Session{
		ID:      id,
		Conn:    conn,
		Game:    g,
		Input:   input,
		Display: display,
	}
}

//Handshake synchronizes game start. The listener sends the ready token;
//the connector must consume it before its first move.
func (s *Session) Handshake(role Role) error {
	if role == RoleListener {
		if err := s.Conn.WriteMessage(websocket.TextMessage, []byte(protocol.Ready)); err != nil {
			return fmt.Errorf("%w: %v", ErrPeerDisconnected, err)
		}
		return nil
	}

	_, data, err := s.Conn.ReadMessage()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPeerDisconnected, err)
	}
	if string(data) != protocol.Ready {
		return fmt.Errorf("%w: expected ready token, got %q", ErrProtocol, string(data))
	}
	return nil
}

//Run plays the game to completion, assuming Handshake has been done. It
//returns nil on a normal game end (the game tells who won),
//ErrPeerDisconnected if the channel closes mid-game and ErrProtocol on
//an unrecognized outcome token.
func (s *Session) Run(role Role) error {
	s.Game.Start(role == RoleConnector)

	for {
		switch s.Game.State() {
		case game.AwaitingOwnMove:
			if err := s.playOwnMove(); err != nil {
				return err
			}
		case game.AwaitingOpponentMove:
			if err := s.awaitOpponentMove(); err != nil {
				return err
			}
		case game.Over:
			s.showBoards()
			return nil
		}
	}
}

// playOwnMove collects one well-formed move, sends it, and folds the
// opponent's classification into the local game. Invalid and Repeat
// leave the state on AwaitingOwnMove so the caller loop retries.
func (s *Session) playOwnMove() error {
	s.showBoards()

	move, c, err := s.readValidMove()
	if err != nil {
		return err
	}

	if err := s.Conn.WriteMessage(websocket.TextMessage, []byte(move)); err != nil {
		return fmt.Errorf("%w: %v", ErrPeerDisconnected, err)
	}

	_, data, err := s.Conn.ReadMessage()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPeerDisconnected, err)
	}

	outcome, err := protocol.ParseOutcome(string(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProtocol, err)
	}
	s.Display.ShowOutcome(outcome, true)

	s.Game.RecordOwnShot(c, outcome)
	return nil
}

// awaitOpponentMove blocks for one incoming shot, resolves it against
// the own fleet and answers with exactly one outcome token. A move that
// does not decode is answered with invalid, leaving the opponent's turn
// open.
func (s *Session) awaitOpponentMove() error {
	s.showBoards()
	s.Display.ShowMessage("Waiting for opponent's move...")

	_, data, err := s.Conn.ReadMessage()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPeerDisconnected, err)
	}
	move := string(data)
	s.Display.ShowOpponentMove(move)

	outcome := game.OutcomeInvalid
	if c, err := protocol.ParseMove(move); err == nil {
		outcome = s.Game.ResolveShot(c)
	}
	s.Display.ShowOutcome(outcome, false)

	if err := s.Conn.WriteMessage(websocket.TextMessage, []byte(protocol.EncodeOutcome(outcome))); err != nil {
		return fmt.Errorf("%w: %v", ErrPeerDisconnected, err)
	}
	return nil
}

// readValidMove prompts until the input both passes the format
// pre-filter and decodes to a coordinate. A format error is always
// recoverable: nothing is sent and the user is re-prompted.
func (s *Session) readValidMove() (string, game.Coordinate, error) {
	for {
		move, err := s.Input.ReadMove()
		if err != nil {
			return "", game.Coordinate{}, fmt.Errorf("read move: %w", err)
		}
		c, err := protocol.ParseMove(move)
		if err == nil {
			return move, c, nil
		}
		s.Display.ShowMessage("Invalid move format!")
	}
}

func (s *Session) showBoards() {
	s.Display.ShowBoards(s.Game.Board(), s.Game.Shots(), s.Game.Hits())
}
