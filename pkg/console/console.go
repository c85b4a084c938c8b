// Package console implements the local collaborators of a session: a
// stdin move source and a terminal display that renders the enemy and
// own boards side by side.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/LeGarbage/battleshipy/pkg/game"
)

const hitArt = `
                    ╔╗ ╔═╗╔═╗╔╦╗┬
                    ╠╩╗║ ║║ ║║║║│
                    ╚═╝╚═╝╚═╝╩ ╩o`

const missArt = `
                     ╔╦╗┬┌─┐┌─┐┬
                     ║║║│└─┐└─┐│
                     ╩ ╩┴└─┘└─┘o`

const sunkArt = `
                  ╔═╗╦ ╦╦ ╦╔╗╔╦╔═┬
                  ╚═╗║ ║║ ║║║║╠╩╗│
                  ╚═╝╚═╝╚═╝╝╚╝╩ ╩o`

const winArt = `
                ╦  ╦╦╔═╗╔╦╗╔═╗╦═╗╦ ╦┬
                ╚╗╔╝║║   ║ ║ ║╠╦╝╚╦╝│
                 ╚╝ ╩╚═╝ ╩ ╚═╝╩╚═ ╩ o`

const loseArt = `
             ╔═╗╔═╗╔╦╗╔═╗  ╔═╗╦  ╦╔═╗╦═╗┬
             ║ ╦╠═╣║║║║╣   ║ ║╚╗╔╝║╣ ╠╦╝│
             ╚═╝╩ ╩╩ ╩╚═╝  ╚═╝ ╚╝ ╚═╝╩╚═o`

type Console struct {
	in  *bufio.Reader
	out io.Writer
	tty *termenv.Output
}

func New() *Console {
	return newConsole(os.Stdin, os.Stdout)
}

func newConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
		tty: termenv.NewOutput(out),
	}
}

//ReadMove prompts for and returns one raw line of user input.
func (c *Console) ReadMove() (string, error) {
	fmt.Fprint(c.out, "\nYour move (e.g. A5): ")
	line, err := c.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

//ShowBoards renders the enemy board (this peer's shots and hits) next to
//the own board (ship cells plus the opponent's hits and misses).
func (c *Console) ShowBoards(board *game.Board, shots map[game.Coordinate]bool, hits map[game.Coordinate]bool) {
	size := board.Size()

	header := "   A B C D E F G H I J"
	border := "  +-------------------+"

	enemyRows := []string{header + "    ", border + "   "}
	ownRows := []string{header, border}

	for row := 0; row < size; row++ {
		enemy := make([]string, size)
		own := make([]string, size)
		for col := 0; col < size; col++ {
			cell := game.Coordinate{Col: col, Row: row}

			enemy[col] = " "
			if shots[cell] {
				if hits[cell] {
					enemy[col] = c.paint("X", termenv.ANSIRed)
				} else {
					enemy[col] = c.paint("O", termenv.ANSICyan)
				}
			}

			switch board.At(cell) {
			case game.Hit:
				own[col] = c.paint("X", termenv.ANSIRed)
			case game.Miss:
				own[col] = c.paint("O", termenv.ANSICyan)
			case game.Ship:
				own[col] = "S"
			default:
				own[col] = " "
			}
		}
		enemyRows = append(enemyRows, fmt.Sprintf("%d |%s|   ", row, strings.Join(enemy, " ")))
		ownRows = append(ownRows, fmt.Sprintf("%d |%s|", row, strings.Join(own, " ")))
	}

	enemyRows = append(enemyRows, border+"   ", "  [    ENEMY BOARD    ]   ")
	ownRows = append(ownRows, border, "  [     YOUR BOARD    ]")

	fmt.Fprintln(c.out)
	for i := range enemyRows {
		fmt.Fprintf(c.out, "%s    %s\n", enemyRows[i], ownRows[i])
	}
	fmt.Fprintln(c.out)
}

//ShowOutcome prints feedback for a resolved shot. own selects the
//attacker's perspective (this peer fired) over the defender's.
func (c *Console) ShowOutcome(o game.Outcome, own bool) {
	switch o {
	case game.OutcomeInvalid:
		if own {
			fmt.Fprintln(c.out, "\nInvalid move! Try again")
		} else {
			fmt.Fprintln(c.out, "\nOpponent fired an invalid move.")
		}
	case game.OutcomeRepeat:
		if own {
			fmt.Fprintln(c.out, "\nYou already shot there!")
		} else {
			fmt.Fprintln(c.out, "\nOpponent repeated a shot.")
		}
	case game.OutcomeMiss:
		fmt.Fprintln(c.out, c.paint(missArt, termenv.ANSICyan))
	case game.OutcomeHit:
		fmt.Fprintln(c.out, c.paint(hitArt, termenv.ANSIRed))
	case game.OutcomeHitAndSunk:
		fmt.Fprintln(c.out, c.paint(hitArt, termenv.ANSIRed))
		fmt.Fprintln(c.out, c.paint(sunkArt, termenv.ANSIYellow))
	case game.OutcomeGameOver:
		if own {
			fmt.Fprintln(c.out, c.paint(winArt, termenv.ANSIGreen))
		} else {
			fmt.Fprintln(c.out, c.paint(loseArt, termenv.ANSIRed))
		}
	}
}

func (c *Console) ShowOpponentMove(move string) {
	fmt.Fprintf(c.out, "\nOpponent's move: %s\n", move)
}

func (c *Console) ShowMessage(message string) {
	fmt.Fprintln(c.out, message)
}

func (c *Console) paint(s string, color termenv.Color) string {
	return c.tty.String(s).Foreground(color).String()
}
