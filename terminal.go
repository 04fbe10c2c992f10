package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
	"github.com/maplefeline/nchess/rules"
)

// terminal plays a game over a line-oriented reader and writer, one square
// per line.
type terminal struct {
	in  *bufio.Scanner
	out io.Writer
}

var errQuit = errors.New("quit")

func newTerminal(in io.Reader, out io.Writer) *terminal {
	return &terminal{in: bufio.NewScanner(in), out: out}
}

func (t *terminal) printf(format string, args ...interface{}) {
	fmt.Fprintf(t.out, format, args...)
}

// readSquare reprompts until a square is entered. It returns errQuit on end
// of input.
func (t *terminal) readSquare() (rules.Square, error) {
	for t.in.Scan() {
		sq, err := rules.ParseSquare(t.in.Text())
		if err == nil {
			return sq, nil
		}
		t.printf("This is not a square, try something like a3!\n")
	}
	if err := t.in.Err(); err != nil {
		return rules.NoSquare, err
	}
	return rules.NoSquare, errQuit
}

func (t *terminal) chooseFrom(p rules.Position) (rules.Square, []rules.Square, error) {
	t.printf("%s to move. Which piece do you want to move?\n", p.Turn)
	for {
		sq, err := t.readSquare()
		if err != nil {
			return rules.NoSquare, nil, err
		}
		piece := p.Board[sq]
		switch {
		case piece.Empty():
			t.printf("There is no piece at this square! Try selecting another square!\n")
			continue
		case piece.Color() != p.Turn:
			t.printf("This square contains your opponents piece. Try selecting another square!\n")
			continue
		}
		moves, err := rules.LegalMoves(p, sq)
		if err != nil {
			return rules.NoSquare, nil, err
		}
		if len(moves) == 0 {
			t.printf("There are no possible moves for this piece. Choose another one!\n")
			continue
		}
		return sq, moves, nil
	}
}

func (t *terminal) chooseTo(moves []rules.Square) (rules.Square, error) {
	names := make([]string, 0, len(moves))
	for _, sq := range moves {
		names = append(names, sq.String())
	}
	t.printf("These are the possible moves: %s\n", strings.Join(names, " "))
	for {
		t.printf("Choose one of these moves!\n")
		to, err := t.readSquare()
		if err != nil {
			return rules.NoSquare, err
		}
		for _, sq := range moves {
			if sq == to {
				return to, nil
			}
		}
	}
}

// run plays from p until the side to move has no legal move or the input
// ends, and returns the last position.
func (t *terminal) run(p rules.Position) (rules.Position, error) {
	for {
		status, err := rules.Status(p)
		if err != nil {
			return p, err
		}
		t.printf("%s", p.Board)
		if status.Over() {
			t.printf("%s, %s has no legal move.\n", status, p.Turn)
			return p, nil
		}
		if status == rules.Check {
			t.printf("check!\n")
		}
		from, moves, err := t.chooseFrom(p)
		if err != nil {
			return p, err
		}
		to, err := t.chooseTo(moves)
		if err != nil {
			return p, err
		}
		next, err := p.Play(rules.Move{From: from, To: to})
		if err != nil {
			return p, err
		}
		log.WithField("move", rules.Move{From: from, To: to}.String()).Debug("played")
		p = next
	}
}

func playTerminal(in io.Reader, out io.Writer, start rules.Position) (rules.Position, error) {
	p, err := newTerminal(in, out).run(start)
	if errors.Is(err, errQuit) {
		return p, nil
	}
	return p, err
}
