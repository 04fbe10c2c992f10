package main

import (
	"bytes"
	"strings"

	"github.com/maplefeline/nchess/rules"
	. "gopkg.in/check.v1"
)

func (s *NKnightSuite) TestTerminalFoolsMate(c *C) {
	in := strings.NewReader("f2\nf3\ne7\ne5\ng2\ng4\nd8\nh4\n")
	var out bytes.Buffer
	p, err := playTerminal(in, &out, rules.NewGame())
	c.Assert(err, IsNil)
	status, err := rules.Status(p)
	c.Assert(err, IsNil)
	c.Assert(status, Equals, rules.Checkmate)
	c.Assert(strings.HasSuffix(out.String(), "checkmate, white has no legal move.\n"), Equals, true)
}

func (s *NKnightSuite) TestTerminalReprompts(c *C) {
	in := strings.NewReader("e4\ne7\nzz\na1\ne2\ne5\ne4\n")
	var out bytes.Buffer
	p, err := playTerminal(in, &out, rules.NewGame())
	c.Assert(err, IsNil)
	c.Assert(p.Turn, Equals, rules.Black)
	c.Assert(p.Board[28], Equals, rules.NewPiece(rules.White, rules.Pawn))

	text := out.String()
	for _, want := range []string{
		"white to move. Which piece do you want to move?\n",
		"There is no piece at this square! Try selecting another square!\n",
		"This square contains your opponents piece. Try selecting another square!\n",
		"This is not a square, try something like a3!\n",
		"There are no possible moves for this piece. Choose another one!\n",
		"These are the possible moves: e3 e4\n",
		"black to move. Which piece do you want to move?\n",
	} {
		c.Check(strings.Contains(text, want), Equals, true, Commentf("%q", want))
	}
	c.Assert(strings.Count(text, "Choose one of these moves!\n"), Equals, 2)
}

func (s *NKnightSuite) TestTerminalStalemate(c *C) {
	start, err := rules.FromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	c.Assert(err, IsNil)
	var out bytes.Buffer
	p, err := playTerminal(strings.NewReader(""), &out, start)
	c.Assert(err, IsNil)
	c.Assert(p, Equals, start)
	c.Assert(strings.HasSuffix(out.String(), "stalemate, black has no legal move.\n"), Equals, true)
}
