package rules

import (
	"errors"

	. "gopkg.in/check.v1"
)

func (s *RulesSuite) TestOpeningMoves(c *C) {
	p := NewGame()
	s.sameSquares(c, s.possible(c, p, "b1", White), ats("a3", "c3"))
	s.sameSquares(c, s.possible(c, p, "g1", White), ats("f3", "h3"))
	s.sameSquares(c, s.possible(c, p, "a1", White), nil)
	s.sameSquares(c, s.possible(c, p, "c1", White), nil)
	s.sameSquares(c, s.possible(c, p, "d1", White), nil)
	s.sameSquares(c, s.possible(c, p, "e1", White), nil)
	s.sameSquares(c, s.possible(c, p, "e2", White), ats("e3", "e4"))
	s.sameSquares(c, s.possible(c, p, "g8", Black), ats("f6", "h6"))
	s.sameSquares(c, s.possible(c, p, "d7", Black), ats("d6", "d5"))
	s.sameSquares(c, s.possible(c, p, "h8", Black), nil)
}

func (s *RulesSuite) TestKingMoves(c *C) {
	p := fen(c, "7k/8/8/8/3K4/8/8/8 w - - 0 1")
	s.sameSquares(c, s.possible(c, p, "d4", White), ats("c3", "c4", "c5", "d3", "d5", "e3", "e4", "e5"))
	p = fen(c, "7k/8/8/8/8/8/1P6/KN6 w - - 0 1")
	s.sameSquares(c, s.possible(c, p, "a1", White), ats("a2"))
}

func (s *RulesSuite) TestKnightMoves(c *C) {
	p := fen(c, "7k/8/8/2p1P3/8/3N4/8/K7 w - - 0 1")
	s.sameSquares(c, s.possible(c, p, "d3", White), ats("b2", "b4", "c1", "c5", "e1", "f2", "f4"))
	p = fen(c, "7k/8/8/8/8/8/8/K6N w - - 0 1")
	s.sameSquares(c, s.possible(c, p, "h1", White), ats("f2", "g3"))
}

func (s *RulesSuite) TestRookStopsAtFirstPiece(c *C) {
	p := fen(c, "7k/8/8/8/8/p7/8/R6K w - - 0 1")
	s.sameSquares(c, s.possible(c, p, "a1", White), ats("a2", "a3", "b1", "c1", "d1", "e1", "f1", "g1"))
}

func (s *RulesSuite) TestBishopMoves(c *C) {
	p := fen(c, "7k/8/8/8/3B4/8/1P3n2/K7 w - - 0 1")
	s.sameSquares(c, s.possible(c, p, "d4", White), ats(
		"c3",
		"e3", "f2",
		"c5", "b6", "a7",
		"e5", "f6", "g7", "h8",
	))
}

func (s *RulesSuite) TestQueenMoves(c *C) {
	p := fen(c, "7k/8/8/8/8/1p6/PQ6/K7 w - - 0 1")
	s.sameSquares(c, s.possible(c, p, "b2", White), ats(
		"b1", "c1", "a3", "b3", "c3", "d4", "e5", "f6", "g7", "h8",
		"c2", "d2", "e2", "f2", "g2", "h2",
	))
}

func (s *RulesSuite) TestPawnMoves(c *C) {
	p := fen(c, "4k3/8/8/8/8/3p1n2/4P3/K7 w - - 0 1")
	s.sameSquares(c, s.possible(c, p, "e2", White), ats("d3", "e3", "e4", "f3"))

	p = fen(c, "4k3/8/8/8/4P3/8/8/K7 w - - 0 1")
	s.sameSquares(c, s.possible(c, p, "e4", White), ats("e5"))

	p = fen(c, "4k3/4p3/3P4/8/8/8/8/K7 b - - 0 1")
	s.sameSquares(c, s.possible(c, p, "e7", Black), ats("d6", "e6", "e5"))

	p = fen(c, "4k3/8/8/8/8/8/8/K3p3 b - - 0 1")
	s.sameSquares(c, s.possible(c, p, "e1", Black), nil)
}

func (s *RulesSuite) TestPawnDoubleStepNeedsClearPath(c *C) {
	p := fen(c, "4k3/8/8/8/8/4n3/4P3/K7 w - - 0 1")
	s.sameSquares(c, s.possible(c, p, "e2", White), nil)

	p = fen(c, "4k3/4p3/4N3/8/8/8/8/K7 b - - 0 1")
	s.sameSquares(c, s.possible(c, p, "e7", Black), nil)

	p = fen(c, "4k3/8/8/8/4n3/8/4P3/K7 w - - 0 1")
	s.sameSquares(c, s.possible(c, p, "e2", White), ats("e3"))
}

func (s *RulesSuite) TestPawnDoesNotCaptureForward(c *C) {
	p := fen(c, "4k3/8/8/8/8/4p3/4P3/K7 w - - 0 1")
	s.sameSquares(c, s.possible(c, p, "e2", White), nil)
}

func (s *RulesSuite) TestPossibleMovesEmptySquare(c *C) {
	moves, err := PossibleMoves(NewBoard(), at("e4"), White)
	c.Assert(moves, IsNil)
	c.Assert(errors.Is(err, ErrEmptySquare), Equals, true)
	c.Assert(err, ErrorMatches, "e4: no piece on square")
}

func (s *RulesSuite) TestPossibleMovesOffBoard(c *C) {
	for _, sq := range []Square{-1, 64, 100} {
		moves, err := PossibleMoves(NewBoard(), sq, White)
		c.Check(moves, IsNil)
		c.Check(errors.Is(err, ErrOutOfBoard), Equals, true)
	}
}

func (s *RulesSuite) TestPossibleMovesUseQueryingColor(c *C) {
	p := fen(c, "7k/8/8/8/4P3/3P1N2/8/4K3 w - - 0 1")
	s.sameSquares(c, s.possible(c, p, "e4", White), ats("e5"))
	s.sameSquares(c, s.possible(c, p, "e4", Black), ats("d3", "e3", "f3"))
	s.sameSquares(c, s.possible(c, p, "f3", White), ats("d2", "d4", "e5", "g1", "g5", "h2", "h4"))
	s.sameSquares(c, s.possible(c, p, "f3", Black), ats("d2", "d4", "e1", "e5", "g1", "g5", "h2", "h4"))
}
