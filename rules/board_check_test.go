package rules

import (
	"errors"

	. "gopkg.in/check.v1"
)

func (s *RulesSuite) TestKingCannotWalkIntoRook(c *C) {
	p := fen(c, "3r3k/8/8/8/8/8/8/4K3 w - - 0 1")
	legal, err := IsLegal(p, at("e1"), at("d1"))
	c.Assert(err, IsNil)
	c.Assert(legal, Equals, false)
	s.sameSquares(c, s.legal(c, p, "e1"), ats("e2", "f1", "f2"))

	p = fen(c, "7k/8/8/8/8/8/8/4K3 w - - 0 1")
	legal, err = IsLegal(p, at("e1"), at("d1"))
	c.Assert(err, IsNil)
	c.Assert(legal, Equals, true)
	s.sameSquares(c, s.legal(c, p, "e1"), ats("d1", "d2", "e2", "f1", "f2"))
}

func (s *RulesSuite) TestPinnedPieceHasNoLegalMoves(c *C) {
	p := fen(c, "4r1k1/8/8/8/8/8/4B3/4K3 w - - 0 1")
	c.Assert(s.possible(c, p, "e2", White), Not(HasLen), 0)
	s.sameSquares(c, s.legal(c, p, "e2"), nil)
}

func (s *RulesSuite) TestCaptureResolvesCheck(c *C) {
	p := fen(c, "6k1/8/8/8/8/8/3q4/4K3 w - - 0 1")
	s.sameSquares(c, s.legal(c, p, "e1"), ats("d2", "f1"))
}

func (s *RulesSuite) TestLegalityQueriesDoNotMutate(c *C) {
	p := fen(c, "3r3k/8/8/8/8/8/4P3/4K3 w - - 0 1")
	before := p
	var first []Square
	for i := 0; i < 5; i++ {
		moves := s.possible(c, p, "e1", White)
		if first == nil {
			first = moves
		}
		s.sameSquares(c, moves, first)
		legal, err := IsLegal(p, at("e1"), at("d1"))
		c.Assert(err, IsNil)
		c.Assert(legal, Equals, false)
		_, err = IsLegal(p, at("e2"), at("e4"))
		c.Assert(err, IsNil)
		_, err = AllLegalMoves(p)
		c.Assert(err, IsNil)
	}
	c.Assert(p, Equals, before)
}

func (s *RulesSuite) TestIsLegalErrors(c *C) {
	p := NewGame()
	_, err := IsLegal(p, at("e4"), at("e5"))
	c.Assert(errors.Is(err, ErrEmptySquare), Equals, true)
	_, err = IsLegal(p, at("e2"), 64)
	c.Assert(errors.Is(err, ErrOutOfBoard), Equals, true)
	_, err = IsLegal(p, -3, at("e4"))
	c.Assert(errors.Is(err, ErrOutOfBoard), Equals, true)

	var kingless Position
	c.Assert(kingless.Board.Set(at("a1"), NewPiece(White, Rook)), IsNil)
	_, err = IsLegal(kingless, at("a1"), at("a2"))
	c.Assert(err, Equals, ErrNoKingFound)
	_, err = LegalMoves(kingless, at("a1"))
	c.Assert(err, Equals, ErrNoKingFound)
	_, err = IsCheckmate(kingless)
	c.Assert(err, Equals, ErrNoKingFound)
}

func (s *RulesSuite) TestInitialPositionIsNotCheckmate(c *C) {
	p := NewGame()
	mate, err := IsCheckmate(p)
	c.Assert(err, IsNil)
	c.Assert(mate, Equals, false)
	none, err := NoLegalMoves(p)
	c.Assert(err, IsNil)
	c.Assert(none, Equals, false)
	moves, err := AllLegalMoves(p)
	c.Assert(err, IsNil)
	c.Assert(moves, HasLen, 20)
	moves, err = AllLegalMoves(p.AdvanceTurn())
	c.Assert(err, IsNil)
	c.Assert(moves, HasLen, 20)
}

func (s *RulesSuite) TestBackRankMate(c *C) {
	p := fen(c, "Q5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
	mate, err := IsCheckmate(p)
	c.Assert(err, IsNil)
	c.Assert(mate, Equals, true)
	none, err := NoLegalMoves(p)
	c.Assert(err, IsNil)
	c.Assert(none, Equals, true)
	stalemate, err := IsStalemate(p)
	c.Assert(err, IsNil)
	c.Assert(stalemate, Equals, false)
}

func (s *RulesSuite) TestBackRankEscapeWithLuft(c *C) {
	p := fen(c, "Q5k1/5pp1/7p/8/8/8/8/6K1 b - - 0 1")
	mate, err := IsCheckmate(p)
	c.Assert(err, IsNil)
	c.Assert(mate, Equals, false)
	s.sameSquares(c, s.legal(c, p, "g8"), ats("h7"))
}

func (s *RulesSuite) TestStalemateIsNotCheckmate(c *C) {
	p := fen(c, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	none, err := NoLegalMoves(p)
	c.Assert(err, IsNil)
	c.Assert(none, Equals, true)
	mate, err := IsCheckmate(p)
	c.Assert(err, IsNil)
	c.Assert(mate, Equals, false)
	stalemate, err := IsStalemate(p)
	c.Assert(err, IsNil)
	c.Assert(stalemate, Equals, true)
}

func (s *RulesSuite) TestStatus(c *C) {
	cases := []struct {
		fen    string
		status GameStatus
	}{
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1", InProgress},
		{"4k3/8/8/8/8/8/8/4R1K1 b - - 0 1", Check},
		{"Q5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", Checkmate},
		{"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", Stalemate},
	}
	for _, tc := range cases {
		status, err := Status(fen(c, tc.fen))
		c.Assert(err, IsNil)
		c.Check(status, Equals, tc.status, Commentf("%s", tc.fen))
	}
	c.Assert(Checkmate.Over(), Equals, true)
	c.Assert(Stalemate.Over(), Equals, true)
	c.Assert(Check.Over(), Equals, false)
	c.Assert(InProgress.String(), Equals, "in progress")
}
