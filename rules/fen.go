package rules

import (
	"fmt"

	"github.com/notnil/chess"
)

var toNotnil = map[Piece]chess.Piece{
	wp: chess.WhitePawn,
	wr: chess.WhiteRook,
	wn: chess.WhiteKnight,
	wb: chess.WhiteBishop,
	wq: chess.WhiteQueen,
	wk: chess.WhiteKing,
	bp: chess.BlackPawn,
	br: chess.BlackRook,
	bn: chess.BlackKnight,
	bb: chess.BlackBishop,
	bq: chess.BlackQueen,
	bk: chess.BlackKing,
}

var fromNotnil = func() map[chess.Piece]Piece {
	m := make(map[chess.Piece]Piece, len(toNotnil))
	for ours, theirs := range toNotnil {
		m[theirs] = ours
	}
	return m
}()

// FromFEN reads a position from Forsyth-Edwards Notation. Castling rights,
// the en passant square and the move clocks are accepted but dropped.
func FromFEN(fen string) (Position, error) {
	option, err := chess.FEN(fen)
	if err != nil {
		return Position{}, fmt.Errorf("invalid FEN %q: %w", fen, err)
	}
	game := chess.NewGame(option)
	var p Position
	for sq, piece := range game.Position().Board().SquareMap() {
		ours, ok := fromNotnil[piece]
		if !ok {
			return Position{}, fmt.Errorf("invalid FEN %q: unknown piece %v", fen, piece)
		}
		p.Board[int(sq)] = ours
	}
	if game.Position().Turn() == chess.Black {
		p.Turn = Black
	}
	return p, nil
}

// FEN writes p in Forsyth-Edwards Notation with no castling or en passant
// rights.
func (p Position) FEN() string {
	squares := make(map[chess.Square]chess.Piece)
	for sq, piece := range p.Board {
		if theirs, ok := toNotnil[piece]; ok {
			squares[chess.Square(sq)] = theirs
		}
	}
	turn := "w"
	if p.Turn == Black {
		turn = "b"
	}
	return fmt.Sprintf("%s %s - - 0 1", chess.NewBoard(squares).String(), turn)
}
