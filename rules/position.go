package rules

// Position is a board plus the side to move. Copying a Position copies all
// 64 squares.
type Position struct {
	Board Board
	Turn  Color
}

// NewGame returns the standard starting position, White to move.
func NewGame() Position {
	return Position{Board: NewBoard(), Turn: White}
}

// ApplyMove relocates the piece on from to to. Legality is the caller's
// business; only the squares are checked.
func (p Position) ApplyMove(from, to Square) (Position, error) {
	if err := p.Board.Move(from, to); err != nil {
		return p, err
	}
	return p, nil
}

// AdvanceTurn hands the move to the other side.
func (p Position) AdvanceTurn() Position {
	p.Turn = p.Turn.Other()
	return p
}

// Play accepts m for the side to move: the piece must be its own and the
// move legal. The returned position has the turn advanced.
func (p Position) Play(m Move) (Position, error) {
	piece, err := p.Board.At(m.From)
	if err != nil {
		return p, err
	}
	if piece.Empty() {
		return p, &SquareError{Err: ErrEmptySquare, Square: m.From}
	}
	if piece.Color() != p.Turn {
		return p, &SquareError{Err: ErrNotYourPiece, Square: m.From}
	}
	moves, err := LegalMoves(p, m.From)
	if err != nil {
		return p, err
	}
	for _, to := range moves {
		if to == m.To {
			next, err := p.ApplyMove(m.From, m.To)
			if err != nil {
				return p, err
			}
			return next.AdvanceTurn(), nil
		}
	}
	return p, &SquareError{Err: ErrIllegalMove, Square: m.To}
}
