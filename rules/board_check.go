package rules

// IsLegal simulates from->to on a copy of p and reports whether the side to
// move is left with its king unattacked. It does not check that the move
// follows the piece's movement rule; pair it with PossibleMoves for that.
func IsLegal(p Position, from, to Square) (bool, error) {
	if !to.Valid() {
		return false, &SquareError{Err: ErrOutOfBoard, Square: to}
	}
	simulation := p.Board
	if err := simulation.Move(from, to); err != nil {
		return false, err
	}
	king, err := simulation.King(p.Turn)
	if err != nil {
		return false, err
	}
	return !simulation.attacked(king, p.Turn.Other()), nil
}

// attacked reports whether any piece of color by reaches target.
func (board Board) attacked(target Square, by Color) bool {
	for sq, piece := range board {
		if piece.Empty() || piece.Color() != by {
			continue
		}
		for _, end := range board.movesForPiece(piece.Type(), Square(sq), by) {
			if end == target {
				return true
			}
		}
	}
	return false
}

// InCheck reports whether the king of the side to move is attacked now.
func InCheck(p Position) (bool, error) {
	king, err := p.Board.King(p.Turn)
	if err != nil {
		return false, err
	}
	return p.Board.attacked(king, p.Turn.Other()), nil
}

// LegalMoves returns the destinations of the piece on sq that do not leave
// the side to move in check.
func LegalMoves(p Position, sq Square) ([]Square, error) {
	candidates, err := PossibleMoves(p.Board, sq, p.Turn)
	if err != nil {
		return nil, err
	}
	moves := make([]Square, 0, len(candidates))
	for _, to := range candidates {
		legal, err := IsLegal(p, sq, to)
		if err != nil {
			return nil, err
		}
		if legal {
			moves = append(moves, to)
		}
	}
	return moves, nil
}

// AllLegalMoves collects the legal moves of every piece of the side to move.
func AllLegalMoves(p Position) ([]Move, error) {
	var moves []Move
	for sq, piece := range p.Board {
		if piece.Empty() || piece.Color() != p.Turn {
			continue
		}
		ends, err := LegalMoves(p, Square(sq))
		if err != nil {
			return nil, err
		}
		for _, to := range ends {
			moves = append(moves, Move{From: Square(sq), To: to})
		}
	}
	return moves, nil
}

// NoLegalMoves reports whether the side to move has nothing to play. It
// does not tell checkmate from stalemate; see IsCheckmate and IsStalemate.
func NoLegalMoves(p Position) (bool, error) {
	for sq, piece := range p.Board {
		if piece.Empty() || piece.Color() != p.Turn {
			continue
		}
		ends, err := LegalMoves(p, Square(sq))
		if err != nil {
			return false, err
		}
		if len(ends) > 0 {
			return false, nil
		}
	}
	if _, err := p.Board.King(p.Turn); err != nil {
		return false, err
	}
	return true, nil
}

// IsCheckmate reports whether the side to move is in check with no legal
// move.
func IsCheckmate(p Position) (bool, error) {
	status, err := Status(p)
	return status == Checkmate, err
}

// IsStalemate reports whether the side to move is not in check and has no
// legal move.
func IsStalemate(p Position) (bool, error) {
	status, err := Status(p)
	return status == Stalemate, err
}
