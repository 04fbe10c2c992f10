package rules

import (
	"github.com/apex/log"
)

// PossibleMoves returns the pseudo-legal destinations of the piece on sq,
// moving for color c. Whether the mover's king is left attacked is not
// considered.
func PossibleMoves(board Board, sq Square, c Color) ([]Square, error) {
	piece, err := board.At(sq)
	if err != nil {
		return nil, err
	}
	if piece.Empty() {
		log.WithField("square", sq.String()).Debug("no piece on square")
		return nil, &SquareError{Err: ErrEmptySquare, Square: sq}
	}
	return board.movesForPiece(piece.Type(), sq, c), nil
}

func (board Board) movesForPiece(t PieceType, start Square, c Color) []Square {
	switch t {
	case Pawn:
		return board.movesForPawn(start, c)
	case Rook:
		return board.movesForLines(start, c, rookLines)
	case Knight:
		return board.movesForSteps(start, c, knightOffsets)
	case Bishop:
		return board.movesForLines(start, c, bishopLines)
	case Queen:
		return board.movesForLines(start, c, queenLines)
	case King:
		return board.movesForSteps(start, c, kingOffsets)
	}
	return nil
}

// ownPiece reports whether the occupant of sq belongs to c.
func (board Board) ownPiece(sq Square, c Color) bool {
	return !board[sq].Empty() && board[sq].Color() == c
}

func (board Board) enemyPiece(sq Square, c Color) bool {
	return !board[sq].Empty() && board[sq].Color() != c
}

// movesForSteps covers kings and knights: fixed offsets, one hop each.
func (board Board) movesForSteps(start Square, c Color, offsets [][2]int) []Square {
	row, column := start.RowColumn()
	moves := make([]Square, 0, len(offsets))
	for _, offset := range offsets {
		end, err := SquareAt(row+offset[0], column+offset[1])
		if err != nil || board.ownPiece(end, c) {
			continue
		}
		moves = append(moves, end)
	}
	return moves
}

// movesForLines covers rooks, bishops and queens. Each line is scanned until
// the edge or the first occupied square, which is kept only as a capture.
func (board Board) movesForLines(start Square, c Color, lines [][2]int) []Square {
	row, column := start.RowColumn()
	moves := make([]Square, 0, 14)
	for _, line := range lines {
		for step := 1; ; step++ {
			end, err := SquareAt(row+line[0]*step, column+line[1]*step)
			if err != nil || board.ownPiece(end, c) {
				break
			}
			moves = append(moves, end)
			if board.enemyPiece(end, c) {
				break
			}
		}
	}
	return moves
}

func (board Board) movesForPawn(start Square, c Color) []Square {
	row, column := start.RowColumn()
	forward := pawnDirection[c]
	moves := make([]Square, 0, 4)
	for _, side := range []int{-1, 1} {
		end, err := SquareAt(row+forward, column+side)
		if err == nil && board.enemyPiece(end, c) {
			moves = append(moves, end)
		}
	}
	step, err := SquareAt(row+forward, column)
	if err != nil || !board[step].Empty() {
		return moves
	}
	moves = append(moves, step)
	if row != pawnStartRow[c] {
		return moves
	}
	if double, err := SquareAt(row+2*forward, column); err == nil && board[double].Empty() {
		moves = append(moves, double)
	}
	return moves
}
