package rules

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match them with errors.Is.
var (
	// ErrEmptySquare is a query against a square with no piece on it.
	ErrEmptySquare = errors.New("no piece on square")

	// ErrOutOfBoard is a coordinate outside the 8x8 board.
	ErrOutOfBoard = errors.New("square is off the board")

	// ErrNoKingFound is a legality query on a position without the mover's king.
	ErrNoKingFound = errors.New("no king found")

	ErrIllegalMove  = errors.New("illegal move")
	ErrNotYourPiece = errors.New("not your piece")
)

// SquareError ties an error to the square it was raised for.
type SquareError struct {
	Err    error
	Square Square
}

func (e *SquareError) Error() string {
	if e.Square.Valid() {
		return fmt.Sprintf("%s: %v", e.Square, e.Err)
	}
	return fmt.Sprintf("square %d: %v", int(e.Square), e.Err)
}

func (e *SquareError) Unwrap() error {
	return e.Err
}
