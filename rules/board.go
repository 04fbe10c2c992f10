// Package rules is the move generation and legality core of nknight.
package rules

// Color of a piece or of the side to move.
type Color uint8

const (
	White Color = iota
	Black
)

// Other is the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

// PieceType tags the movement rule of a piece.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

// Piece packs a type and a color. The zero value is an empty square.
type Piece uint8

// NoPiece is the occupant of an empty square.
const NoPiece Piece = 0

// NewPiece piece.
func NewPiece(c Color, t PieceType) Piece {
	return Piece(t)<<1 | Piece(c)
}

func (p Piece) Type() PieceType {
	return PieceType(p >> 1)
}

func (p Piece) Color() Color {
	return Color(p & 1)
}

// Empty reports whether p is the empty occupant.
func (p Piece) Empty() bool {
	return p.Type() == NoPieceType
}

// Square is a flat index in [0,63]. Row 0 is White's back rank.
type Square int

// NoSquare is returned alongside errors.
const NoSquare Square = -1

func (s Square) Valid() bool {
	return s >= 0 && s < 64
}

// RowColumn splits s into its row and column.
func (s Square) RowColumn() (int, int) {
	return int(s) / 8, int(s) % 8
}

// SquareAt joins a row and column into a square.
func SquareAt(row, column int) (Square, error) {
	if !onBoard(row, column) {
		return NoSquare, ErrOutOfBoard
	}
	return Square(row*8 + column), nil
}

func onBoard(row, column int) bool {
	return row >= 0 && row < 8 && column >= 0 && column < 8
}

// Board holds the 64 squares. It is copied by value.
type Board [64]Piece

// NewBoard returns the standard starting arrangement.
func NewBoard() Board {
	return initialBoard
}

// At reads the occupant of sq.
func (board Board) At(sq Square) (Piece, error) {
	if !sq.Valid() {
		return NoPiece, &SquareError{Err: ErrOutOfBoard, Square: sq}
	}
	return board[sq], nil
}

// Set replaces the occupant of sq.
func (board *Board) Set(sq Square, p Piece) error {
	if !sq.Valid() {
		return &SquareError{Err: ErrOutOfBoard, Square: sq}
	}
	board[sq] = p
	return nil
}

// Move relocates the occupant of from onto to, overwriting whatever was
// there, and leaves from empty.
func (board *Board) Move(from, to Square) error {
	if !from.Valid() {
		return &SquareError{Err: ErrOutOfBoard, Square: from}
	}
	if !to.Valid() {
		return &SquareError{Err: ErrOutOfBoard, Square: to}
	}
	if board[from].Empty() {
		return &SquareError{Err: ErrEmptySquare, Square: from}
	}
	board[from], board[to] = NoPiece, board[from]
	return nil
}

// Count returns how many pieces of color c are on the board.
func (board Board) Count(c Color) int {
	n := 0
	for _, p := range board {
		if !p.Empty() && p.Color() == c {
			n++
		}
	}
	return n
}

// King finds the square of c's king.
func (board Board) King(c Color) (Square, error) {
	king := NewPiece(c, King)
	for sq, p := range board {
		if p == king {
			return Square(sq), nil
		}
	}
	return NoSquare, ErrNoKingFound
}
