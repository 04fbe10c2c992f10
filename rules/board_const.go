package rules

var (
	wp = NewPiece(White, Pawn)
	wr = NewPiece(White, Rook)
	wn = NewPiece(White, Knight)
	wb = NewPiece(White, Bishop)
	wq = NewPiece(White, Queen)
	wk = NewPiece(White, King)
	bp = NewPiece(Black, Pawn)
	br = NewPiece(Black, Rook)
	bn = NewPiece(Black, Knight)
	bb = NewPiece(Black, Bishop)
	bq = NewPiece(Black, Queen)
	bk = NewPiece(Black, King)
)

var initialBoard = Board{
	wr, wn, wb, wq, wk, wb, wn, wr,
	wp, wp, wp, wp, wp, wp, wp, wp,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	bp, bp, bp, bp, bp, bp, bp, bp,
	br, bn, bb, bq, bk, bb, bn, br,
}

// pawnStartRow is the row a pawn may double-step from.
var pawnStartRow = [2]int{White: 1, Black: 6}

// pawnDirection is the row delta of a forward pawn step.
var pawnDirection = [2]int{White: 1, Black: -1}

var (
	kingOffsets   = [][2]int{{1, 1}, {1, 0}, {1, -1}, {0, 1}, {0, -1}, {-1, 1}, {-1, 0}, {-1, -1}}
	knightOffsets = [][2]int{{2, 1}, {2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}, {-2, 1}, {-2, -1}}
	rookLines     = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopLines   = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenLines    = append(append([][2]int{}, rookLines...), bishopLines...)
)

var pieceGlyphs = map[Piece]rune{
	wb: '♗',
	wk: '♔',
	wn: '♘',
	wp: '♙',
	wq: '♕',
	wr: '♖',
	bb: '♝',
	bk: '♚',
	bn: '♞',
	bp: '♟',
	bq: '♛',
	br: '♜',
}

var colorNames = map[Color]string{
	White: "white",
	Black: "black",
}

var pieceTypeNames = map[PieceType]string{
	NoPieceType: "none",
	Pawn:        "pawn",
	Rook:        "rook",
	Knight:      "knight",
	Bishop:      "bishop",
	Queen:       "queen",
	King:        "king",
}
