package rules

import (
	"database/sql/driver"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	for color, name := range colorNames {
		if strings.EqualFold(name, string(text)) {
			*c = color
			return nil
		}
	}
	return fmt.Errorf("invalid color %q", text)
}

func (t PieceType) String() string {
	if name, ok := pieceTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("piece(%d)", uint8(t))
}

func (p Piece) String() string {
	if p.Empty() {
		return "·"
	}
	return string(pieceGlyphs[p])
}

// String gives the square in algebraic notation, e.g. "a3".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("square(%d)", int(s))
	}
	row, column := s.RowColumn()
	return fmt.Sprintf("%c%d", 'a'+column, row+1)
}

// ParseSquare reads a square in algebraic notation. Surrounding space and
// case are ignored.
func ParseSquare(text string) (Square, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q: %w", text, ErrOutOfBoard)
	}
	column := int(text[0]) - 'a'
	row := int(text[1]) - '1'
	sq, err := SquareAt(row, column)
	if err != nil {
		return NoSquare, fmt.Errorf("invalid square %q: %w", text, err)
	}
	return sq, nil
}

func (s Square) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, &SquareError{Err: ErrOutOfBoard, Square: s}
	}
	return []byte(s.String()), nil
}

func (s *Square) UnmarshalText(text []byte) error {
	sq, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*s = sq
	return nil
}

// Move is a relocation from one square to another.
type Move struct {
	From Square
	To   Square
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove reads "e2e4" or "e2-e4".
func ParseMove(text string) (Move, error) {
	text = strings.ReplaceAll(strings.TrimSpace(text), "-", "")
	if len(text) != 4 {
		return Move{}, fmt.Errorf("invalid move format %d %s", len(text), text)
	}
	from, err := ParseSquare(text[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(text[2:])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}

func (m *Move) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	move, err := ParseMove(string(token))
	if err != nil {
		return err
	}
	*m = move
	return nil
}

func (m *Move) UnmarshalJSON(bytes []byte) error {
	var text string
	if err := json.Unmarshal(bytes, &text); err != nil {
		return err
	}
	move, err := ParseMove(text)
	if err != nil {
		return err
	}
	*m = move
	return nil
}

func (m Move) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// String draws the board with rank 8 on top.
func (board Board) String() string {
	var b strings.Builder
	for row := 7; row >= 0; row-- {
		fmt.Fprintf(&b, "%d", row+1)
		for column := 0; column < 8; column++ {
			fmt.Fprintf(&b, " %s", board[row*8+column])
		}
		b.WriteByte('\n')
	}
	b.WriteString("  a b c d e f g h\n")
	return b.String()
}

func (board Board) Value() (driver.Value, error) {
	raw := make([]byte, len(board))
	for i, p := range board {
		raw[i] = byte(p)
	}
	return hex.EncodeToString(raw), nil
}

func (board *Board) Scan(cell interface{}) error {
	var src []byte
	switch cell := cell.(type) {
	case string:
		decoded, err := hex.DecodeString(cell)
		if err != nil {
			return err
		}
		src = decoded
	case []byte:
		decoded, err := hex.DecodeString(string(cell))
		if err != nil {
			return err
		}
		src = decoded
	default:
		return fmt.Errorf("invalid format scaning %#v", cell)
	}
	if len(src) != len(board) {
		return fmt.Errorf("board is not length %d: %d", len(board), len(src))
	}
	for i, b := range src {
		board[i] = Piece(b)
	}
	return nil
}
