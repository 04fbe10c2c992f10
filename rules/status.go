package rules

import "fmt"

// GameStatus is derived from a position on demand and never stored.
type GameStatus int

const (
	InProgress GameStatus = iota
	Check
	Checkmate
	Stalemate
)

var statusNames = []string{"in progress", "check", "checkmate", "stalemate"}

func (s GameStatus) String() string {
	if int(s) < len(statusNames) && s >= 0 {
		return statusNames[s]
	}
	return fmt.Sprintf("status(%d)", int(s))
}

func (s GameStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Over reports whether the side to move cannot play.
func (s GameStatus) Over() bool {
	return s == Checkmate || s == Stalemate
}

// Status computes the state of p for the side to move.
func Status(p Position) (GameStatus, error) {
	check, err := InCheck(p)
	if err != nil {
		return InProgress, err
	}
	none, err := NoLegalMoves(p)
	if err != nil {
		return InProgress, err
	}
	switch {
	case check && none:
		return Checkmate, nil
	case none:
		return Stalemate, nil
	case check:
		return Check, nil
	}
	return InProgress, nil
}

func (s *GameStatus) UnmarshalText(text []byte) error {
	for i, name := range statusNames {
		if name == string(text) {
			*s = GameStatus(i)
			return nil
		}
	}
	return fmt.Errorf("invalid status %q", text)
}
