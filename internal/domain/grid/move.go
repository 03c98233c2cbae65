package grid

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownMove = errors.New("unknown move")

type Move int

const (
	Left Move = iota
	Down
	Right
	Up
)

var AllMoves = [...]Move{Left, Down, Right, Up}

func (m Move) Delta() (dRow, dCol int) {
	switch m {
	case Left:
		return 0, -1
	case Down:
		return 1, 0
	case Right:
		return 0, 1
	case Up:
		return -1, 0
	default:
		return 0, 0
	}
}

func (m Move) Apply(p Position) Position {
	dr, dc := m.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

func (m Move) String() string {
	switch m {
	case Left:
		return "left"
	case Down:
		return "down"
	case Right:
		return "right"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("move(%d)", int(m))
	}
}

func (m Move) Valid() bool {
	return m >= Left && m <= Up
}

func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left, nil
	case "down":
		return Down, nil
	case "right":
		return Right, nil
	case "up":
		return Up, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMove, s)
	}
}

func (m Move) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMove, int(m))
	}
	return []byte(m.String()), nil
}

func (m *Move) UnmarshalText(b []byte) error {
	parsed, err := ParseMove(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MoveBetween maps a unit 4-connected delta to its move. Zero or non-adjacent
// deltas report false.
func MoveBetween(from, to Position) (Move, bool) {
	switch dr, dc := to.Row-from.Row, to.Col-from.Col; {
	case dr == 0 && dc == -1:
		return Left, true
	case dr == 1 && dc == 0:
		return Down, true
	case dr == 0 && dc == 1:
		return Right, true
	case dr == -1 && dc == 0:
		return Up, true
	default:
		return 0, false
	}
}
