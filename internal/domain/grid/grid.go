package grid

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	ErrOutOfGrid         = errors.New("position out of grid")
)

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func Manhattan(a, b Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Grid is a bounded rows x cols board with no static content.
type Grid struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

func New(rows, cols int) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return Grid{Rows: rows, Cols: cols}, nil
}

// Cells is only meaningful for grids that passed FitsWithin.
func (g Grid) Cells() int {
	return g.Rows * g.Cols
}

// FitsWithin reports whether the grid has at most max cells. Dimensions are
// compared by division so huge sides cannot wrap the product.
func (g Grid) FitsWithin(max int) bool {
	if g.Rows <= 0 || g.Cols <= 0 {
		return true
	}
	return g.Rows <= max/g.Cols
}

func (g Grid) Contains(p Position) bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row < g.Rows && p.Col < g.Cols
}

type OutOfGridError struct {
	Pos  Position
	Grid Grid
}

func (e *OutOfGridError) Error() string {
	return fmt.Sprintf("position %s outside %dx%d grid", e.Pos, e.Grid.Rows, e.Grid.Cols)
}

func (e *OutOfGridError) Unwrap() error {
	return ErrOutOfGrid
}

func (g Grid) Validate(ps ...Position) error {
	for _, p := range ps {
		if !g.Contains(p) {
			return &OutOfGridError{Pos: p, Grid: g}
		}
	}
	return nil
}

func (g Grid) Index(p Position) int {
	return p.Row*g.Cols + p.Col
}

var neighborOrder = [...]Move{Up, Down, Left, Right}

// Neighbors lists the in-bounds 4-connected cells of p in up, down, left, right order.
func (g Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, len(neighborOrder))
	for _, m := range neighborOrder {
		n := m.Apply(p)
		if g.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// Clamp applies m to p, leaving p unchanged when the move would leave the grid.
func (g Grid) Clamp(p Position, m Move) Position {
	n := m.Apply(p)
	if !g.Contains(n) {
		return p
	}
	return n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
