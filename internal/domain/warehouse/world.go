package warehouse

import (
	"errors"
	"fmt"

	"warehousebots/internal/domain/grid"
)

var (
	ErrGridTooSmall   = errors.New("grid has no free cell for the target")
	ErrTargetOnRobot  = errors.New("target placed on a robot")
	ErrInvalidRobot   = errors.New("robot index must be 0 or 1")
	ErrInvalidMove    = errors.New("invalid move")
	ErrWorldNotPlaced = errors.New("world has not been placed")
)

type RandomSource interface {
	IntN(n int) int
}

type Snapshot struct {
	Robots [2]grid.Position `json:"robots"`
	Target grid.Position    `json:"target"`
}

// World is the two-robot environment: it owns positions and the target and
// is the only thing that applies moves.
type World struct {
	grid   grid.Grid
	robots [2]grid.Position
	target grid.Position
	placed bool
}

func NewWorld(g grid.Grid) *World {
	return &World{grid: g}
}

func (w *World) Grid() grid.Grid {
	return w.grid
}

// Reset puts robot 0 in the top-left corner, robot 1 in the bottom-right
// corner and draws the target uniformly from the remaining cells.
func (w *World) Reset(rng RandomSource) error {
	robots := [2]grid.Position{
		{Row: 0, Col: 0},
		{Row: w.grid.Rows - 1, Col: w.grid.Cols - 1},
	}
	free := make([]grid.Position, 0, w.grid.Cells())
	for r := 0; r < w.grid.Rows; r++ {
		for c := 0; c < w.grid.Cols; c++ {
			p := grid.Position{Row: r, Col: c}
			if p == robots[0] || p == robots[1] {
				continue
			}
			free = append(free, p)
		}
	}
	if len(free) == 0 {
		return fmt.Errorf("%w: %dx%d", ErrGridTooSmall, w.grid.Rows, w.grid.Cols)
	}
	w.robots = robots
	w.target = free[rng.IntN(len(free))]
	w.placed = true
	return nil
}

func (w *World) Place(robots [2]grid.Position, target grid.Position) error {
	if err := w.grid.Validate(robots[0], robots[1], target); err != nil {
		return err
	}
	if target == robots[0] || target == robots[1] {
		return fmt.Errorf("%w: %s", ErrTargetOnRobot, target)
	}
	w.robots = robots
	w.target = target
	w.placed = true
	return nil
}

func (w *World) Snapshot() Snapshot {
	return Snapshot{Robots: w.robots, Target: w.target}
}

// Apply moves one robot, clamping at the border, and reports whether it now
// stands on the target.
func (w *World) Apply(index int, m grid.Move) (bool, error) {
	if !w.placed {
		return false, ErrWorldNotPlaced
	}
	if index != 0 && index != 1 {
		return false, fmt.Errorf("%w: got %d", ErrInvalidRobot, index)
	}
	if !m.Valid() {
		return false, fmt.Errorf("%w: %d", ErrInvalidMove, int(m))
	}
	w.robots[index] = w.grid.Clamp(w.robots[index], m)
	return w.robots[index] == w.target, nil
}

func (w *World) Placed() bool {
	return w.placed
}
