package robot

import (
	"errors"
	"fmt"

	"warehousebots/internal/domain/grid"
	"warehousebots/internal/domain/pathfind"
)

var ErrInvalidAgentIndex = errors.New("agent index must be 0 or 1")

// RandomSource is satisfied by *math/rand/v2.Rand.
type RandomSource interface {
	IntN(n int) int
}

type Policy interface {
	Name() string
	// DecideAction returns one move for the robot at positions[ownIndex].
	DecideAction(ownIndex int, positions [2]grid.Position, target grid.Position) (grid.Move, error)
	// Reset clears all per-mission state. Called once at the start of every mission.
	Reset()
	LastDecision() Decision
}

type Source string

const (
	SourceCached   Source = "cached"
	SourcePlanned  Source = "planned"
	SourceFallback Source = "fallback"
	SourceFixed    Source = "fixed"
)

type Decision struct {
	Move   grid.Move     `json:"move"`
	Goal   grid.Position `json:"goal"`
	Source Source        `json:"source"`
}

// navigator is the cache-or-plan step shared by the planning policies.
type navigator struct {
	planner pathfind.Planner
	cache   PathCache
	rng     RandomSource
	last    Decision
}

func newNavigator(g grid.Grid, rng RandomSource) navigator {
	return navigator{planner: pathfind.NewPlanner(g), rng: rng}
}

func (n *navigator) resolve(ownIndex int, positions [2]grid.Position, target grid.Position) (own, teammate grid.Position, err error) {
	if ownIndex != 0 && ownIndex != 1 {
		return grid.Position{}, grid.Position{}, fmt.Errorf("%w: got %d", ErrInvalidAgentIndex, ownIndex)
	}
	if err := n.planner.Grid().Validate(positions[0], positions[1], target); err != nil {
		return grid.Position{}, grid.Position{}, err
	}
	return positions[ownIndex], positions[1-ownIndex], nil
}

func (n *navigator) step(own, goal grid.Position, blocked *grid.Position) (grid.Move, error) {
	if next, ok := n.cache.Next(goal); ok {
		return n.convert(own, next, goal, SourceCached), nil
	}

	path, ok, err := n.planner.FindPath(own, goal, blocked)
	if err != nil {
		return 0, err
	}
	if !ok || !n.cache.Store(goal, path) {
		return n.fallback(goal), nil
	}
	next, _ := n.cache.Next(goal)
	return n.convert(own, next, goal, SourcePlanned), nil
}

func (n *navigator) convert(from, to, goal grid.Position, source Source) grid.Move {
	m, ok := grid.MoveBetween(from, to)
	if !ok {
		return n.fallback(goal)
	}
	n.last = Decision{Move: m, Goal: goal, Source: source}
	return m
}

func (n *navigator) fallback(goal grid.Position) grid.Move {
	m := grid.AllMoves[n.rng.IntN(len(grid.AllMoves))]
	n.last = Decision{Move: m, Goal: goal, Source: SourceFallback}
	return m
}

func (n *navigator) reset() {
	n.cache.Reset()
	n.last = Decision{}
}
