package robot

import (
	"warehousebots/internal/domain/grid"
	"warehousebots/internal/domain/pathfind"
)

// PathCache holds the remaining waypoints of the last planned path and the
// goal that produced it. A non-empty path always belongs to lastGoal.
type PathCache struct {
	path     []grid.Position
	lastGoal grid.Position
	hasGoal  bool
}

func (c *PathCache) Reset() {
	c.path = nil
	c.lastGoal = grid.Position{}
	c.hasGoal = false
}

// Next pops the next waypoint when the cache was planned for goal.
func (c *PathCache) Next(goal grid.Position) (grid.Position, bool) {
	if !c.hasGoal || c.lastGoal != goal || len(c.path) == 0 {
		return grid.Position{}, false
	}
	next := c.path[0]
	c.path = c.path[1:]
	return next, true
}

// Store keeps path minus its starting cell. Paths with fewer than two cells
// are ignored so the cache only ever reflects a real plan.
func (c *PathCache) Store(goal grid.Position, path pathfind.Path) bool {
	if len(path) < 2 {
		return false
	}
	rest := make([]grid.Position, len(path)-1)
	copy(rest, path[1:])
	c.path = rest
	c.lastGoal = goal
	c.hasGoal = true
	return true
}

func (c *PathCache) Remaining() []grid.Position {
	out := make([]grid.Position, len(c.path))
	copy(out, c.path)
	return out
}

func (c *PathCache) LastGoal() (grid.Position, bool) {
	return c.lastGoal, c.hasGoal
}
