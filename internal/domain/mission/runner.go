package mission

import (
	"context"
	"errors"
	"fmt"

	"warehousebots/internal/domain/grid"
	"warehousebots/internal/domain/robot"
	"warehousebots/internal/domain/warehouse"
)

const DefaultMaxSteps = 300

// MaxStepsLimit is the largest per-mission step budget a caller may request.
const MaxStepsLimit = 100000

var ErrWorldNotReady = errors.New("world not placed")

type TickRecord struct {
	Step   int           `json:"step"`
	Robot  int           `json:"robot"`
	Agent  string        `json:"agent"`
	From   grid.Position `json:"from"`
	To     grid.Position `json:"to"`
	Move   grid.Move     `json:"move"`
	Source robot.Source  `json:"source"`
	Goal   grid.Position `json:"goal"`
	Found  bool          `json:"found"`
}

type Result struct {
	Team       TeamKind           `json:"team"`
	Steps      int                `json:"steps"`
	Found      bool               `json:"found"`
	TimedOut   bool               `json:"timed_out"`
	Finder     int                `json:"finder"`
	FinderName string             `json:"finder_name,omitempty"`
	Start      warehouse.Snapshot `json:"start"`
	Final      warehouse.Snapshot `json:"final"`
	Ticks      []TickRecord       `json:"ticks,omitempty"`
}

// Runner drives one mission: each tick robot 0 acts, then robot 1, each
// seeing the world as left by the previous move.
type Runner struct {
	MaxSteps int
}

func (r Runner) Run(ctx context.Context, w *warehouse.World, team Team) (Result, error) {
	if w == nil || !w.Placed() {
		return Result{}, ErrWorldNotReady
	}
	maxSteps := r.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	for _, member := range team.Members {
		member.Reset()
	}

	res := Result{Team: team.Kind, Finder: -1, Start: w.Snapshot()}
	for tick := 1; tick <= maxSteps; tick++ {
		if err := ctx.Err(); err != nil {
			res.Final = w.Snapshot()
			return res, err
		}
		res.Steps = tick
		for i, member := range team.Members {
			snap := w.Snapshot()
			move, err := member.DecideAction(i, snap.Robots, snap.Target)
			if err != nil {
				res.Final = w.Snapshot()
				return res, fmt.Errorf("tick %d robot %d: %w", tick, i, err)
			}
			found, err := w.Apply(i, move)
			if err != nil {
				res.Final = w.Snapshot()
				return res, fmt.Errorf("tick %d robot %d: %w", tick, i, err)
			}
			d := member.LastDecision()
			res.Ticks = append(res.Ticks, TickRecord{
				Step:   tick,
				Robot:  i,
				Agent:  member.Name(),
				From:   snap.Robots[i],
				To:     w.Snapshot().Robots[i],
				Move:   move,
				Source: d.Source,
				Goal:   d.Goal,
				Found:  found,
			})
			if found {
				res.Found = true
				res.Finder = i
				res.FinderName = member.Name()
				res.Final = w.Snapshot()
				return res, nil
			}
		}
	}
	res.TimedOut = true
	res.Final = w.Snapshot()
	return res, nil
}
