package pathfind

import (
	"container/heap"
	"fmt"

	"warehousebots/internal/domain/grid"
)

// Path runs from start to goal inclusive; consecutive cells are 4-adjacent.
type Path []grid.Position

func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

func (p Path) Contains(pos grid.Position) bool {
	for _, c := range p {
		if c == pos {
			return true
		}
	}
	return false
}

func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

type Planner struct {
	grid grid.Grid
}

func NewPlanner(g grid.Grid) Planner {
	return Planner{grid: g}
}

func (pl Planner) Grid() grid.Grid {
	return pl.grid
}

// FindPath runs A* from start to goal on the 4-connected grid with unit edge
// cost. blocked, when set, is never entered for this call. It reports false
// when start equals goal or when the goal cannot be reached.
func (pl Planner) FindPath(start, goal grid.Position, blocked *grid.Position) (Path, bool, error) {
	if err := pl.grid.Validate(start, goal); err != nil {
		return nil, false, fmt.Errorf("find path: %w", err)
	}
	if blocked != nil {
		if err := pl.grid.Validate(*blocked); err != nil {
			return nil, false, fmt.Errorf("find path: blocked cell: %w", err)
		}
	}
	if start == goal {
		return nil, false, nil
	}
	if blocked != nil && *blocked == goal {
		return nil, false, nil
	}

	open := &searchQueue{}
	heap.Init(open)
	var seq uint64
	heap.Push(open, &searchNode{pos: start, g: 0, f: grid.Manhattan(start, goal), seq: seq})
	gScore := map[int]int{pl.grid.Index(start): 0}
	closed := make(map[int]struct{}, pl.grid.Cells())

	for open.Len() > 0 {
		current := heap.Pop(open).(*searchNode)
		currIdx := pl.grid.Index(current.pos)
		if _, seen := closed[currIdx]; seen {
			continue
		}
		closed[currIdx] = struct{}{}
		if current.pos == goal {
			return reconstruct(current), true, nil
		}

		for _, next := range pl.grid.Neighbors(current.pos) {
			if blocked != nil && next == *blocked {
				continue
			}
			idx := pl.grid.Index(next)
			if _, seen := closed[idx]; seen {
				continue
			}
			tentativeG := current.g + 1
			if prev, ok := gScore[idx]; ok && tentativeG >= prev {
				continue
			}
			gScore[idx] = tentativeG
			seq++
			heap.Push(open, &searchNode{
				pos:    next,
				g:      tentativeG,
				f:      tentativeG + grid.Manhattan(next, goal),
				seq:    seq,
				parent: current,
			})
		}
	}
	return nil, false, nil
}

func reconstruct(end *searchNode) Path {
	n := 0
	for node := end; node != nil; node = node.parent {
		n++
	}
	path := make(Path, n)
	for node := end; node != nil; node = node.parent {
		n--
		path[n] = node.pos
	}
	return path
}
