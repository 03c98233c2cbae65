package pathfind

import (
	"errors"
	"testing"

	"warehousebots/internal/domain/grid"
)

func TestFindPath_EndToEndScenario(t *testing.T) {
	pl := NewPlanner(grid.Grid{Rows: 5, Cols: 5})
	blocked := grid.Position{Row: 4, Col: 4}
	path, ok, err := pl.FindPath(grid.Position{Row: 0, Col: 0}, grid.Position{Row: 0, Col: 4}, &blocked)
	if err != nil {
		t.Fatalf("FindPath error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a path")
	}
	if len(path) != 5 {
		t.Fatalf("expected 5 positions, got %d (%v)", len(path), path)
	}
	if path.Contains(blocked) {
		t.Fatalf("path %v contains blocked cell", path)
	}
	assertValidPath(t, pl.Grid(), path, grid.Position{Row: 0, Col: 0}, grid.Position{Row: 0, Col: 4}, &blocked)
}

func TestFindPath_StartEqualsGoalIsNoPath(t *testing.T) {
	pl := NewPlanner(grid.Grid{Rows: 4, Cols: 4})
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			p := grid.Position{Row: r, Col: c}
			path, ok, err := pl.FindPath(p, p, nil)
			if err != nil || ok || path != nil {
				t.Fatalf("FindPath(%v,%v): path=%v ok=%v err=%v", p, p, path, ok, err)
			}
			other := grid.Position{Row: (r + 1) % 4, Col: c}
			if _, ok, _ := pl.FindPath(p, p, &other); ok {
				t.Fatalf("FindPath(%v,%v) with blocked cell must be NoPath", p, p)
			}
		}
	}
}

func TestFindPath_RejectsOutOfGrid(t *testing.T) {
	pl := NewPlanner(grid.Grid{Rows: 3, Cols: 3})
	if _, _, err := pl.FindPath(grid.Position{Row: -1, Col: 0}, grid.Position{Row: 1, Col: 1}, nil); !errors.Is(err, grid.ErrOutOfGrid) {
		t.Fatalf("expected ErrOutOfGrid for start, got %v", err)
	}
	if _, _, err := pl.FindPath(grid.Position{Row: 0, Col: 0}, grid.Position{Row: 3, Col: 1}, nil); !errors.Is(err, grid.ErrOutOfGrid) {
		t.Fatalf("expected ErrOutOfGrid for goal, got %v", err)
	}
	blocked := grid.Position{Row: 0, Col: 9}
	if _, _, err := pl.FindPath(grid.Position{Row: 0, Col: 0}, grid.Position{Row: 1, Col: 1}, &blocked); !errors.Is(err, grid.ErrOutOfGrid) {
		t.Fatalf("expected ErrOutOfGrid for blocked, got %v", err)
	}
}

func TestFindPath_NoDetourIsNoPath(t *testing.T) {
	pl := NewPlanner(grid.Grid{Rows: 1, Cols: 3})
	blocked := grid.Position{Row: 0, Col: 1}
	path, ok, err := pl.FindPath(grid.Position{Row: 0, Col: 0}, grid.Position{Row: 0, Col: 2}, &blocked)
	if err != nil {
		t.Fatalf("FindPath error: %v", err)
	}
	if ok || path != nil {
		t.Fatalf("expected NoPath, got %v", path)
	}
}

func TestFindPath_BlockedGoalIsUnreachable(t *testing.T) {
	pl := NewPlanner(grid.Grid{Rows: 5, Cols: 5})
	goal := grid.Position{Row: 2, Col: 2}
	if _, ok, err := pl.FindPath(grid.Position{Row: 0, Col: 0}, goal, &goal); err != nil || ok {
		t.Fatalf("expected NoPath when goal is blocked, ok=%v err=%v", ok, err)
	}
}

func TestFindPath_BlockedStartDoesNotPreventLeaving(t *testing.T) {
	pl := NewPlanner(grid.Grid{Rows: 3, Cols: 3})
	start := grid.Position{Row: 1, Col: 1}
	path, ok, err := pl.FindPath(start, grid.Position{Row: 2, Col: 2}, &start)
	if err != nil || !ok {
		t.Fatalf("expected a path, ok=%v err=%v", ok, err)
	}
	if path.Steps() != 2 {
		t.Fatalf("expected 2 steps, got %d (%v)", path.Steps(), path)
	}
}

func TestFindPath_DetourAroundBlockedCell(t *testing.T) {
	pl := NewPlanner(grid.Grid{Rows: 2, Cols: 3})
	start := grid.Position{Row: 0, Col: 0}
	goal := grid.Position{Row: 0, Col: 2}
	blocked := grid.Position{Row: 0, Col: 1}
	path, ok, err := pl.FindPath(start, goal, &blocked)
	if err != nil || !ok {
		t.Fatalf("expected a detour, ok=%v err=%v", ok, err)
	}
	if path.Steps() != 4 {
		t.Fatalf("expected a 4-step detour, got %d (%v)", path.Steps(), path)
	}
	assertValidPath(t, pl.Grid(), path, start, goal, &blocked)
}

func TestFindPath_OptimalAgainstBreadthFirstReference(t *testing.T) {
	grids := []grid.Grid{{Rows: 1, Cols: 4}, {Rows: 3, Cols: 3}, {Rows: 4, Cols: 5}, {Rows: 2, Cols: 2}}
	for _, g := range grids {
		pl := NewPlanner(g)
		cells := allCells(g)
		for _, start := range cells {
			for _, goal := range cells {
				if start == goal {
					continue
				}
				blockedOptions := []*grid.Position{nil}
				for i := range cells {
					b := cells[i]
					if b == start || b == goal {
						continue
					}
					blockedOptions = append(blockedOptions, &b)
				}
				for _, blocked := range blockedOptions {
					want := bfsDistance(g, start, goal, blocked)
					path, ok, err := pl.FindPath(start, goal, blocked)
					if err != nil {
						t.Fatalf("FindPath error: %v", err)
					}
					if want < 0 {
						if ok {
							t.Fatalf("grid %v %v->%v blocked=%v: expected NoPath, got %v", g, start, goal, blocked, path)
						}
						continue
					}
					if !ok {
						t.Fatalf("grid %v %v->%v blocked=%v: expected path of %d steps", g, start, goal, blocked, want)
					}
					if path.Steps() != want {
						t.Fatalf("grid %v %v->%v blocked=%v: steps=%d want=%d", g, start, goal, blocked, path.Steps(), want)
					}
					assertValidPath(t, g, path, start, goal, blocked)
				}
			}
		}
	}
}

func TestFindPath_IsDeterministic(t *testing.T) {
	pl := NewPlanner(grid.Grid{Rows: 6, Cols: 6})
	blocked := grid.Position{Row: 2, Col: 3}
	first, _, _ := pl.FindPath(grid.Position{Row: 0, Col: 0}, grid.Position{Row: 5, Col: 5}, &blocked)
	for i := 0; i < 5; i++ {
		again, _, _ := pl.FindPath(grid.Position{Row: 0, Col: 0}, grid.Position{Row: 5, Col: 5}, &blocked)
		if len(again) != len(first) {
			t.Fatalf("run %d: length changed", i)
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("run %d: path changed at %d", i, j)
			}
		}
	}
}

func assertValidPath(t *testing.T, g grid.Grid, path Path, start, goal grid.Position, blocked *grid.Position) {
	t.Helper()
	if len(path) < 2 {
		t.Fatalf("path too short: %v", path)
	}
	if path[0] != start {
		t.Fatalf("path starts at %v, want %v", path[0], start)
	}
	if path[len(path)-1] != goal {
		t.Fatalf("path ends at %v, want %v", path[len(path)-1], goal)
	}
	seen := map[grid.Position]bool{}
	for i, p := range path {
		if !g.Contains(p) {
			t.Fatalf("path cell %v outside grid", p)
		}
		if seen[p] {
			t.Fatalf("path revisits %v: %v", p, path)
		}
		seen[p] = true
		if blocked != nil && p == *blocked && p != start {
			t.Fatalf("path enters blocked cell %v: %v", p, path)
		}
		if i > 0 && grid.Manhattan(path[i-1], p) != 1 {
			t.Fatalf("path cells %v and %v are not adjacent", path[i-1], p)
		}
	}
}

func allCells(g grid.Grid) []grid.Position {
	out := make([]grid.Position, 0, g.Cells())
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			out = append(out, grid.Position{Row: r, Col: c})
		}
	}
	return out
}

func bfsDistance(g grid.Grid, start, goal grid.Position, blocked *grid.Position) int {
	dist := map[grid.Position]int{start: 0}
	queue := []grid.Position{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return dist[cur]
		}
		for _, n := range g.Neighbors(cur) {
			if blocked != nil && n == *blocked {
				continue
			}
			if _, ok := dist[n]; ok {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}
	return -1
}
