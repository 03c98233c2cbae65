package pathplan

import (
	"context"
	"errors"
	"fmt"

	"warehousebots/internal/domain/grid"
	"warehousebots/internal/domain/pathfind"
)

var ErrInvalidRequest = errors.New("invalid path request")

// DefaultMaxCells caps the grids accepted from callers when MaxCells is unset.
const DefaultMaxCells = 250000

type UseCase struct {
	DefaultRows int
	DefaultCols int
	MaxCells    int
}

type Request struct {
	Rows    int
	Cols    int
	Start   grid.Position
	Goal    grid.Position
	Blocked *grid.Position
}

type Response struct {
	Found bool            `json:"found"`
	Path  []grid.Position `json:"path"`
	Steps int             `json:"steps"`
}

func (u UseCase) Execute(_ context.Context, req Request) (Response, error) {
	rows, cols := req.Rows, req.Cols
	if rows == 0 {
		rows = u.DefaultRows
	}
	if cols == 0 {
		cols = u.DefaultCols
	}
	g, err := grid.New(rows, cols)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	maxCells := u.MaxCells
	if maxCells <= 0 {
		maxCells = DefaultMaxCells
	}
	if !g.FitsWithin(maxCells) {
		return Response{}, fmt.Errorf("%w: grid %dx%d too large", ErrInvalidRequest, rows, cols)
	}
	path, found, err := pathfind.NewPlanner(g).FindPath(req.Start, req.Goal, req.Blocked)
	if err != nil {
		if errors.Is(err, grid.ErrOutOfGrid) {
			return Response{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		return Response{}, err
	}
	if !found {
		return Response{Found: false, Path: []grid.Position{}}, nil
	}
	return Response{Found: true, Path: path, Steps: path.Steps()}, nil
}
