package mock

import (
	"context"

	"warehousebots/internal/app/ports"
	"warehousebots/internal/domain/grid"
	"warehousebots/internal/domain/warehouse"
)

// Provider always hands out the same layout, ignoring random draws. A layout
// pinned on the request still wins.
type Provider struct {
	Grid   grid.Grid
	Robots [2]grid.Position
	Target grid.Position
}

func (p Provider) NewWorld(_ context.Context, req ports.WorldRequest) (*warehouse.World, error) {
	g := p.Grid
	if req.Rows > 0 && req.Cols > 0 {
		g = grid.Grid{Rows: req.Rows, Cols: req.Cols}
	}
	robots, target := p.Robots, p.Target
	if req.Robots != nil && req.Target != nil {
		robots, target = *req.Robots, *req.Target
	}
	w := warehouse.NewWorld(g)
	if err := w.Place(robots, target); err != nil {
		return nil, err
	}
	return w, nil
}

var _ ports.WorldProvider = Provider{}
