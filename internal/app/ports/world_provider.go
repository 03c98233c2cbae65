package ports

import (
	"context"

	"warehousebots/internal/domain/grid"
	"warehousebots/internal/domain/warehouse"
)

// WorldRequest asks for a ready-to-run world. Zero Rows/Cols fall back to the
// provider defaults; Robots and Target pin a fixed layout instead of a random
// draw.
type WorldRequest struct {
	Rows   int
	Cols   int
	Rand   warehouse.RandomSource
	Robots *[2]grid.Position
	Target *grid.Position
}

type WorldProvider interface {
	NewWorld(ctx context.Context, req WorldRequest) (*warehouse.World, error)
}
