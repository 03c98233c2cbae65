package runtime

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"warehousebots/internal/app/ports"
	"warehousebots/internal/domain/grid"
	"warehousebots/internal/domain/warehouse"
)

var ErrPartialLayout = errors.New("robots and target must be pinned together")

type Config struct {
	Rows     int
	Cols     int
	MaxCells int
}

type Provider struct {
	cfg Config
}

func DefaultConfig() Config {
	return Config{
		Rows:     10,
		Cols:     10,
		MaxCells: 250000,
	}
}

func NewProvider(cfg Config) Provider {
	def := DefaultConfig()
	if cfg.Rows <= 0 {
		cfg.Rows = def.Rows
	}
	if cfg.Cols <= 0 {
		cfg.Cols = def.Cols
	}
	if cfg.MaxCells <= 0 {
		cfg.MaxCells = def.MaxCells
	}
	return Provider{cfg: cfg}
}

// NewWorld builds a grid of the requested size (provider defaults for zero
// dimensions) and either pins the requested layout or draws a fresh one.
func (p Provider) NewWorld(ctx context.Context, req ports.WorldRequest) (*warehouse.World, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, cols := req.Rows, req.Cols
	if rows == 0 {
		rows = p.cfg.Rows
	}
	if cols == 0 {
		cols = p.cfg.Cols
	}
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, err
	}
	if !g.FitsWithin(p.cfg.MaxCells) {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", grid.ErrInvalidDimensions, rows, cols, p.cfg.MaxCells)
	}

	w := warehouse.NewWorld(g)
	switch {
	case req.Robots != nil && req.Target != nil:
		if err := w.Place(*req.Robots, *req.Target); err != nil {
			return nil, err
		}
	case req.Robots != nil || req.Target != nil:
		return nil, ErrPartialLayout
	default:
		rng := req.Rand
		if rng == nil {
			rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
		if err := w.Reset(rng); err != nil {
			return nil, err
		}
	}
	return w, nil
}

var _ ports.WorldProvider = Provider{}
