package mission

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"warehousebots/internal/app/ports"
	"warehousebots/internal/app/shared/seeding"
	"warehousebots/internal/domain/grid"
	domain "warehousebots/internal/domain/mission"
	"warehousebots/internal/domain/warehouse"

	"github.com/google/uuid"
)

var ErrInvalidRequest = errors.New("invalid mission request")

type UseCase struct {
	TxManager ports.TxManager
	Missions  ports.MissionRepository
	Events    ports.EventRepository
	World     ports.WorldProvider
	Metrics   ports.MissionMetrics
	MaxSteps  int
	Now       func() time.Time
	NewID     func() string
	Seed      func() uint64
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	kind, err := domain.ParseTeamKind(req.Team)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if req.Rows < 0 || req.Cols < 0 || req.MaxSteps < 0 || req.MaxSteps > domain.MaxStepsLimit {
		return Response{}, ErrInvalidRequest
	}
	if (req.Robots == nil) != (req.Target == nil) {
		return Response{}, fmt.Errorf("%w: robots and target must be given together", ErrInvalidRequest)
	}
	maxSteps := req.MaxSteps
	if maxSteps == 0 {
		maxSteps = u.MaxSteps
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	newID := u.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	seed := seeding.Resolve(req.Seed, u.Seed)
	worldRand, policyRand := seeding.Streams(seed)
	world, err := u.World.NewWorld(ctx, ports.WorldRequest{
		Rows:   req.Rows,
		Cols:   req.Cols,
		Rand:   worldRand,
		Robots: req.Robots,
		Target: req.Target,
	})
	if err != nil {
		return Response{}, asInvalidRequest(err)
	}
	team, err := domain.NewTeam(kind, world.Grid(), policyRand)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	result, err := domain.Runner{MaxSteps: maxSteps}.Run(ctx, world, team)
	if err != nil {
		if u.Metrics != nil {
			u.Metrics.RecordFailure()
		}
		return Response{}, err
	}

	g := world.Grid()
	rec := ports.MissionRecord{
		MissionID: strings.TrimSpace(newID()),
		Team:      kind,
		Rows:      g.Rows,
		Cols:      g.Cols,
		MaxSteps:  maxSteps,
		Seed:      seed,
		Result:    result,
		CreatedAt: nowFn(),
	}
	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := u.Missions.Save(txCtx, rec); err != nil {
			return err
		}
		return u.Events.Append(txCtx, rec.MissionID, result.Events(rec.MissionID, rec.CreatedAt))
	})
	if err != nil {
		if u.Metrics != nil {
			u.Metrics.RecordFailure()
		}
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordMission(result)
	}

	if !req.IncludeTicks {
		result.Ticks = nil
	}
	return Response{
		MissionID: rec.MissionID,
		Team:      kind,
		TeamName:  team.Name,
		Rows:      g.Rows,
		Cols:      g.Cols,
		MaxSteps:  maxSteps,
		Seed:      seed,
		Result:    result,
	}, nil
}

func asInvalidRequest(err error) error {
	switch {
	case errors.Is(err, grid.ErrInvalidDimensions),
		errors.Is(err, grid.ErrOutOfGrid),
		errors.Is(err, warehouse.ErrTargetOnRobot),
		errors.Is(err, warehouse.ErrGridTooSmall):
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	default:
		return err
	}
}
