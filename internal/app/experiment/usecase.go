package experiment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"warehousebots/internal/app/ports"
	"warehousebots/internal/app/shared/seeding"
	"warehousebots/internal/domain/grid"
	"warehousebots/internal/domain/mission"
	"warehousebots/internal/domain/warehouse"

	"github.com/google/uuid"
)

var ErrInvalidRequest = errors.New("invalid experiment request")

const (
	DefaultMissions = 100
	MaxMissions     = 5000
)

type RunUseCase struct {
	Experiments ports.ExperimentRepository
	World       ports.WorldProvider
	Metrics     ports.MissionMetrics
	MaxSteps    int
	Now         func() time.Time
	NewID       func() string
	Seed        func() uint64
}

// Execute runs the same number of missions for every team. Each team starts
// from a fresh copy of the seeded streams, so all teams see the same sequence
// of target placements.
func (u RunUseCase) Execute(ctx context.Context, req RunRequest) (RunResponse, error) {
	kinds, err := parseTeams(req.Teams)
	if err != nil {
		return RunResponse{}, err
	}
	missions := req.Missions
	if missions == 0 {
		missions = DefaultMissions
	}
	if missions < 0 || missions > MaxMissions || req.Rows < 0 || req.Cols < 0 ||
		req.MaxSteps < 0 || req.MaxSteps > mission.MaxStepsLimit {
		return RunResponse{}, ErrInvalidRequest
	}
	maxSteps := req.MaxSteps
	if maxSteps == 0 {
		maxSteps = u.MaxSteps
	}
	if maxSteps == 0 {
		maxSteps = mission.DefaultMaxSteps
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

	var g grid.Grid
	summaries := make([]mission.Summary, 0, len(kinds))
	for _, kind := range kinds {
		worldRand, policyRand := seeding.Streams(seed)
		world, err := u.World.NewWorld(ctx, ports.WorldRequest{Rows: req.Rows, Cols: req.Cols, Rand: worldRand})
		if err != nil {
			return RunResponse{}, asInvalidRequest(err)
		}
		g = world.Grid()
		team, err := mission.NewTeam(kind, g, policyRand)
		if err != nil {
			return RunResponse{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		summary := mission.NewSummary(team)
		runner := mission.Runner{MaxSteps: maxSteps}
		for i := 0; i < missions; i++ {
			if i > 0 {
				if err := world.Reset(worldRand); err != nil {
					return RunResponse{}, asInvalidRequest(err)
				}
			}
			res, err := runner.Run(ctx, world, team)
			if err != nil {
				if u.Metrics != nil {
					u.Metrics.RecordFailure()
				}
				return RunResponse{}, err
			}
			if u.Metrics != nil {
				u.Metrics.RecordMission(res)
			}
			summary.Add(res)
		}
		summaries = append(summaries, summary)
	}

	rec := ports.ExperimentRecord{
		ExperimentID: strings.TrimSpace(newID()),
		Rows:         g.Rows,
		Cols:         g.Cols,
		MaxSteps:     maxSteps,
		Missions:     missions,
		Seed:         seed,
		Summaries:    summaries,
		CreatedAt:    nowFn(),
	}
	if err := u.Experiments.Save(ctx, rec); err != nil {
		return RunResponse{}, err
	}
	return toResponse(rec), nil
}

type GetUseCase struct {
	Experiments ports.ExperimentRepository
}

func (u GetUseCase) Execute(ctx context.Context, req GetRequest) (RunResponse, error) {
	if strings.TrimSpace(req.ExperimentID) == "" {
		return RunResponse{}, ErrInvalidRequest
	}
	rec, err := u.Experiments.GetByID(ctx, req.ExperimentID)
	if err != nil {
		return RunResponse{}, err
	}
	return toResponse(rec), nil
}

func parseTeams(in []string) ([]mission.TeamKind, error) {
	if len(in) == 0 {
		return append([]mission.TeamKind(nil), mission.TeamKinds...), nil
	}
	seen := map[mission.TeamKind]bool{}
	out := make([]mission.TeamKind, 0, len(in))
	for _, raw := range in {
		kind, err := mission.ParseTeamKind(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		if seen[kind] {
			continue
		}
		seen[kind] = true
		out = append(out, kind)
	}
	return out, nil
}

func asInvalidRequest(err error) error {
	switch {
	case errors.Is(err, grid.ErrInvalidDimensions), errors.Is(err, warehouse.ErrGridTooSmall):
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	default:
		return err
	}
}

func toResponse(rec ports.ExperimentRecord) RunResponse {
	return RunResponse{
		ExperimentID: rec.ExperimentID,
		Rows:         rec.Rows,
		Cols:         rec.Cols,
		MaxSteps:     rec.MaxSteps,
		Missions:     rec.Missions,
		Seed:         rec.Seed,
		Summaries:    rec.Summaries,
		CreatedAt:    rec.CreatedAt.Unix(),
	}
}
