package status

import (
	"context"
	"errors"
	"strings"

	"warehousebots/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid status request")

type UseCase struct {
	Missions ports.MissionRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.MissionID) == "" {
		return Response{}, ErrInvalidRequest
	}
	rec, err := u.Missions.GetByID(ctx, req.MissionID)
	if err != nil {
		return Response{}, err
	}
	return Response{
		MissionID: rec.MissionID,
		Team:      rec.Team,
		Rows:      rec.Rows,
		Cols:      rec.Cols,
		MaxSteps:  rec.MaxSteps,
		Seed:      rec.Seed,
		Result:    rec.Result,
		CreatedAt: rec.CreatedAt.Unix(),
	}, nil
}
