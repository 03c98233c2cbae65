package history

import (
	"context"
	"errors"

	"warehousebots/internal/app/ports"
	"warehousebots/internal/domain/mission"
)

var ErrInvalidRequest = errors.New("invalid history request")

const (
	DefaultLimit = 20
	MaxLimit     = 200
)

type UseCase struct {
	Missions ports.MissionRepository
}

type Request struct {
	Limit int
}

// Entry is a stored mission without its tick log.
type Entry struct {
	MissionID string           `json:"mission_id"`
	Team      mission.TeamKind `json:"team"`
	Rows      int              `json:"rows"`
	Cols      int              `json:"cols"`
	Steps     int              `json:"steps"`
	Found     bool             `json:"found"`
	TimedOut  bool             `json:"timed_out"`
	Finder    string           `json:"finder,omitempty"`
	CreatedAt int64            `json:"created_at"`
}

type Response struct {
	Missions []Entry `json:"missions"`
}

// Execute lists the most recent missions first.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	limit := req.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 0 || limit > MaxLimit {
		return Response{}, ErrInvalidRequest
	}
	recs, err := u.Missions.List(ctx, limit)
	if err != nil {
		return Response{}, err
	}
	out := make([]Entry, 0, len(recs))
	for _, rec := range recs {
		out = append(out, Entry{
			MissionID: rec.MissionID,
			Team:      rec.Team,
			Rows:      rec.Rows,
			Cols:      rec.Cols,
			Steps:     rec.Result.Steps,
			Found:     rec.Result.Found,
			TimedOut:  rec.Result.TimedOut,
			Finder:    rec.Result.FinderName,
			CreatedAt: rec.CreatedAt.Unix(),
		})
	}
	return Response{Missions: out}, nil
}
