package ports

import (
	"context"
	"errors"
	"time"

	"warehousebots/internal/domain/mission"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type MissionRecord struct {
	MissionID string
	Team      mission.TeamKind
	Rows      int
	Cols      int
	MaxSteps  int
	Seed      uint64
	Result    mission.Result
	CreatedAt time.Time
}

type MissionRepository interface {
	Save(ctx context.Context, rec MissionRecord) error
	GetByID(ctx context.Context, missionID string) (MissionRecord, error)
	List(ctx context.Context, limit int) ([]MissionRecord, error)
}

type EventRepository interface {
	Append(ctx context.Context, missionID string, events []mission.Event) error
	ListByMissionID(ctx context.Context, missionID string, limit int) ([]mission.Event, error)
}

type ExperimentRecord struct {
	ExperimentID string
	Rows         int
	Cols         int
	MaxSteps     int
	Missions     int
	Seed         uint64
	Summaries    []mission.Summary
	CreatedAt    time.Time
}

type ExperimentRepository interface {
	Save(ctx context.Context, rec ExperimentRecord) error
	GetByID(ctx context.Context, experimentID string) (ExperimentRecord, error)
}
