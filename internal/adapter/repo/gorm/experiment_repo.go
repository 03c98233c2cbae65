package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"warehousebots/internal/adapter/repo/gorm/model"
	"warehousebots/internal/app/ports"
	"warehousebots/internal/domain/mission"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExperimentRepo struct {
	db *gorm.DB
}

func NewExperimentRepo(db *gorm.DB) ExperimentRepo {
	return ExperimentRepo{db: db}
}

func (r ExperimentRepo) Save(ctx context.Context, rec ports.ExperimentRecord) error {
	summaries, err := json.Marshal(rec.Summaries)
	if err != nil {
		return fmt.Errorf("encode summaries: %w", err)
	}
	m := model.Experiment{
		ExperimentID: rec.ExperimentID,
		GridRows:     int32(rec.Rows),
		GridCols:     int32(rec.Cols),
		MaxSteps:     int32(rec.MaxSteps),
		Missions:     int32(rec.Missions),
		Seed:         int64(rec.Seed),
		Summaries:    summaries,
		CreatedAt:    rec.CreatedAt,
	}
	res := getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(&m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func (r ExperimentRepo) GetByID(ctx context.Context, experimentID string) (ports.ExperimentRecord, error) {
	var m model.Experiment
	if err := getDBFromCtx(ctx, r.db).Where(&model.Experiment{ExperimentID: experimentID}).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.ExperimentRecord{}, ports.ErrNotFound
		}
		return ports.ExperimentRecord{}, err
	}
	var summaries []mission.Summary
	_ = json.Unmarshal(m.Summaries, &summaries)
	return ports.ExperimentRecord{
		ExperimentID: m.ExperimentID,
		Rows:         int(m.GridRows),
		Cols:         int(m.GridCols),
		MaxSteps:     int(m.MaxSteps),
		Missions:     int(m.Missions),
		Seed:         uint64(m.Seed),
		Summaries:    summaries,
		CreatedAt:    m.CreatedAt,
	}, nil
}
