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

type MissionRepo struct {
	db *gorm.DB
}

func NewMissionRepo(db *gorm.DB) MissionRepo {
	return MissionRepo{db: db}
}

func (r MissionRepo) Save(ctx context.Context, rec ports.MissionRecord) error {
	resultJSON, err := json.Marshal(rec.Result)
	if err != nil {
		return fmt.Errorf("encode mission result: %w", err)
	}
	m := model.Mission{
		MissionID: rec.MissionID,
		Team:      string(rec.Team),
		GridRows:  int32(rec.Rows),
		GridCols:  int32(rec.Cols),
		MaxSteps:  int32(rec.MaxSteps),
		Seed:      int64(rec.Seed),
		Steps:     int32(rec.Result.Steps),
		Found:     rec.Result.Found,
		TimedOut:  rec.Result.TimedOut,
		Finder:    int32(rec.Result.Finder),
		Result:    resultJSON,
		CreatedAt: rec.CreatedAt,
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

func (r MissionRepo) GetByID(ctx context.Context, missionID string) (ports.MissionRecord, error) {
	var m model.Mission
	if err := getDBFromCtx(ctx, r.db).Where(&model.Mission{MissionID: missionID}).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.MissionRecord{}, ports.ErrNotFound
		}
		return ports.MissionRecord{}, err
	}
	return toMissionRecord(m), nil
}

func (r MissionRepo) List(ctx context.Context, limit int) ([]ports.MissionRecord, error) {
	rows := []model.Mission{}
	query := getDBFromCtx(ctx, r.db).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "created_at"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ports.MissionRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, toMissionRecord(row))
	}
	return out, nil
}

func toMissionRecord(m model.Mission) ports.MissionRecord {
	var result mission.Result
	_ = json.Unmarshal(m.Result, &result)
	return ports.MissionRecord{
		MissionID: m.MissionID,
		Team:      mission.TeamKind(m.Team),
		Rows:      int(m.GridRows),
		Cols:      int(m.GridCols),
		MaxSteps:  int(m.MaxSteps),
		Seed:      uint64(m.Seed),
		Result:    result,
		CreatedAt: m.CreatedAt,
	}
}
