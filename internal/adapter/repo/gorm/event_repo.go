package gormrepo

import (
	"context"
	"encoding/json"

	"warehousebots/internal/adapter/repo/gorm/model"
	"warehousebots/internal/domain/mission"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, missionID string, events []mission.Event) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.MissionEvent, 0, len(events))
	for _, e := range events {
		b, _ := json.Marshal(e.Payload)
		rows = append(rows, model.MissionEvent{
			MissionID:  missionID,
			Seq:        int32(e.Seq),
			Type:       e.Type,
			OccurredAt: e.OccurredAt,
			Payload:    b,
		})
	}
	return getDBFromCtx(ctx, r.db).CreateInBatches(&rows, 500).Error
}

// ListByMissionID returns the latest limit events (all when limit <= 0) in the
// order they happened.
func (r EventRepo) ListByMissionID(ctx context.Context, missionID string, limit int) ([]mission.Event, error) {
	rows := []model.MissionEvent{}
	query := getDBFromCtx(ctx, r.db).
		Where(&model.MissionEvent{MissionID: missionID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "seq"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]mission.Event, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		var payload map[string]any
		if len(row.Payload) > 0 {
			_ = json.Unmarshal(row.Payload, &payload)
		}
		out = append(out, mission.Event{
			Seq:        int(row.Seq),
			Type:       row.Type,
			OccurredAt: row.OccurredAt,
			Payload:    payload,
		})
	}
	return out, nil
}
