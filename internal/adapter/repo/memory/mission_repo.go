package memory

import (
	"context"

	"warehousebots/internal/app/ports"
	"warehousebots/internal/domain/mission"
)

type MissionRepo struct {
	store *Store
}

func NewMissionRepo(store *Store) MissionRepo {
	return MissionRepo{store: store}
}

func (r MissionRepo) Save(ctx context.Context, rec ports.MissionRecord) error {
	return r.store.write(ctx, func() error {
		if _, exists := r.store.missions[rec.MissionID]; exists {
			return ports.ErrConflict
		}
		rec.Result.Ticks = append([]mission.TickRecord(nil), rec.Result.Ticks...)
		r.store.missions[rec.MissionID] = rec
		r.store.order = append(r.store.order, rec.MissionID)
		return nil
	})
}

func (r MissionRepo) GetByID(ctx context.Context, missionID string) (ports.MissionRecord, error) {
	var (
		rec ports.MissionRecord
		ok  bool
	)
	r.store.read(ctx, func() {
		rec, ok = r.store.missions[missionID]
	})
	if !ok {
		return ports.MissionRecord{}, ports.ErrNotFound
	}
	return rec, nil
}

// List returns the most recent missions first.
func (r MissionRepo) List(ctx context.Context, limit int) ([]ports.MissionRecord, error) {
	var out []ports.MissionRecord
	r.store.read(ctx, func() {
		n := len(r.store.order)
		if limit <= 0 || limit > n {
			limit = n
		}
		out = make([]ports.MissionRecord, 0, limit)
		for i := n - 1; i >= 0 && len(out) < limit; i-- {
			out = append(out, r.store.missions[r.store.order[i]])
		}
	})
	return out, nil
}
