package memory

import (
	"context"

	"warehousebots/internal/app/ports"
)

type ExperimentRepo struct {
	store *Store
}

func NewExperimentRepo(store *Store) ExperimentRepo {
	return ExperimentRepo{store: store}
}

func (r ExperimentRepo) Save(ctx context.Context, rec ports.ExperimentRecord) error {
	return r.store.write(ctx, func() error {
		if _, exists := r.store.experiments[rec.ExperimentID]; exists {
			return ports.ErrConflict
		}
		r.store.experiments[rec.ExperimentID] = rec
		return nil
	})
}

func (r ExperimentRepo) GetByID(ctx context.Context, experimentID string) (ports.ExperimentRecord, error) {
	var (
		rec ports.ExperimentRecord
		ok  bool
	)
	r.store.read(ctx, func() {
		rec, ok = r.store.experiments[experimentID]
	})
	if !ok {
		return ports.ExperimentRecord{}, ports.ErrNotFound
	}
	return rec, nil
}
