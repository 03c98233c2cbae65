package memory

import (
	"context"

	"warehousebots/internal/domain/mission"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(ctx context.Context, missionID string, events []mission.Event) error {
	return r.store.write(ctx, func() error {
		r.store.events[missionID] = append(r.store.events[missionID], events...)
		return nil
	})
}

// ListByMissionID returns the latest limit events (all when limit <= 0),
// oldest first.
func (r EventRepo) ListByMissionID(ctx context.Context, missionID string, limit int) ([]mission.Event, error) {
	var out []mission.Event
	r.store.read(ctx, func() {
		events := r.store.events[missionID]
		if limit <= 0 || limit > len(events) {
			limit = len(events)
		}
		out = make([]mission.Event, limit)
		copy(out, events[len(events)-limit:])
	})
	return out, nil
}
