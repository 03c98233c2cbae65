package memory

import (
	"context"
	"sync"

	"warehousebots/internal/app/ports"
	"warehousebots/internal/domain/mission"
)

type Store struct {
	mu          sync.RWMutex
	missions    map[string]ports.MissionRecord
	order       []string
	events      map[string][]mission.Event
	experiments map[string]ports.ExperimentRecord
}

func NewStore() *Store {
	return &Store{
		missions:    make(map[string]ports.MissionRecord),
		events:      make(map[string][]mission.Event),
		experiments: make(map[string]ports.ExperimentRecord),
	}
}

type txKey struct{}

func withTx(ctx context.Context) context.Context {
	return context.WithValue(ctx, txKey{}, true)
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

// read and write take the store lock unless the caller already holds it
// through TxManager.
func (s *Store) read(ctx context.Context, fn func()) {
	if !inTx(ctx) {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	fn()
}

func (s *Store) write(ctx context.Context, fn func() error) error {
	if !inTx(ctx) {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return fn()
}
