package inmemory

import (
	"sync"

	"warehousebots/internal/domain/mission"
)

type TeamSnapshot struct {
	Missions     uint64  `json:"missions"`
	Found        uint64  `json:"found"`
	Timeouts     uint64  `json:"timeouts"`
	TotalSteps   uint64  `json:"total_steps"`
	AverageSteps float64 `json:"average_steps"`
}

type Snapshot struct {
	MissionTotal    uint64                  `json:"mission_total"`
	MissionFound    uint64                  `json:"mission_found"`
	MissionTimeouts uint64                  `json:"mission_timeouts"`
	MissionFailure  uint64                  `json:"mission_failure"`
	ByTeam          map[string]TeamSnapshot `json:"by_team"`
	BySource        map[string]uint64       `json:"decisions_by_source"`
}

type teamCounters struct {
	missions uint64
	found    uint64
	timeouts uint64
	steps    uint64
}

// Recorder keeps process-local mission counters for the ops endpoint.
type Recorder struct {
	mu       sync.Mutex
	found    uint64
	timeouts uint64
	failure  uint64
	byTeam   map[string]*teamCounters
	bySource map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byTeam:   map[string]*teamCounters{},
		bySource: map[string]uint64{},
	}
}

func (r *Recorder) RecordMission(result mission.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tc, ok := r.byTeam[string(result.Team)]
	if !ok {
		tc = &teamCounters{}
		r.byTeam[string(result.Team)] = tc
	}
	tc.missions++
	tc.steps += uint64(result.Steps)
	if result.Found {
		r.found++
		tc.found++
	}
	if result.TimedOut {
		r.timeouts++
		tc.timeouts++
	}
	for _, tick := range result.Ticks {
		r.bySource[string(tick.Source)]++
	}
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		MissionFound:    r.found,
		MissionTimeouts: r.timeouts,
		MissionFailure:  r.failure,
		ByTeam:          make(map[string]TeamSnapshot, len(r.byTeam)),
		BySource:        make(map[string]uint64, len(r.bySource)),
	}
	for team, tc := range r.byTeam {
		ts := TeamSnapshot{Missions: tc.missions, Found: tc.found, Timeouts: tc.timeouts, TotalSteps: tc.steps}
		if tc.missions > 0 {
			ts.AverageSteps = float64(tc.steps) / float64(tc.missions)
		}
		out.ByTeam[team] = ts
		out.MissionTotal += tc.missions
	}
	for k, v := range r.bySource {
		out.BySource[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
