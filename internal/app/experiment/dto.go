package experiment

import "warehousebots/internal/domain/mission"

type RunRequest struct {
	Teams    []string
	Missions int
	Rows     int
	Cols     int
	MaxSteps int
	Seed     *uint64
}

type GetRequest struct {
	ExperimentID string
}

type RunResponse struct {
	ExperimentID string            `json:"experiment_id"`
	Rows         int               `json:"rows"`
	Cols         int               `json:"cols"`
	MaxSteps     int               `json:"max_steps"`
	Missions     int               `json:"missions"`
	Seed         uint64            `json:"seed"`
	Summaries    []mission.Summary `json:"summaries"`
	CreatedAt    int64             `json:"created_at"`
}
