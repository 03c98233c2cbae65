package status

import "warehousebots/internal/domain/mission"

type Request struct {
	MissionID string
}

type Response struct {
	MissionID string           `json:"mission_id"`
	Team      mission.TeamKind `json:"team"`
	Rows      int              `json:"rows"`
	Cols      int              `json:"cols"`
	MaxSteps  int              `json:"max_steps"`
	Seed      uint64           `json:"seed"`
	Result    mission.Result   `json:"result"`
	CreatedAt int64            `json:"created_at"`
}
