package mission

import (
	"warehousebots/internal/domain/grid"
	domain "warehousebots/internal/domain/mission"
)

type Request struct {
	Team         string
	Rows         int
	Cols         int
	MaxSteps     int
	Seed         *uint64
	Robots       *[2]grid.Position
	Target       *grid.Position
	IncludeTicks bool
}

type Response struct {
	MissionID string          `json:"mission_id"`
	Team      domain.TeamKind `json:"team"`
	TeamName  string          `json:"team_name"`
	Rows      int             `json:"rows"`
	Cols      int             `json:"cols"`
	MaxSteps  int             `json:"max_steps"`
	Seed      uint64          `json:"seed"`
	Result    domain.Result   `json:"result"`
}
