package replay

import (
	"warehousebots/internal/domain/grid"
	"warehousebots/internal/domain/mission"
)

type Request struct {
	MissionID string
	Limit     int
}

// State is the world as it stood after the mission's last event.
type State struct {
	Robots [2]grid.Position `json:"robots"`
	Target grid.Position    `json:"target"`
	Steps  int              `json:"steps"`
	Found  bool             `json:"found"`
	Finder int              `json:"finder"`
}

type Response struct {
	Events      []mission.Event `json:"events"`
	LatestState State           `json:"latest_state"`
}
