package ports

import "warehousebots/internal/domain/mission"

type MissionMetrics interface {
	RecordMission(result mission.Result)
	RecordFailure()
}
