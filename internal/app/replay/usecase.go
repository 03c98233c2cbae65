package replay

import (
	"context"
	"errors"
	"strings"

	"warehousebots/internal/app/ports"
	"warehousebots/internal/domain/mission"
)

var ErrInvalidRequest = errors.New("invalid replay request")

type UseCase struct {
	Events ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.MissionID) == "" || req.Limit < 0 {
		return Response{}, ErrInvalidRequest
	}
	// the state needs the whole log; Limit only trims what is returned
	events, err := u.Events.ListByMissionID(ctx, req.MissionID, 0)
	if err != nil {
		return Response{}, err
	}
	if len(events) == 0 {
		return Response{}, ports.ErrNotFound
	}
	state := reconstruct(events)
	if req.Limit > 0 && req.Limit < len(events) {
		events = events[len(events)-req.Limit:]
	}
	return Response{Events: events, LatestState: state}, nil
}

func reconstruct(events []mission.Event) State {
	state := State{Finder: -1}
	for _, evt := range events {
		p := evt.Payload
		switch evt.Type {
		case mission.EventMissionStarted:
			state.Robots[0].Row = int(num(p["robot0_row"]))
			state.Robots[0].Col = int(num(p["robot0_col"]))
			state.Robots[1].Row = int(num(p["robot1_row"]))
			state.Robots[1].Col = int(num(p["robot1_col"]))
			state.Target.Row = int(num(p["target_row"]))
			state.Target.Col = int(num(p["target_col"]))
		case mission.EventRobotMoved:
			idx := int(num(p["robot"]))
			if idx < 0 || idx > 1 {
				continue
			}
			state.Robots[idx].Row = int(num(p["to_row"]))
			state.Robots[idx].Col = int(num(p["to_col"]))
			state.Steps = int(num(p["step"]))
		case mission.EventMissionCompleted:
			state.Found = true
			state.Finder = int(num(p["finder"]))
			state.Steps = int(num(p["steps"]))
		case mission.EventMissionTimedOut:
			state.Steps = int(num(p["steps"]))
		}
	}
	return state
}

func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
