package mission

import "time"

const (
	EventMissionStarted   = "mission_started"
	EventRobotMoved       = "robot_moved"
	EventMissionCompleted = "mission_completed"
	EventMissionTimedOut  = "mission_timed_out"
)

type Event struct {
	Seq        int            `json:"seq"`
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

// Events flattens a result into an ordered event log.
func (r Result) Events(missionID string, at time.Time) []Event {
	out := make([]Event, 0, len(r.Ticks)+2)
	add := func(typ string, payload map[string]any) {
		payload["mission_id"] = missionID
		out = append(out, Event{Seq: len(out) + 1, Type: typ, OccurredAt: at, Payload: payload})
	}

	add(EventMissionStarted, map[string]any{
		"team":       string(r.Team),
		"robot0_row": r.Start.Robots[0].Row,
		"robot0_col": r.Start.Robots[0].Col,
		"robot1_row": r.Start.Robots[1].Row,
		"robot1_col": r.Start.Robots[1].Col,
		"target_row": r.Start.Target.Row,
		"target_col": r.Start.Target.Col,
	})
	for _, t := range r.Ticks {
		add(EventRobotMoved, map[string]any{
			"step":     t.Step,
			"robot":    t.Robot,
			"agent":    t.Agent,
			"move":     t.Move.String(),
			"source":   string(t.Source),
			"from_row": t.From.Row,
			"from_col": t.From.Col,
			"to_row":   t.To.Row,
			"to_col":   t.To.Col,
			"goal_row": t.Goal.Row,
			"goal_col": t.Goal.Col,
		})
	}
	if r.Found {
		add(EventMissionCompleted, map[string]any{
			"steps":       r.Steps,
			"finder":      r.Finder,
			"finder_name": r.FinderName,
		})
	} else if r.TimedOut {
		add(EventMissionTimedOut, map[string]any{"steps": r.Steps})
	}
	return out
}
