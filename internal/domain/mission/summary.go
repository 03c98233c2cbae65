package mission

type Summary struct {
	Team         TeamKind       `json:"team"`
	TeamName     string         `json:"team_name"`
	Missions     int            `json:"missions"`
	TotalSteps   int            `json:"total_steps"`
	AverageSteps float64        `json:"average_steps"`
	Timeouts     int            `json:"timeouts"`
	FoundBy      map[string]int `json:"found_by"`
	Steps        []int          `json:"steps"`
}

func NewSummary(team Team) Summary {
	return Summary{Team: team.Kind, TeamName: team.Name, FoundBy: map[string]int{}}
}

func (s *Summary) Add(r Result) {
	s.Missions++
	s.TotalSteps += r.Steps
	s.Steps = append(s.Steps, r.Steps)
	if r.TimedOut {
		s.Timeouts++
	}
	if r.Found {
		if s.FoundBy == nil {
			s.FoundBy = map[string]int{}
		}
		s.FoundBy[r.FinderName]++
	}
	s.AverageSteps = float64(s.TotalSteps) / float64(s.Missions)
}
