package mission

import (
	"errors"
	"fmt"
	"strings"

	"warehousebots/internal/domain/grid"
	"warehousebots/internal/domain/robot"
)

var ErrUnknownTeam = errors.New("unknown team")

type TeamKind string

const (
	// TeamCollaboration pairs a Pursuer with a Relay.
	TeamCollaboration TeamKind = "collaboration"
	// TeamSolo is the baseline: one Pursuer that ignores its parked partner.
	TeamSolo TeamKind = "solo"
)

var TeamKinds = []TeamKind{TeamCollaboration, TeamSolo}

func ParseTeamKind(s string) (TeamKind, error) {
	switch TeamKind(strings.ToLower(strings.TrimSpace(s))) {
	case TeamCollaboration:
		return TeamCollaboration, nil
	case TeamSolo:
		return TeamSolo, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTeam, s)
	}
}

type Team struct {
	Kind    TeamKind
	Name    string
	Members [2]robot.Policy
}

func NewTeam(kind TeamKind, g grid.Grid, rng robot.RandomSource) (Team, error) {
	switch kind {
	case TeamCollaboration:
		return Team{
			Kind: kind,
			Name: "Collaboration Team",
			Members: [2]robot.Policy{
				robot.NewPursuer("P1 (A* main)", g, rng),
				robot.NewRelay("P2 (A* supporter)", g, rng),
			},
		}, nil
	case TeamSolo:
		return Team{
			Kind: kind,
			Name: "Solo Bot A* (P2 Static)",
			Members: [2]robot.Policy{
				robot.NewPursuer("P1 (Solo A*)", g, rng, robot.WithoutTeammateBlocking()),
				robot.NewParked("P2 (Parked)"),
			},
		}, nil
	default:
		return Team{}, fmt.Errorf("%w: %q", ErrUnknownTeam, string(kind))
	}
}
