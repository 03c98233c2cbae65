package mission

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"warehousebots/internal/domain/grid"
	"warehousebots/internal/domain/robot"
	"warehousebots/internal/domain/warehouse"
)

func placedWorld(t *testing.T, g grid.Grid, robots [2]grid.Position, target grid.Position) *warehouse.World {
	t.Helper()
	w := warehouse.NewWorld(g)
	if err := w.Place(robots, target); err != nil {
		t.Fatalf("Place: %v", err)
	}
	return w
}

func TestRun_CollaborationFindsTargetAlongRow(t *testing.T) {
	g := grid.Grid{Rows: 5, Cols: 5}
	team, err := NewTeam(TeamCollaboration, g, rand.New(rand.NewPCG(1, 1)))
	if err != nil {
		t.Fatalf("NewTeam: %v", err)
	}
	w := placedWorld(t, g, [2]grid.Position{{Row: 0, Col: 0}, {Row: 4, Col: 4}}, grid.Position{Row: 0, Col: 4})

	res, err := Runner{MaxSteps: 50}.Run(context.Background(), w, team)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Found || res.TimedOut {
		t.Fatalf("expected found, got %+v", res)
	}
	if res.Steps != 4 {
		t.Fatalf("steps=%d want=4", res.Steps)
	}
	if res.Finder != 0 || res.FinderName != "P1 (A* main)" {
		t.Fatalf("finder=%d %q", res.Finder, res.FinderName)
	}
	if len(res.Ticks) != 7 {
		t.Fatalf("expected 7 tick records, got %d", len(res.Ticks))
	}
	if res.Final.Robots[1] != (grid.Position{Row: 1, Col: 4}) {
		t.Fatalf("relay ended at %v", res.Final.Robots[1])
	}
	for _, tick := range res.Ticks {
		if tick.Source == robot.SourceFallback {
			t.Fatalf("unexpected fallback at %+v", tick)
		}
	}
}

func TestRun_SoloBaselineIgnoresParkedPartner(t *testing.T) {
	g := grid.Grid{Rows: 5, Cols: 5}
	team, err := NewTeam(TeamSolo, g, rand.New(rand.NewPCG(1, 1)))
	if err != nil {
		t.Fatalf("NewTeam: %v", err)
	}
	w := placedWorld(t, g, [2]grid.Position{{Row: 0, Col: 0}, {Row: 4, Col: 4}}, grid.Position{Row: 4, Col: 3})

	res, err := Runner{MaxSteps: 50}.Run(context.Background(), w, team)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Found || res.Steps != 7 || res.Finder != 0 {
		t.Fatalf("unexpected result: found=%v steps=%d finder=%d", res.Found, res.Steps, res.Finder)
	}
	if res.Final.Robots[1] != (grid.Position{Row: 4, Col: 4}) {
		t.Fatalf("parked robot moved to %v", res.Final.Robots[1])
	}
}

type recordingPolicy struct {
	name   string
	move   grid.Move
	resets int
	seen   [][2]grid.Position
}

func (p *recordingPolicy) Name() string { return p.name }

func (p *recordingPolicy) DecideAction(_ int, positions [2]grid.Position, _ grid.Position) (grid.Move, error) {
	p.seen = append(p.seen, positions)
	return p.move, nil
}

func (p *recordingPolicy) Reset() {
	p.resets++
	p.seen = nil
}

func (p *recordingPolicy) LastDecision() robot.Decision {
	return robot.Decision{Move: p.move, Source: robot.SourceFixed}
}

var errPolicyBroken = errors.New("policy broken")

type failingPolicy struct{}

func (failingPolicy) Name() string { return "broken" }

func (failingPolicy) DecideAction(int, [2]grid.Position, grid.Position) (grid.Move, error) {
	return 0, errPolicyBroken
}

func (failingPolicy) Reset() {}

func (failingPolicy) LastDecision() robot.Decision { return robot.Decision{} }

func TestRun_SecondRobotSeesFirstRobotsMove(t *testing.T) {
	g := grid.Grid{Rows: 5, Cols: 5}
	first := &recordingPolicy{name: "a", move: grid.Right}
	second := &recordingPolicy{name: "b", move: grid.Up}
	w := placedWorld(t, g, [2]grid.Position{{Row: 0, Col: 0}, {Row: 4, Col: 4}}, grid.Position{Row: 2, Col: 0})

	res, err := Runner{MaxSteps: 2}.Run(context.Background(), w, Team{Name: "rec", Members: [2]robot.Policy{first, second}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.TimedOut || res.Found || res.Steps != 2 {
		t.Fatalf("expected timeout after 2 steps, got %+v", res)
	}
	if len(second.seen) != 2 {
		t.Fatalf("second robot asked %d times", len(second.seen))
	}
	if got := second.seen[0][0]; got != (grid.Position{Row: 0, Col: 1}) {
		t.Fatalf("robot 1 saw robot 0 at %v, want post-move (0,1)", got)
	}
	if got := first.seen[1][1]; got != (grid.Position{Row: 3, Col: 4}) {
		t.Fatalf("robot 0 saw robot 1 at %v on tick 2, want (3,4)", got)
	}
	if first.resets != 1 || second.resets != 1 {
		t.Fatalf("expected one reset each, got %d/%d", first.resets, second.resets)
	}
	if res.Finder != -1 {
		t.Fatalf("finder=%d want -1", res.Finder)
	}
}

func TestRun_StopsAsSoonAsARobotFindsTarget(t *testing.T) {
	g := grid.Grid{Rows: 3, Cols: 3}
	first := &recordingPolicy{name: "a", move: grid.Left}
	second := &recordingPolicy{name: "b", move: grid.Left}
	w := placedWorld(t, g, [2]grid.Position{{Row: 0, Col: 0}, {Row: 2, Col: 2}}, grid.Position{Row: 2, Col: 1})

	res, err := Runner{MaxSteps: 10}.Run(context.Background(), w, Team{Members: [2]robot.Policy{first, second}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Found || res.Steps != 1 || res.Finder != 1 || res.FinderName != "b" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestRun_HonoursCancellation(t *testing.T) {
	g := grid.Grid{Rows: 3, Cols: 3}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w := placedWorld(t, g, [2]grid.Position{{Row: 0, Col: 0}, {Row: 2, Col: 2}}, grid.Position{Row: 1, Col: 1})
	team := Team{Members: [2]robot.Policy{&recordingPolicy{move: grid.Up}, &recordingPolicy{move: grid.Up}}}
	if _, err := (Runner{}).Run(ctx, w, team); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRun_FailedTickStillReportsFinalLayout(t *testing.T) {
	g := grid.Grid{Rows: 3, Cols: 3}
	start := [2]grid.Position{{Row: 0, Col: 0}, {Row: 2, Col: 2}}
	target := grid.Position{Row: 1, Col: 1}

	w := placedWorld(t, g, start, target)
	team := Team{Members: [2]robot.Policy{&recordingPolicy{move: grid.Right}, &recordingPolicy{move: grid.Move(99)}}}
	res, err := Runner{}.Run(context.Background(), w, team)
	if !errors.Is(err, warehouse.ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove, got %v", err)
	}
	want := warehouse.Snapshot{Robots: [2]grid.Position{{Row: 0, Col: 1}, {Row: 2, Col: 2}}, Target: target}
	if res.Final != want {
		t.Fatalf("final=%+v want=%+v", res.Final, want)
	}

	w = placedWorld(t, g, start, target)
	team = Team{Members: [2]robot.Policy{&recordingPolicy{move: grid.Down}, &failingPolicy{}}}
	res, err = Runner{}.Run(context.Background(), w, team)
	if !errors.Is(err, errPolicyBroken) {
		t.Fatalf("expected policy error, got %v", err)
	}
	if got := res.Final.Robots[0]; got != (grid.Position{Row: 1, Col: 0}) {
		t.Fatalf("final robot 0=%v want (1,0)", got)
	}
}

func TestRun_RequiresPlacedWorld(t *testing.T) {
	team := Team{Members: [2]robot.Policy{&recordingPolicy{}, &recordingPolicy{}}}
	if _, err := (Runner{}).Run(context.Background(), warehouse.NewWorld(grid.Grid{Rows: 2, Cols: 2}), team); !errors.Is(err, ErrWorldNotReady) {
		t.Fatalf("expected ErrWorldNotReady, got %v", err)
	}
}

func TestResultEvents(t *testing.T) {
	g := grid.Grid{Rows: 5, Cols: 5}
	team, _ := NewTeam(TeamCollaboration, g, rand.New(rand.NewPCG(3, 4)))
	w := placedWorld(t, g, [2]grid.Position{{Row: 0, Col: 0}, {Row: 4, Col: 4}}, grid.Position{Row: 0, Col: 4})
	res, err := Runner{}.Run(context.Background(), w, team)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	at := time.Unix(1700000000, 0)
	events := res.Events("m-1", at)
	if len(events) != len(res.Ticks)+2 {
		t.Fatalf("events=%d ticks=%d", len(events), len(res.Ticks))
	}
	if events[0].Type != EventMissionStarted || events[len(events)-1].Type != EventMissionCompleted {
		t.Fatalf("unexpected bracket events: %s ... %s", events[0].Type, events[len(events)-1].Type)
	}
	for i, e := range events {
		if e.Seq != i+1 {
			t.Fatalf("event %d seq=%d", i, e.Seq)
		}
		if e.Payload["mission_id"] != "m-1" {
			t.Fatalf("event %d missing mission id", i)
		}
		if !e.OccurredAt.Equal(at) {
			t.Fatalf("event %d occurred_at=%v", i, e.OccurredAt)
		}
	}
	if got := events[1].Payload["move"]; got != "right" {
		t.Fatalf("first move=%v want right", got)
	}
}

func TestSummaryAdd(t *testing.T) {
	s := NewSummary(Team{Kind: TeamSolo, Name: "solo"})
	s.Add(Result{Steps: 10, Found: true, FinderName: "P1"})
	s.Add(Result{Steps: 300, TimedOut: true})
	s.Add(Result{Steps: 5, Found: true, FinderName: "P1"})
	if s.Missions != 3 || s.TotalSteps != 315 || s.Timeouts != 1 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if s.AverageSteps != 105 {
		t.Fatalf("average=%v want 105", s.AverageSteps)
	}
	if s.FoundBy["P1"] != 2 {
		t.Fatalf("found by P1=%d", s.FoundBy["P1"])
	}
	if len(s.Steps) != 3 || s.Steps[1] != 300 {
		t.Fatalf("steps series=%v", s.Steps)
	}
}

func TestTeamCatalog(t *testing.T) {
	g := grid.Grid{Rows: 4, Cols: 4}
	for _, kind := range TeamKinds {
		parsed, err := ParseTeamKind(" " + string(kind) + " ")
		if err != nil || parsed != kind {
			t.Fatalf("ParseTeamKind(%q)=%q,%v", kind, parsed, err)
		}
		team, err := NewTeam(kind, g, rand.New(rand.NewPCG(1, 1)))
		if err != nil {
			t.Fatalf("NewTeam(%s): %v", kind, err)
		}
		if team.Members[0] == nil || team.Members[1] == nil {
			t.Fatalf("team %s has nil members", kind)
		}
	}
	if _, err := ParseTeamKind("trio"); !errors.Is(err, ErrUnknownTeam) {
		t.Fatalf("expected ErrUnknownTeam, got %v", err)
	}
	if _, err := NewTeam("trio", g, nil); !errors.Is(err, ErrUnknownTeam) {
		t.Fatalf("expected ErrUnknownTeam, got %v", err)
	}
}
