package robot

import "warehousebots/internal/domain/grid"

// RelayPursuitRadius is the Manhattan distance below which a Relay stops
// heading for its teammate and goes for the target itself.
const RelayPursuitRadius = 5

type PursuerOption func(*Pursuer)

// WithoutTeammateBlocking plans as if the teammate's cell were free.
func WithoutTeammateBlocking() PursuerOption {
	return func(p *Pursuer) { p.blockTeammate = false }
}

// Pursuer always heads for the target and routes around its teammate.
type Pursuer struct {
	name          string
	blockTeammate bool
	nav           navigator
}

func NewPursuer(name string, g grid.Grid, rng RandomSource, opts ...PursuerOption) *Pursuer {
	p := &Pursuer{name: name, blockTeammate: true, nav: newNavigator(g, rng)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Pursuer) Name() string { return p.name }

func (p *Pursuer) DecideAction(ownIndex int, positions [2]grid.Position, target grid.Position) (grid.Move, error) {
	own, teammate, err := p.nav.resolve(ownIndex, positions, target)
	if err != nil {
		return 0, err
	}
	var blocked *grid.Position
	if p.blockTeammate {
		blocked = &teammate
	}
	return p.nav.step(own, target, blocked)
}

func (p *Pursuer) Reset() { p.nav.reset() }

func (p *Pursuer) LastDecision() Decision { return p.nav.last }

func (p *Pursuer) Cache() *PathCache { return &p.nav.cache }

// Relay heads for its teammate while far from the target and switches to the
// target once inside RelayPursuitRadius. The mode is recomputed every tick, so
// a mode change shows up as a goal mismatch against the cache and forces a
// replan.
type Relay struct {
	name string
	nav  navigator
}

func NewRelay(name string, g grid.Grid, rng RandomSource) *Relay {
	return &Relay{name: name, nav: newNavigator(g, rng)}
}

func (r *Relay) Name() string { return r.name }

func (r *Relay) DecideAction(ownIndex int, positions [2]grid.Position, target grid.Position) (grid.Move, error) {
	own, teammate, err := r.nav.resolve(ownIndex, positions, target)
	if err != nil {
		return 0, err
	}
	return r.nav.step(own, RelayGoal(own, teammate, target), &teammate)
}

func (r *Relay) Reset() { r.nav.reset() }

func (r *Relay) LastDecision() Decision { return r.nav.last }

func (r *Relay) Cache() *PathCache { return &r.nav.cache }

func RelayGoal(own, teammate, target grid.Position) grid.Position {
	if grid.Manhattan(own, target) < RelayPursuitRadius {
		return target
	}
	return teammate
}

// Parked never plans; it presses the same move every tick. Paired with a
// solo Pursuer it forms the single-searcher baseline team.
type Parked struct {
	name string
	move grid.Move
	last Decision
}

func NewParked(name string) *Parked {
	return &Parked{name: name, move: grid.Down}
}

func (p *Parked) Name() string { return p.name }

func (p *Parked) DecideAction(ownIndex int, positions [2]grid.Position, _ grid.Position) (grid.Move, error) {
	if ownIndex != 0 && ownIndex != 1 {
		return 0, ErrInvalidAgentIndex
	}
	p.last = Decision{Move: p.move, Goal: positions[ownIndex], Source: SourceFixed}
	return p.move, nil
}

func (p *Parked) Reset() { p.last = Decision{} }

func (p *Parked) LastDecision() Decision { return p.last }

var (
	_ Policy = (*Pursuer)(nil)
	_ Policy = (*Relay)(nil)
	_ Policy = (*Parked)(nil)
)
