package engine

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-lifelike/model"
	"github.com/sheikhrachel/go-lifelike/rules"
	"github.com/sheikhrachel/go-lifelike/utils"
)

// Simulation ties a grid to its rules and advances it one generation at a time.
// It is not safe for concurrent use; callers serialize access.
type Simulation struct {
	grid       *model.Grid
	rules      *rules.RuleSet
	pool       *TransitionPool
	parallel   bool
	workers    int
	generation int
}

// NewSimulation builds a simulation over grid using the rule and engine settings in config
func NewSimulation(grid *model.Grid, config utils.Config) (*Simulation, error) {
	rs := rules.Default()
	if config.Rule != "" {
		if err := rs.Configure(config.Rule); err != nil {
			return nil, errors.Wrap(err, "[NewSimulation]")
		}
	}

	s := &Simulation{
		grid:     grid,
		rules:    rs,
		parallel: config.UseParallel,
		workers:  config.Workers,
	}
	if config.UseMemoryPool {
		s.pool = NewTransitionPool()
	}
	return s, nil
}

// Grid returns the simulated grid
func (s *Simulation) Grid() *model.Grid {
	return s.grid
}

// Rules returns the active rules
func (s *Simulation) Rules() *rules.RuleSet {
	return s.rules
}

// Generation returns how many steps have been applied
func (s *Simulation) Generation() int {
	return s.generation
}

// Configure switches the rules; on error the current rules stay active
func (s *Simulation) Configure(text string) error {
	return s.rules.Configure(text)
}

// Compute returns the next transition without applying it
func (s *Simulation) Compute() *Transition {
	if s.parallel {
		return ComputeParallel(s.grid, s.rules, s.workers, s.pool)
	}
	return Compute(s.grid, s.rules, s.pool)
}

// Step advances the grid one generation and returns the applied transition.
// Hand it back with Release once it has been drawn.
func (s *Simulation) Step() *Transition {
	t := s.Compute()
	Apply(s.grid, t)
	s.generation++
	return t
}

// Release returns a transition obtained from Step or Compute to the pool
func (s *Simulation) Release(t *Transition) {
	TransitionToPool(t, s.pool)
}

// Toggle flips a single cell, as a user click does
func (s *Simulation) Toggle(x, y int) error {
	return s.grid.Toggle(x, y)
}

// Clear kills every cell and restarts the generation count
func (s *Simulation) Clear() {
	s.grid.Clear()
	s.generation = 0
}
