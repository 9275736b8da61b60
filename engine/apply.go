package engine

import (
	"github.com/sheikhrachel/go-lifelike/model"
	"github.com/sheikhrachel/go-lifelike/rules"
)

// Apply commits t to g: cooling counters drop first, then births, then deaths.
// t must have been computed from g's current state.
func Apply(g *model.Grid, t *Transition) {
	for _, p := range t.Cooling {
		if c := g.At(p); c.Refractory > 0 {
			c.Refractory--
		}
	}
	for _, p := range t.Births {
		g.At(p).Toggle()
	}
	for _, p := range t.Deaths {
		c := g.At(p)
		c.Toggle()
		c.Refractory = t.Refractory
	}
}

// Step computes and applies one generation, returning the applied transition
// so callers can redraw only what changed
func Step(g *model.Grid, rs *rules.RuleSet, pool *TransitionPool) *Transition {
	t := Compute(g, rs, pool)
	Apply(g, t)
	return t
}
