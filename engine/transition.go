package engine

import "github.com/sheikhrachel/go-lifelike/model"

// Transition is the change set that moves a grid forward one generation.
// Positions are listed in row-major order. Births and Deaths never share a position.
type Transition struct {
	Births  []model.Position
	Deaths  []model.Position
	Cooling []model.Position // refractory cells whose counter drops by one

	// Refractory is the cooldown given to each cell in Deaths
	Refractory int
}

func (t *Transition) reset() {
	t.Births = t.Births[:0]
	t.Deaths = t.Deaths[:0]
	t.Cooling = t.Cooling[:0]
	t.Refractory = 0
}

// append adds the lists of o after those of t
func (t *Transition) append(o *Transition) {
	t.Births = append(t.Births, o.Births...)
	t.Deaths = append(t.Deaths, o.Deaths...)
	t.Cooling = append(t.Cooling, o.Cooling...)
}

// Changed reports whether applying t flips any cell
func (t *Transition) Changed() bool {
	return len(t.Births) > 0 || len(t.Deaths) > 0
}
