package engine

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-lifelike/model"
	"github.com/sheikhrachel/go-lifelike/rules"
)

// Compute works out the next transition of g under rs without touching the grid
func Compute(g *model.Grid, rs *rules.RuleSet, pool *TransitionPool) *Transition {
	t := getTransition(pool)
	t.Refractory = rs.RefractoryLength()
	computeRows(t, g, rs, 0, g.Height())
	return t
}

// ComputeParallel is Compute with rows split across workers.
// The result is identical to Compute; workers <= 0 means one per CPU.
func ComputeParallel(g *model.Grid, rs *rules.RuleSet, workers int, pool *TransitionPool) *Transition {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, g.Height())
	if workers <= 1 {
		return Compute(g, rs, pool)
	}

	var (
		eg            errgroup.Group
		parts         = make([]*Transition, workers)
		rowsPerWorker = (g.Height() + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.Height())
		)
		if startRow >= g.Height() {
			break
		}

		part := getTransition(pool)
		parts[i] = part
		eg.Go(func() error {
			computeRows(part, g, rs, startRow, endRow)
			return nil
		})
	}

	// Every read of this generation finishes here, before anyone may apply.
	// Workers never fail, so there is no error to report.
	eg.Wait()

	t := getTransition(pool)
	t.Refractory = rs.RefractoryLength()
	for _, part := range parts {
		if part == nil {
			continue
		}
		t.append(part)
		TransitionToPool(part, pool)
	}
	return t
}

// computeRows classifies every cell of rows [startRow, endRow) into t
func computeRows(t *Transition, g *model.Grid, rs *rules.RuleSet, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := range g.Width() {
			var (
				c     = g.At(model.Position{X: x, Y: y})
				count = g.AliveNeighborCount(x, y)
			)
			switch {
			case c.Alive && !rs.IsSurvival(count):
				t.Deaths = append(t.Deaths, c.Pos())
			case !c.Alive && rs.IsBirth(count) && c.Refractory == 0:
				t.Births = append(t.Births, c.Pos())
			}
			if c.Refractory > 0 {
				t.Cooling = append(t.Cooling, c.Pos())
			}
		}
	}
}
