package model

import (
	"math/rand/v2"
	"testing"

	"github.com/sheikhrachel/go-lifelike/utils"
)

func TestRandomizeDeterministic(t *testing.T) {
	a, b := mustGrid(t, 20, 10), mustGrid(t, 20, 10)
	a.Randomize(0.4, rand.New(rand.NewPCG(7, 0)))
	b.Randomize(0.4, rand.New(rand.NewPCG(7, 0)))
	if a.String() != b.String() {
		t.Fatal("same seed produced different boards")
	}

	a.Randomize(0, nil)
	if n := a.CountLivingCells(); n != 0 {
		t.Fatalf("density 0 left %d cells alive", n)
	}
	a.Randomize(1, nil)
	if n := a.CountLivingCells(); n != 200 {
		t.Fatalf("density 1 left %d of 200 cells alive", n)
	}
}

func TestSeedNoiseDeterministic(t *testing.T) {
	a, b := mustGrid(t, 30, 20), mustGrid(t, 30, 20)
	a.SeedNoise(0.1, 0, 42)
	b.SeedNoise(0.1, 0, 42)
	if a.String() != b.String() {
		t.Fatal("same noise seed produced different boards")
	}

	a.SeedNoise(0.1, 2, 42)
	if n := a.CountLivingCells(); n != 0 {
		t.Fatalf("threshold above the noise range left %d cells alive", n)
	}
}

func TestPatternsWrapAcrossEdges(t *testing.T) {
	g := mustGrid(t, 4, 4)
	g.AddBlock(3, 3)
	if got := g.String(); got != "1001\n0000\n0000\n1001\n" {
		t.Fatalf("block across the corner=%q", got)
	}

	g.Clear()
	g.AddOscillator(3, 1)
	if got := g.String(); got != "0000\n1101\n0000\n0000\n" {
		t.Fatalf("blinker across the edge=%q", got)
	}

	g.Clear()
	g.AddGlider(0, 0)
	if got := g.String(); got != "0100\n0010\n1110\n0000\n" {
		t.Fatalf("glider=%q", got)
	}
}

func TestInjectRandomLife(t *testing.T) {
	g := mustGrid(t, 10, 10)
	g.InjectRandomLife(5, rand.New(rand.NewPCG(1, 2)))
	if n := g.CountLivingCells(); n < 1 || n > 5 {
		t.Fatalf("injected 5 cells, %d alive", n)
	}
}

func TestResetWithPatterns(t *testing.T) {
	config := utils.DefaultConfig()
	config.RandomDensity = 0

	g := mustGrid(t, 40, 20)
	_ = g.SetAlive(0, 19, true)
	g.ResetWithPatterns(config, rand.New(rand.NewPCG(3, 3)))

	// two gliders and two blinkers, nothing else
	if n := g.CountLivingCells(); n != 5+5+3+3 {
		t.Fatalf("living cells=%d, expected 16", n)
	}
	if c, _ := g.Get(0, 19); c.Alive {
		t.Fatal("reset kept a previously alive cell")
	}

	config.SeedMode = utils.SeedModeNoise
	config.NoiseThreshold = 2
	g.ResetWithPatterns(config, nil)
	if n := g.CountLivingCells(); n != 16 {
		t.Fatalf("noise reset with unreachable threshold: living cells=%d, expected 16", n)
	}
}

func TestTerminalRenderer(t *testing.T) {
	g := mustGrid(t, 3, 2)
	_ = g.SetAlive(0, 0, true)
	c, _ := g.Get(2, 1)
	c.Refractory = 2

	r := &TerminalRenderer{}
	want := gridPosBlock + gridPosEmpty + gridPosEmpty + "\n" +
		gridPosEmpty + gridPosEmpty + gridPosCool + "\n"
	if got := r.Render(g); got != want {
		t.Fatalf("Render()=%q, expected %q", got, want)
	}
}
