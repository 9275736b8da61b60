package model

import (
	"math/rand/v2"

	"github.com/aquilax/go-perlin"

	"github.com/sheikhrachel/go-lifelike/utils"
)

const (
	perlinAlpha  = 2.0
	perlinBeta   = 2.0
	perlinOctave = 3
)

// setWrapped sets a cell, wrapping the coordinates so patterns may straddle an edge
func (g *Grid) setWrapped(x, y int, alive bool) {
	g.cells[wrap(y, g.height)][wrap(x, g.width)].Alive = alive
}

// Randomize brings each cell to life with the given probability.
// A nil rng falls back to the global source.
func (g *Grid) Randomize(density float64, rng *rand.Rand) {
	roll := rand.Float64
	if rng != nil {
		roll = rng.Float64
	}
	for c := range g.All() {
		c.Alive = roll() < density
		c.Refractory = 0
	}
}

// SeedNoise brings to life every cell whose 2D perlin noise value exceeds threshold
func (g *Grid) SeedNoise(scale, threshold float64, seed int64) {
	p := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctave, seed)
	for c := range g.All() {
		x, y := c.Position()
		c.Alive = p.Noise2D(float64(x)*scale, float64(y)*scale) > threshold
		c.Refractory = 0
	}
}

// InjectRandomLife adds some random cells to break stagnation
func (g *Grid) InjectRandomLife(count int, rng *rand.Rand) {
	pick := rand.IntN
	if rng != nil {
		pick = rng.IntN
	}
	for range count {
		g.setWrapped(pick(g.width), pick(g.height), true)
	}
}

// AddGlider adds a glider pattern at the specified position
func (g *Grid) AddGlider(startX, startY int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, cell := range row {
			g.setWrapped(startX+x, startY+y, cell)
		}
	}
}

// AddOscillator adds a horizontal blinker
func (g *Grid) AddOscillator(startX, startY int) {
	for i := range 3 {
		g.setWrapped(startX+i, startY, true)
	}
}

// AddBlock adds a 2x2 still life with its top-left corner at the given position
func (g *Grid) AddBlock(startX, startY int) {
	for dy := range 2 {
		for dx := range 2 {
			g.setWrapped(startX+dx, startY+dy, true)
		}
	}
}

// ResetWithPatterns clears the grid and seeds it according to the config
func (g *Grid) ResetWithPatterns(config utils.Config, rng *rand.Rand) {
	g.Clear()

	switch config.SeedMode {
	case utils.SeedModeNoise:
		g.SeedNoise(config.NoiseScale, config.NoiseThreshold, config.Seed)
	default:
		g.Randomize(config.RandomDensity, rng)
	}

	// Lay some known patterns over the noise
	if g.width >= 10 && g.height >= 10 {
		g.AddGlider(5, 5)
		if g.width >= 20 && g.height >= 15 {
			g.AddGlider(g.width-8, 5)
		}

		g.AddOscillator(g.width/4, g.height/4)
		if g.width >= 30 {
			g.AddOscillator(3*g.width/4, 3*g.height/4)
		}
	}
}
