//go:build ebiten

package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-lifelike/engine"
	"github.com/sheikhrachel/go-lifelike/gui"
	"github.com/sheikhrachel/go-lifelike/model"
	"github.com/sheikhrachel/go-lifelike/utils"
)

func main() {
	var (
		rule     string
		width    = 1800
		height   = 1000
		cellSize = 10
	)
	flaggy.SetName("lifelike-gui")
	flaggy.AddPositionalValue(&rule, "rule", 1, false, "Rule as B<digits>/S<digits>[/<n>] or a preset name")
	flaggy.Int(&width, "", "width", "Window width in pixels")
	flaggy.Int(&height, "", "height", "Window height in pixels")
	flaggy.Int(&cellSize, "", "cell", "Cell size in pixels")
	flaggy.Parse()

	if cellSize < 3 {
		log.Fatalf("cell size %d is too small", cellSize)
	}

	grid, err := model.NewGrid(width/cellSize, height/cellSize)
	if err != nil {
		log.Fatal(err)
	}

	config := utils.DefaultConfig()
	config.UseParallel = false
	if rule != "" {
		config.Rule = rule
	}
	sim, err := engine.NewSimulation(grid, config)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Game of Life - " + sim.Rules().String())
	ebiten.SetWindowSize(grid.Width()*cellSize, grid.Height()*cellSize)

	if err := ebiten.RunGame(gui.New(sim, cellSize)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
