package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-lifelike/engine"
	"github.com/sheikhrachel/go-lifelike/model"
	"github.com/sheikhrachel/go-lifelike/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, rng *rand.Rand) (
	*engine.Simulation,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	grid, err := model.NewGrid(config.Width, config.Height)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame]")
	}
	grid.ResetWithPatterns(config, rng)

	sim, err := engine.NewSimulation(grid, config)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame]")
	}

	renderer := &model.TerminalRenderer{Color: config.Color}
	stats := utils.NewStats()

	return sim, renderer, stats, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, sim *engine.Simulation) {
	fmt.Printf("Rule: %s | Memory Pool: %v | Parallel: %v | Seed mode: %s\n",
		aurora.Cyan(sim.Rules().String()), config.UseMemoryPool, config.UseParallel, config.SeedMode)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		sim.Grid().Width(), sim.Grid().Height(), sim.Grid().CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState updates the game state and returns status information.
// last is the transition that produced the current grid, nil for the first frame.
func updateGameState(
	sim *engine.Simulation,
	last *engine.Transition,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string, bool) {
	grid := sim.Grid()
	livingCells := grid.CountLivingCells()
	density := float64(livingCells) / float64(grid.Width()*grid.Height()) * 100

	births, deaths := 0, 0
	if last != nil {
		births, deaths = len(last.Births), len(last.Deaths)
	}
	stats.Update(sim.Generation(), livingCells, births, deaths, time.Since(lastFrameTime))

	// Compare against earlier states before recording this one
	isStagnant := grid.IsStagnant()
	grid.UpdateHistory()

	status := aurora.Green("Active").String()
	if isStagnant {
		status = aurora.Yellow("Stagnant").String()
	}
	if livingCells == 0 {
		status = aurora.Red("Extinct").String()
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	livingCells int,
	density float64,
	status string,
	stats *utils.Stats,
	generation, lastRestartGen int,
) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Births: %d | Deaths: %d | Status: %s\n",
		generation, livingCells, density, stats.Births, stats.Deaths, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | RSS: %.1f MiB | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation,
		float64(stats.MemoryUsage)/(1<<20), time.Since(stats.StartTime).Seconds())

	// Show time since last restart
	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%200 == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame reseeds the grid in place, keeping the active rules
func restartGame(sim *engine.Simulation, config utils.Config, rng *rand.Rand) {
	fmt.Printf("\n🔄 Restarting...\n")
	time.Sleep(1 * time.Second)

	if config.SeedMode == utils.SeedModeNoise {
		// A fixed seed would redraw the same landscape
		config.Seed = rng.Int64()
	}
	sim.Grid().ResetWithPatterns(config, rng)

	fmt.Printf("✨ New patterns loaded! Living cells: %d\n", sim.Grid().CountLivingCells())
	time.Sleep(2 * time.Second)
}
