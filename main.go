package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"

	"github.com/sheikhrachel/go-lifelike/engine"
	"github.com/sheikhrachel/go-lifelike/model"
	"github.com/sheikhrachel/go-lifelike/rules"
	"github.com/sheikhrachel/go-lifelike/utils"
	"github.com/sheikhrachel/go-lifelike/view"
)

const defaultConfigFile = "config.json"

// overrides holds command line values; zero values leave the config untouched
type overrides struct {
	configFile  string
	width       int
	height      int
	rule        string
	interval    time.Duration
	maxSteps    int
	seed        int64
	noise       bool
	sequential  bool
	interactive bool
	listRules   bool
}

func parseFlags() overrides {
	o := overrides{configFile: defaultConfigFile}

	presetNames := make([]string, 0, len(rules.Presets()))
	for _, p := range rules.Presets() {
		presetNames = append(presetNames, p.Name)
	}

	flaggy.SetName("go-lifelike")
	flaggy.SetDescription("Life-like cellular automaton on a toroidal grid")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&o.configFile, "c", "config", "Path to the JSON configuration file")
	flaggy.Int(&o.width, "x", "width", "Width of the grid")
	flaggy.Int(&o.height, "y", "height", "Height of the grid")
	flaggy.String(&o.rule, "r", "rule", "Rule as B<digits>/S<digits>[/<n>] or a preset ["+strings.Join(presetNames, "|")+"]")
	flaggy.Duration(&o.interval, "i", "interval", "Interval between steps, for example 150ms")
	flaggy.Int(&o.maxSteps, "s", "maxSteps", "Stop after maxSteps generations")
	flaggy.Int64(&o.seed, "", "seed", "Seed for the initial board")
	flaggy.Bool(&o.noise, "", "noise", "Seed the board with perlin noise instead of uniform random cells")
	flaggy.Bool(&o.sequential, "", "sequential", "Compute each generation on a single goroutine")
	flaggy.Bool(&o.interactive, "n", "interactive", "Start the interactive terminal UI")
	flaggy.Bool(&o.listRules, "l", "list-rules", "Print the rule presets and exit")
	flaggy.Parse()

	return o
}

func (o overrides) apply(config *utils.Config) {
	if o.width > 0 {
		config.Width = o.width
	}
	if o.height > 0 {
		config.Height = o.height
	}
	if o.rule != "" {
		config.Rule = o.rule
	}
	if o.interval > 0 {
		config.FrameRate = o.interval
	}
	if o.maxSteps > 0 {
		config.MaxGenerations = o.maxSteps
	}
	if o.seed != 0 {
		config.Seed = o.seed
	}
	if o.noise {
		config.SeedMode = utils.SeedModeNoise
	}
	if o.sequential {
		config.UseParallel = false
	}
	if o.interactive {
		config.Interactive = true
	}
}

func printPresets() {
	for _, p := range rules.Presets() {
		fmt.Printf("  %-14s %s\n", aurora.Green(p.Name), p.Rule)
	}
}

func main() {
	flags := parseFlags()
	if flags.listRules {
		printPresets()
		return
	}

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(flags.configFile)
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}
	flags.apply(&config)
	if err = config.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
		os.Exit(2)
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewPCG(uint64(config.Seed), 0))

	sim, renderer, stats, err := initializeGame(config, rng)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
		os.Exit(1)
	}

	if config.Interactive {
		ui, err := view.NewConsoleUI(sim, config, rng)
		if err != nil {
			fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
			os.Exit(1)
		}
		if err = ui.Start(); err != nil {
			fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
			os.Exit(1)
		}
		return
	}

	displayGameInfo(config, sim)
	run(sim, renderer, stats, config, rng)
}

// run drives the automatic loop until Ctrl+C or the generation limit
func run(
	sim *engine.Simulation,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
	config utils.Config,
	rng *rand.Rand,
) {
	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var (
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
		last           *engine.Transition
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				sim.Generation(), time.Since(stats.StartTime).Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			sim.Release(last)
			return
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		renderer.Clear()

		generation := sim.Generation()
		livingCells, density, status, isStagnant := updateGameState(sim, last, lastFrameTime, stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(livingCells, density, status, stats, generation, lastRestartGen)
		renderer.Display(sim.Grid())

		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			break
		}

		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, generation, config)
		if shouldRestart && config.AutoRestart {
			fmt.Printf("🔄 Restarting due to %s...\n", restartReason)
			restartGame(sim, config, rng)
			lastRestartGen = generation
			stagnantCount = 0
		} else if stagnantCount >= 2 && stagnantCount < config.StagnationThreshold {
			// Inject some life to try to break the stagnation
			sim.Grid().InjectRandomLife(config.InjectionCount, rng)
		}

		sim.Release(last)
		last = sim.Step()

		// Wait before next frame
		time.Sleep(config.FrameRate)
	}
	sim.Release(last)
}
