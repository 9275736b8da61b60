package view

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-lifelike/engine"
	"github.com/sheikhrachel/go-lifelike/model"
	"github.com/sheikhrachel/go-lifelike/rules"
	"github.com/sheikhrachel/go-lifelike/utils"
)

const (
	viewGrid   = "grid"
	viewRules  = "rules"
	viewStatus = "status"
	viewHelp   = "help"

	leftColumnWidth = 30
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// ConsoleUI is an interactive terminal front end for a simulation.
// Every touch of the simulation happens on the gocui main loop goroutine.
type ConsoleUI struct {
	sim    *engine.Simulation
	config utils.Config
	rng    *rand.Rand
	g      *gocui.Gui
	k      []keyBinding

	paused     bool
	preset     int
	lastErr    string
	lastBirths int
	lastDeaths int

	liveFiller string
	coolFiller string
	deadFiller string
}

// NewConsoleUI creates the terminal UI; the simulation starts paused
func NewConsoleUI(sim *engine.Simulation, config utils.Config, rng *rand.Rand) (*ConsoleUI, error) {
	t := &ConsoleUI{
		sim:        sim,
		config:     config,
		rng:        rng,
		paused:     true,
		preset:     -1,
		liveFiller: aurora.Green("█").String(),
		coolFiller: aurora.Gray(8, "▒").String(),
		deadFiller: " ",
	}

	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, errors.Wrap(err, "[NewConsoleUI] failed to open terminal")
	}
	t.g = g
	t.g.Mouse = true

	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'q', "Q", "Exit", t.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "Pause/resume", t.cmdPause, ""},
		{'s', "S", "Step (paused)", t.cmdStep, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'w', "W", "Randomize", t.cmdRandomize, ""},
		{'p', "P", "Next preset", t.cmdNextPreset, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", t.cmdMouseClick, viewGrid},
	}
	t.g.SetManagerFunc(t.layout)

	if err = t.initKeyBindings(); err != nil {
		t.g.Close()
		return nil, err
	}
	return t, nil
}

func (t *ConsoleUI) initKeyBindings() error {
	for _, kb := range t.k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			return errors.Wrapf(err, "[initKeyBindings] key %s", kb.name)
		}
	}
	return nil
}

// Start runs the UI until the user quits
func (t *ConsoleUI) Start() error {
	defer t.g.Close()

	done := make(chan struct{})
	defer close(done)
	go t.tick(done)

	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return errors.Wrap(err, "[Start]")
	}
	return nil
}

// tick requests a step every frame; the step itself runs on the UI goroutine
func (t *ConsoleUI) tick(done <-chan struct{}) {
	ticker := time.NewTicker(t.config.FrameRate)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			t.g.Update(func(_ *gocui.Gui) error {
				if !t.paused {
					t.step()
				}
				return nil
			})
		}
	}
}

func (t *ConsoleUI) step() {
	tr := t.sim.Step()
	t.lastBirths, t.lastDeaths = len(tr.Births), len(tr.Deaths)
	t.sim.Release(tr)
	t.refresh()
}

func (t *ConsoleUI) refresh() {
	t.renderField()
	t.renderRules()
	t.renderStatus()
}

func (t *ConsoleUI) renderField() {
	v, err := t.g.View(viewGrid)
	if err != nil {
		return
	}
	v.Clear()

	grid := t.sim.Grid()
	maxW, maxH := v.Size()
	crop := cropped(grid.Width(), grid.Height(), maxW, maxH)

	var b bytes.Buffer
	for y, row := range grid.Rows() {
		if y >= maxH {
			break
		}
		if y != 0 {
			b.WriteByte('\n')
		}
		if crop && y == maxH-1 {
			b.WriteString(aurora.Red("The grid is larger than the viewing area").String())
			break
		}
		for x := range row {
			if x >= maxW {
				break
			}
			switch {
			case row[x].Alive:
				b.WriteString(t.liveFiller)
			case row[x].Refractory > 0:
				b.WriteString(t.coolFiller)
			default:
				b.WriteString(t.deadFiller)
			}
		}
	}
	_, _ = fmt.Fprint(v, b.String())
}

func (t *ConsoleUI) renderRules() {
	v, err := t.g.View(viewRules)
	if err != nil {
		return
	}
	v.Clear()
	rs := t.sim.Rules()
	_, _ = fmt.Fprintln(v, renderProp("Rule", "%v", rs.String()))
	_, _ = fmt.Fprintln(v, renderProp("Birth", "%v", rs.Birth()))
	_, _ = fmt.Fprintln(v, renderProp("Survival", "%v", rs.Survival()))
	_, _ = fmt.Fprintln(v, renderProp("Refractory", "%v", rs.RefractoryLength()))
	_, _ = fmt.Fprintln(v, renderProp("Dimension", "%v x %v", t.sim.Grid().Width(), t.sim.Grid().Height()))
	if t.lastErr != "" {
		_, _ = fmt.Fprintln(v, " "+aurora.Red(t.lastErr).String())
	}
}

func (t *ConsoleUI) renderStatus() {
	v, err := t.g.View(viewStatus)
	if err != nil {
		return
	}
	v.Clear()
	mode := aurora.Cyan("running").String()
	if t.paused {
		mode = aurora.Blue("paused").String()
	}
	_, _ = fmt.Fprintln(v, renderProp("Generation", "%v", t.sim.Generation()))
	_, _ = fmt.Fprintln(v, renderProp("Live cells", "%v", t.sim.Grid().CountLivingCells()))
	_, _ = fmt.Fprintln(v, renderProp("Births", "%v", t.lastBirths))
	_, _ = fmt.Fprintln(v, renderProp("Deaths", "%v", t.lastDeaths))
	_, _ = fmt.Fprintln(v, renderProp("Mode", "%v", mode))
}

func renderProp(name string, valueFormat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Green(name).String()+": "+valueFormat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	middle := (maxY - 3) / 2

	if v, err := g.SetView(viewRules, 0, 0, leftColumnWidth, middle); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Rules"
	}
	if v, err := g.SetView(viewStatus, 0, middle+1, leftColumnWidth, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
	}
	if v, err := g.SetView(viewGrid, leftColumnWidth+1, 0, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Grid"
	}
	if v, err := g.SetView(viewHelp, -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	t.refresh()
	return nil
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdPause(_ *gocui.View) error {
	t.paused = !t.paused
	t.renderStatus()
	return nil
}

func (t *ConsoleUI) cmdStep(_ *gocui.View) error {
	if t.paused {
		t.step()
	}
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.sim.Clear()
	t.lastBirths, t.lastDeaths = 0, 0
	t.refresh()
	return nil
}

func (t *ConsoleUI) cmdRandomize(_ *gocui.View) error {
	t.sim.Grid().Randomize(t.config.RandomDensity, t.rng)
	t.refresh()
	return nil
}

func (t *ConsoleUI) cmdNextPreset(_ *gocui.View) error {
	presets := rules.Presets()
	t.preset = (t.preset + 1) % len(presets)
	t.lastErr = ""
	if err := t.sim.Configure(presets[t.preset].Name); err != nil {
		t.lastErr = err.Error()
	}
	t.renderRules()
	return nil
}

// cropped reports whether a gridW x gridH grid overflows a viewW x viewH view
func cropped(gridW, gridH, viewW, viewH int) bool {
	return gridW > viewW || gridH > viewH
}

// clickable reports whether row y of the view shows grid cells.
// A cropped view spends its last row on the overflow notice.
func clickable(gridW, gridH, viewW, viewH, y int) bool {
	return !cropped(gridW, gridH, viewW, viewH) || y < viewH-1
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	grid := t.sim.Grid()
	maxW, maxH := v.Size()
	if !clickable(grid.Width(), grid.Height(), maxW, maxH, cy+oy) {
		return nil
	}
	// Clicks past the grid edge land in the view's padding
	if err := t.sim.Toggle(cx+ox, cy+oy); err != nil && !errors.Is(err, model.ErrIndexOutOfBounds) {
		return err
	}
	t.renderField()
	return nil
}
