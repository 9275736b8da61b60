//go:build ebiten

package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-lifelike/engine"
	"github.com/sheikhrachel/go-lifelike/model"
)

var (
	aliveColor = color.White
	deadColor  = color.Black
)

// Game adapts a simulation to the ebiten.Game interface.
// Only cells that changed are painted, onto a canvas that persists between frames.
type Game struct {
	sim      *engine.Simulation
	canvas   *ebiten.Image
	cellSize int
	paused   bool
}

// New constructs a paused Game drawing each cell as a cellSize square
func New(sim *engine.Simulation, cellSize int) *Game {
	g := &Game{
		sim:      sim,
		cellSize: cellSize,
		paused:   true,
		canvas: ebiten.NewImage(
			sim.Grid().Width()*cellSize,
			sim.Grid().Height()*cellSize,
		),
	}
	g.redraw()
	return g
}

func (g *Game) drawCell(p model.Position, alive bool) {
	clr := deadColor
	if alive {
		clr = aliveColor
	}
	// one pixel of gutter on each side
	vector.DrawFilledRect(g.canvas,
		float32(p.X*g.cellSize+1), float32(p.Y*g.cellSize+1),
		float32(g.cellSize-2), float32(g.cellSize-2),
		clr, false)
}

// redraw paints the whole grid
func (g *Game) redraw() {
	g.canvas.Fill(deadColor)
	for c := range g.sim.Grid().All() {
		if c.Alive {
			g.drawCell(c.Pos(), true)
		}
	}
}

func (g *Game) step() {
	t := g.sim.Step()
	for _, p := range t.Births {
		g.drawCell(p, true)
	}
	for _, p := range t.Deaths {
		g.drawCell(p, false)
	}
	g.sim.Release(t)
}

// Update handles input and advances the simulation when running
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		x, y := mx/g.cellSize, my/g.cellSize
		if err := g.sim.Toggle(x, y); err != nil && !errors.Is(err, model.ErrIndexOutOfBounds) {
			return err
		}
		if c, err := g.sim.Grid().Get(x, y); err == nil {
			g.drawCell(c.Pos(), c.Alive)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Clear()
		g.redraw()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) && g.paused {
		g.step()
	}

	if !g.paused {
		g.step()
	}
	return nil
}

// Draw copies the canvas to the screen
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas, nil)
}

// Layout returns the logical screen size
func (g *Game) Layout(_, _ int) (int, int) {
	return g.canvas.Bounds().Dx(), g.canvas.Bounds().Dy()
}
