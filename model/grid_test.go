package model

import (
	"testing"

	"github.com/pkg/errors"
)

func mustGrid(t testing.TB, w, h int) *Grid {
	t.Helper()
	g, err := NewGrid(w, h)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", w, h, err)
	}
	return g
}

func TestNewGridRejectsBadDimensions(t *testing.T) {
	for _, size := range [][2]int{{0, 3}, {3, 0}, {-1, 5}} {
		if _, err := NewGrid(size[0], size[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("NewGrid(%d, %d) err=%v, expected ErrInvalidDimensions", size[0], size[1], err)
		}
	}
}

func TestCellPositions(t *testing.T) {
	g := mustGrid(t, 4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			c, err := g.Get(x, y)
			if err != nil {
				t.Fatalf("Get(%d,%d): %v", x, y, err)
			}
			if cx, cy := c.Position(); cx != x || cy != y {
				t.Fatalf("cell at (%d,%d) reports position (%d,%d)", x, y, cx, cy)
			}
		}
	}
}

func TestNeighborsWrap(t *testing.T) {
	g := mustGrid(t, 5, 4)
	corners := [][2]int{{0, 0}, {4, 3}, {4, 0}, {0, 3}, {2, 1}}

	for _, pos := range corners {
		nb := g.Neighbors(pos[0], pos[1])
		seen := map[Position]bool{}
		for _, c := range nb {
			if c == nil {
				t.Fatalf("nil neighbor for (%d,%d)", pos[0], pos[1])
			}
			p := c.Pos()
			if p == (Position{X: pos[0], Y: pos[1]}) {
				t.Fatalf("(%d,%d) listed as its own neighbor", pos[0], pos[1])
			}
			seen[p] = true
		}
		if len(seen) != 8 {
			t.Fatalf("(%d,%d) has %d distinct neighbors, expected 8", pos[0], pos[1], len(seen))
		}
	}

	nb := g.Neighbors(0, 0)
	expects := map[Position]bool{
		{4, 3}: true, {0, 3}: true, {1, 3}: true,
		{4, 0}: true, {1, 0}: true,
		{4, 1}: true, {0, 1}: true, {1, 1}: true,
	}
	for _, c := range nb {
		if !expects[c.Pos()] {
			t.Fatalf("unexpected neighbor %v of (0,0)", c.Pos())
		}
	}
}

func TestAliveNeighborCount(t *testing.T) {
	g := mustGrid(t, 3, 3)
	if n := g.AliveNeighborCount(1, 1); n != 0 {
		t.Fatalf("empty grid count=%d, expected 0", n)
	}

	for c := range g.All() {
		c.Alive = true
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if n := g.AliveNeighborCount(x, y); n != 8 {
				t.Fatalf("full 3x3 count at (%d,%d)=%d, expected 8", x, y, n)
			}
		}
	}

	g.Clear()
	_ = g.SetAlive(2, 2, true)
	_ = g.SetAlive(1, 0, true)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := 0
			for _, c := range g.Neighbors(x, y) {
				if c.Alive {
					want++
				}
			}
			if n := g.AliveNeighborCount(x, y); n != want {
				t.Fatalf("count at (%d,%d)=%d, neighbors say %d", x, y, n, want)
			}
		}
	}
	// (0,0) sees (2,2) across both edges and (1,0) beside it
	if n := g.AliveNeighborCount(0, 0); n != 2 {
		t.Fatalf("count at (0,0)=%d, expected 2", n)
	}
}

func TestAccessorsOutOfBounds(t *testing.T) {
	g := mustGrid(t, 3, 2)
	bad := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {10, 10}}
	for _, pos := range bad {
		if _, err := g.Get(pos[0], pos[1]); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Fatalf("Get(%d,%d) err=%v, expected ErrIndexOutOfBounds", pos[0], pos[1], err)
		}
		if err := g.SetAlive(pos[0], pos[1], true); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Fatalf("SetAlive(%d,%d) err=%v, expected ErrIndexOutOfBounds", pos[0], pos[1], err)
		}
		if err := g.Toggle(pos[0], pos[1]); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Fatalf("Toggle(%d,%d) err=%v, expected ErrIndexOutOfBounds", pos[0], pos[1], err)
		}
	}
	if n := g.CountLivingCells(); n != 0 {
		t.Fatalf("failed accessors changed the grid: %d living cells", n)
	}
}

func TestToggleAndSetAlive(t *testing.T) {
	g := mustGrid(t, 3, 3)
	if err := g.Toggle(1, 2); err != nil {
		t.Fatal(err)
	}
	c, _ := g.Get(1, 2)
	if !c.Alive {
		t.Fatal("toggled cell should be alive")
	}
	c.Toggle()
	if c.Alive {
		t.Fatal("cell toggled twice should be dead")
	}
	if err := g.SetAlive(0, 1, true); err != nil {
		t.Fatal(err)
	}
	if got := g.String(); got != "000\n100\n000\n" {
		t.Fatalf("String()=%q", got)
	}
}

func TestClearIdempotent(t *testing.T) {
	g := mustGrid(t, 4, 4)
	g.AddBlock(1, 1)
	c, _ := g.Get(0, 0)
	c.Refractory = 3

	g.Clear()
	once := g.String()
	g.Clear()
	if twice := g.String(); twice != once {
		t.Fatalf("second Clear changed the grid: %q vs %q", twice, once)
	}
	if once != "0000\n0000\n0000\n0000\n" {
		t.Fatalf("cleared grid=%q", once)
	}
	for c := range g.All() {
		if c.Alive || c.Refractory != 0 {
			x, y := c.Position()
			t.Fatalf("cell (%d,%d) not fresh after Clear: %+v", x, y, *c)
		}
	}
	if g.Width() != 4 || g.Height() != 4 {
		t.Fatalf("Clear resized grid to %dx%d", g.Width(), g.Height())
	}
}

func TestStringFreshGrid(t *testing.T) {
	g := mustGrid(t, 3, 3)
	g.Clear()
	if got := g.String(); got != "000\n000\n000\n" {
		t.Fatalf("String()=%q, expected %q", got, "000\n000\n000\n")
	}
}

func TestAllRowMajorAndRestartable(t *testing.T) {
	g := mustGrid(t, 3, 2)
	for pass := 0; pass < 2; pass++ {
		i := 0
		for c := range g.All() {
			if p := c.Pos(); p.X != i%3 || p.Y != i/3 {
				t.Fatalf("pass %d: item %d at %v, expected row-major order", pass, i, p)
			}
			i++
		}
		if i != 6 {
			t.Fatalf("pass %d yielded %d cells, expected 6", pass, i)
		}
	}

	// early break stops the sequence
	n := 0
	for range g.All() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("break after 2 yielded %d", n)
	}
}
