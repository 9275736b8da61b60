package model

// Position is a cell coordinate on the grid
type Position struct {
	X, Y int
}

// Cell is the mutable state of a single grid position
type Cell struct {
	x, y int

	Alive      bool
	Refractory int // generations left before the cell may be reborn
}

func newCell(x, y int) Cell {
	return Cell{x: x, y: y}
}

// Toggle flips the alive state of the cell
func (c *Cell) Toggle() {
	c.Alive = !c.Alive
}

// Position returns the fixed coordinates of the cell
func (c *Cell) Position() (x, y int) {
	return c.x, c.y
}

// Pos returns the coordinates of the cell as a Position
func (c *Cell) Pos() Position {
	return Position{X: c.x, Y: c.y}
}

// String renders the cell as "1" when alive and "0" otherwise
func (c *Cell) String() string {
	if c.Alive {
		return "1"
	}
	return "0"
}
