package model

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/logrusorgru/aurora"
)

const (
	gridPosBlock = "██"
	gridPosCool  = "░░"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	// Color paints living cells green and cooling cells grey
	Color bool
}

// Render returns the grid drawn with block characters, one line per row
func (r *TerminalRenderer) Render(g *Grid) string {
	var (
		b     strings.Builder
		alive = gridPosBlock
		cool  = gridPosCool
	)
	if r.Color {
		alive = aurora.Green(gridPosBlock).String()
		cool = aurora.Gray(8, gridPosCool).String()
	}

	for _, row := range g.Rows() {
		for i := range row {
			switch {
			case row[i].Alive:
				b.WriteString(alive)
			case row[i].Refractory > 0:
				b.WriteString(cool)
			default:
				b.WriteString(gridPosEmpty)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(g *Grid) {
	fmt.Print(r.Render(g))
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
