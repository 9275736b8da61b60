package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
)

// historySize is how many recent states are kept to detect cycles
const historySize = 5

// Hash returns an MD5 digest of the current grid state, refractory counters included
func (g *Grid) Hash() string {
	var (
		h   = md5.New()
		buf [binary.MaxVarintLen64 + 1]byte
	)
	for c := range g.All() {
		buf[0] = 0
		if c.Alive {
			buf[0] = 1
		}
		n := binary.PutUvarint(buf[1:], uint64(c.Refractory))
		h.Write(buf[:n+1])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds current state to history and maintains size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.Hash())
	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
}

// IsStagnant reports whether the grid matches one of the last three recorded states,
// i.e. it is static or oscillating with period 2 or 3
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	current := g.Hash()
	for i := 1; i <= 3; i++ {
		if g.history[len(g.history)-i] == current {
			return true
		}
	}
	return false
}
