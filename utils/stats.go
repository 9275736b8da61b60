package utils

import (
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	MemoryUsage          uint64 // resident set size in bytes, 0 when unavailable
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	ActiveCells          int
	Births               int
	Deaths               int

	proc *process.Process
}

func NewStats() *Stats {
	s := &Stats{StartTime: time.Now()}
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		s.proc = p
	}
	return s
}

// Update records one generation: its population, how many cells flipped, and how long it took
func (s *Stats) Update(generation, population, births, deaths int, duration time.Duration) {
	s.TotalGenerations = generation
	s.ActiveCells = population
	s.Births = births
	s.Deaths = deaths
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}

	if s.proc != nil {
		if mem, err := s.proc.MemoryInfo(); err == nil {
			s.MemoryUsage = mem.RSS
		}
	}
}
