package utils

import (
	"math"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 10, 4, 100*time.Millisecond)
	if s.AveragePopulation != 100 {
		t.Fatalf("first average=%v, expected 100", s.AveragePopulation)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Fatalf("gen/sec=%v, expected 10", s.GenerationsPerSecond)
	}

	s.Update(2, 200, 3, 1, 0)
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Fatalf("moving average=%v, expected 110", s.AveragePopulation)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Fatal("zero duration should keep the previous rate")
	}
	if s.TotalGenerations != 2 || s.ActiveCells != 200 || s.Births != 3 || s.Deaths != 1 {
		t.Fatalf("stats=%+v", *s)
	}
}
