package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	Births               int
	Deaths               int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation that took duration to compute and display
func (s *Stats) Update(population, births, deaths int, duration time.Duration) {
	s.Births += births
	s.Deaths += deaths
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Reset starts counting again, used when the board is regenerated
func (s *Stats) Reset() {
	*s = Stats{StartTime: time.Now()}
}
