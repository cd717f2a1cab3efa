package model

// Schedule is a simulated annealing temperature schedule. The
// temperature never rises and never drops below Min.
type Schedule struct {
	Temperature float64
	Min         float64
	Rate        float64
	Decrease    int
}

func NewSchedule(max, min, rate float64, decrease int) *Schedule {
	return &Schedule{
		Temperature: max,
		Min:         min,
		Rate:        rate,
		Decrease:    decrease,
	}
}

// Step is called after sweep iter (counting from 0). Every Decrease
// sweeps the temperature is multiplied by Rate unless that would take
// it below Min or above its current value.
func (s *Schedule) Step(iter int) {
	if iter%s.Decrease != 0 {
		return
	}
	next := s.Temperature * s.Rate
	if next >= s.Min && next <= s.Temperature {
		s.Temperature = next
	}
}
