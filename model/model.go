package model

import (
	"errors"
	"fmt"
)

var (
	ErrBadHyperparameter = errors.New("model: hyperparameters must be positive")
	ErrBadSchedule       = errors.New("model: invalid annealing schedule")
	ErrUnknownWord       = errors.New("model: word has no admissible tag")
	ErrNoBoundary        = errors.New("model: token sequence must start and end with a boundary")
	ErrGoldLength        = errors.New("model: gold standard length differs from corpus")
	ErrGoldAlignment     = errors.New("model: gold standard boundaries not aligned with corpus")
	ErrCountsShape       = errors.New("model: saved count tables do not fit the corpus")
)

// Options configures a BHMM sampler.
type Options struct {
	// transition Dirichlet concentration
	Alpha float64
	// emission Dirichlet concentration
	Beta float64
	// initial temperature
	MaxTemp float64
	// temperature floor
	MinTemp float64
	// multiplicative temperature decay
	Rate float64
	// number of sweeps between temperature updates
	Decrease int
	// number of sweeps between progress reports, 0 reports only the last sweep
	Debug int
	// random seed, 0 seeds from the clock
	Seed int64
	// called with every progress report
	OnProgress func(Progress)
}

func (o *Options) validate() error {
	if !(o.Alpha > 0) || !(o.Beta > 0) {
		return fmt.Errorf("%w: alpha %v, beta %v", ErrBadHyperparameter, o.Alpha, o.Beta)
	}
	if !(o.MinTemp > 0) || o.MaxTemp < o.MinTemp || !(o.Rate > 0) || o.Decrease <= 0 {
		return fmt.Errorf("%w: max %v, min %v, rate %v, decrease %d",
			ErrBadSchedule, o.MaxTemp, o.MinTemp, o.Rate, o.Decrease)
	}
	if o.Debug < 0 {
		return fmt.Errorf("%w: debug interval %d", ErrBadSchedule, o.Debug)
	}
	return nil
}

// Progress is the state of the sampler after a sweep.
type Progress struct {
	Iteration   int
	Accuracy    float64
	Likelihood  float64
	VI          float64
	Temperature float64
}
