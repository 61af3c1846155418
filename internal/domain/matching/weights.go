package matching

import (
	"errors"
	"fmt"
)

type Axis string

const (
	AxisTime       Axis = "time"
	AxisPlace      Axis = "place"
	AxisCost       Axis = "cost"
	AxisExperience Axis = "experience"
)

var ErrInvalidWeightConfig = errors.New("invalid weight configuration")

// AxisWeights is the effective per-axis weight vector for one job,
// resolved once per run and treated as read-only afterwards.
type AxisWeights struct {
	Time       float64
	Place      float64
	Cost       float64
	Experience float64
}

func (w AxisWeights) Sum() float64 {
	return w.Time + w.Place + w.Cost + w.Experience
}

// ResolveWeights layers per-job overrides on top of the global defaults
// and validates the result. A non-positive weight sum makes aggregation
// undefined, so it fails here before any scoring work starts.
func ResolveWeights(defaults, overrides map[Axis]float64) (AxisWeights, error) {
	merged := map[Axis]float64{
		AxisTime:       0,
		AxisPlace:      0,
		AxisCost:       0,
		AxisExperience: 0,
	}
	for axis, v := range defaults {
		if _, ok := merged[axis]; !ok {
			return AxisWeights{}, fmt.Errorf("%w: unknown axis %q", ErrInvalidWeightConfig, axis)
		}
		merged[axis] = v
	}
	for axis, v := range overrides {
		if _, ok := merged[axis]; !ok {
			return AxisWeights{}, fmt.Errorf("%w: unknown axis %q", ErrInvalidWeightConfig, axis)
		}
		merged[axis] = v
	}
	for axis, v := range merged {
		if v < 0 {
			return AxisWeights{}, fmt.Errorf("%w: negative weight %v for axis %q", ErrInvalidWeightConfig, v, axis)
		}
	}

	w := AxisWeights{
		Time:       merged[AxisTime],
		Place:      merged[AxisPlace],
		Cost:       merged[AxisCost],
		Experience: merged[AxisExperience],
	}
	if w.Sum() <= 0 {
		return AxisWeights{}, fmt.Errorf("%w: weight sum must be positive", ErrInvalidWeightConfig)
	}
	return w, nil
}
