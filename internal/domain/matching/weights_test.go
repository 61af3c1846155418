package matching

import (
	"errors"
	"testing"
)

func TestResolveWeights_DefaultsOnly(t *testing.T) {
	w, err := ResolveWeights(map[Axis]float64{
		AxisTime: 0.2, AxisPlace: 0.15, AxisCost: 0.3, AxisExperience: 0.35,
	}, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !almostEqual(w.Sum(), 1.0) {
		t.Fatalf("expected sum 1.0, got %v", w.Sum())
	}
}

func TestResolveWeights_OverridesLayer(t *testing.T) {
	w, err := ResolveWeights(
		map[Axis]float64{AxisTime: 0.25, AxisPlace: 0.25, AxisCost: 0.25, AxisExperience: 0.25},
		map[Axis]float64{AxisCost: 0.5},
	)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if w.Cost != 0.5 {
		t.Fatalf("expected override 0.5, got %v", w.Cost)
	}
	if w.Time != 0.25 {
		t.Fatalf("expected default 0.25 kept, got %v", w.Time)
	}
}

func TestResolveWeights_ZeroSumFails(t *testing.T) {
	_, err := ResolveWeights(map[Axis]float64{}, nil)
	if !errors.Is(err, ErrInvalidWeightConfig) {
		t.Fatalf("expected ErrInvalidWeightConfig, got %v", err)
	}
}

func TestResolveWeights_NegativeWeightFails(t *testing.T) {
	_, err := ResolveWeights(map[Axis]float64{AxisTime: -1, AxisCost: 2}, nil)
	if !errors.Is(err, ErrInvalidWeightConfig) {
		t.Fatalf("expected ErrInvalidWeightConfig, got %v", err)
	}
}

func TestResolveWeights_UnknownAxisFails(t *testing.T) {
	_, err := ResolveWeights(map[Axis]float64{"speed": 1}, nil)
	if !errors.Is(err, ErrInvalidWeightConfig) {
		t.Fatalf("expected ErrInvalidWeightConfig, got %v", err)
	}
}
