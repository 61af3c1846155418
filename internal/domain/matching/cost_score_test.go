package matching

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func costJob(floor, ceiling float64) *JobContext {
	return NewJobContext(Job{BudgetFloor: floor, BudgetCeiling: ceiling})
}

func TestCostScore_WithinBudget(t *testing.T) {
	res := costJob(80, 120).CostScore(FreelancerProfile{HourlyRate: 100})
	if res.Score != 1.0 {
		t.Fatalf("expected 1.0, got %v", res.Score)
	}
}

func TestCostScore_AtCeiling(t *testing.T) {
	res := costJob(80, 120).CostScore(FreelancerProfile{HourlyRate: 120})
	if res.Score != 1.0 {
		t.Fatalf("expected 1.0 at ceiling, got %v", res.Score)
	}
}

func TestCostScore_DoubleCeiling(t *testing.T) {
	res := costJob(80, 100).CostScore(FreelancerProfile{HourlyRate: 200})
	if !almostEqual(res.Score, 0.5) {
		t.Fatalf("expected exactly 0.5 at double the ceiling, got %v", res.Score)
	}
}

func TestCostScore_TripleCeiling(t *testing.T) {
	res := costJob(80, 100).CostScore(FreelancerProfile{HourlyRate: 300})
	if !almostEqual(res.Score, 1.0/3.0) {
		t.Fatalf("expected exactly 1/3 at triple the ceiling, got %v", res.Score)
	}
}

func TestCostScore_UnderFloor(t *testing.T) {
	res := costJob(80, 120).CostScore(FreelancerProfile{HourlyRate: 70})
	if res.Score != 0.95 {
		t.Fatalf("expected 0.95 under the floor, got %v", res.Score)
	}
}

func TestCostScore_UnknownRate(t *testing.T) {
	res := costJob(80, 120).CostScore(FreelancerProfile{})
	if res.Score != 0.6 {
		t.Fatalf("expected 0.6 for unknown rate, got %v", res.Score)
	}
}

func TestCostScore_NoBudget(t *testing.T) {
	res := costJob(0, 0).CostScore(FreelancerProfile{HourlyRate: 100})
	if res.Score != 0.8 {
		t.Fatalf("expected 0.8 without a budget, got %v", res.Score)
	}
}

func TestCostScore_Bounds(t *testing.T) {
	rates := []float64{1, 50, 100, 150, 1000, 100000}
	jc := costJob(80, 120)
	for _, r := range rates {
		s := jc.CostScore(FreelancerProfile{HourlyRate: r}).Score
		if s < 0 || s > 1 {
			t.Fatalf("rate %v: score %v out of [0,1]", r, s)
		}
	}
}
