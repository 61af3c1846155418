package matching

import "fmt"

// CostScore compares the candidate's hourly rate against the job's
// budget band. Rates over the ceiling fall off non-linearly (half score
// at double the ceiling, a third at triple); rates under the floor take
// a small flat penalty since under-pricing is low risk.
func (jc *JobContext) CostScore(p FreelancerProfile) AxisScore {
	rate := p.HourlyRate
	floor := jc.Job.BudgetFloor
	ceiling := jc.Job.BudgetCeiling

	if rate <= 0 {
		return AxisScore{Score: 0.6, Reason: "Unknown rate"}
	}
	if ceiling <= 0 {
		return AxisScore{Score: 0.8, Reason: "Job has no defined budget"}
	}

	switch {
	case rate >= floor && rate <= ceiling:
		return AxisScore{Score: 1.0, Reason: "Rate is within budget"}
	case rate > ceiling:
		ratio := (rate - ceiling) / ceiling
		return AxisScore{
			Score:  Clamp01(1 / (1 + ratio)),
			Reason: fmt.Sprintf("Rate is %.0f%% over budget", ratio*100),
		}
	default:
		return AxisScore{Score: 0.95, Reason: "Rate is below budget floor"}
	}
}
