package matching

import (
	"fmt"
	"math"
)

const flexibleScheduleBonus = 0.15

// TimeScore scores availability overlap against the job's required
// windows, discounted by timezone distance. A difference of up to three
// hours carries no penalty; the penalty grows linearly and saturates at
// a 24-hour difference.
func (jc *JobContext) TimeScore(p FreelancerProfile) AxisScore {
	if len(jc.Job.Schedule.Windows) == 0 {
		return AxisScore{Score: 0.8, Reason: "Job has no specific time requirements."}
	}

	overlapRatio := 0.0
	if jc.requiredDuration > 0 {
		overlapRatio = Clamp01(float64(overlapDuration(jc.Job.Schedule.Windows, p.Availability)) / float64(jc.requiredDuration))
	}

	tzDiff := math.Abs(float64(p.TimezoneOffset - jc.Job.TimezoneOffset))
	tzPenalty := math.Max(0, (tzDiff-3)/21)
	score := overlapRatio * (1 - tzPenalty)

	if jc.Job.Schedule.Type == ScheduleFlexible {
		score = math.Min(1.0, score+flexibleScheduleBonus)
	}

	return AxisScore{
		Score:  Clamp01(score),
		Reason: fmt.Sprintf("Overlap ratio: %.2f, TZ penalty: %.2f", overlapRatio, tzPenalty),
	}
}
