package matching

import "time"

func (w TimeWindow) Duration() time.Duration {
	if !w.End.After(w.Start) {
		return 0
	}
	return w.End.Sub(w.Start)
}

func totalDuration(windows []TimeWindow) time.Duration {
	var sum time.Duration
	for _, w := range windows {
		sum += w.Duration()
	}
	return sum
}

// overlapDuration sums the pairwise intersection of the job's required
// windows with the candidate's availability windows.
func overlapDuration(required, available []TimeWindow) time.Duration {
	var sum time.Duration
	for _, r := range required {
		for _, a := range available {
			start := r.Start
			if a.Start.After(start) {
				start = a.Start
			}
			end := r.End
			if a.End.Before(end) {
				end = a.End
			}
			if end.After(start) {
				sum += end.Sub(start)
			}
		}
	}
	return sum
}
