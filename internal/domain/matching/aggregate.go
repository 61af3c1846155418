package matching

import "sort"

// Aggregate combines a candidate's axis scores with the resolved weights
// into the final score. The resolver guarantees a positive weight sum;
// a zero sum still resolves to 0 rather than dividing by zero.
func Aggregate(w AxisWeights, b Breakdown) float64 {
	sum := w.Sum()
	if sum <= 0 {
		return 0
	}
	weighted := w.Time*b.Time.Score +
		w.Place*b.Place.Score +
		w.Cost*b.Cost.Score +
		w.Experience*b.Experience.Score
	return Clamp01(weighted / sum)
}

// SortResults orders match results descending by final score with a
// deterministic tie-break on candidate id, so reruns over unchanged
// data produce identical rankings.
func SortResults(results []MatchResult) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].FinalScore != results[j].FinalScore {
			return results[i].FinalScore > results[j].FinalScore
		}
		return results[i].CandidateID.String() < results[j].CandidateID.String()
	})
}
