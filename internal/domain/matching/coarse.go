package matching

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

// CandidateEstimate is one coarsely ranked candidate produced by the
// generation stage.
type CandidateEstimate struct {
	CandidateID uuid.UUID
	ApproxScore float64
}

// Coarse per-axis estimates. Each one is an optimistic completion of the
// corresponding detailed formula: components unknown at this stage are
// assumed maximal, so every estimate is a non-strict upper bound on the
// detailed score and no true top candidate can be ranked out of the pool
// before the detailed stage sees it.

func (jc *JobContext) coarseTimeScore() float64 {
	// True interval overlap is deferred to the detailed stage.
	return 1.0
}

func (jc *JobContext) coarsePlaceScore(p FreelancerProfile) float64 {
	if jc.Job.LocationPolicy == PolicyRemote {
		if p.RemoteOK {
			return 1.0
		}
		return 0.1
	}
	// Onsite and hybrid stay optimistic pending the precise distance check.
	return 1.0
}

func (jc *JobContext) coarseCostScore(p FreelancerProfile) float64 {
	// The detailed falloff is plain arithmetic, so the coarse stage uses
	// it directly; a flat penalty would undercut near-ceiling candidates.
	return jc.CostScore(p).Score
}

func (jc *JobContext) coarseExperienceScore(p FreelancerProfile) float64 {
	// Skill overlap is cheap to precompute; domain years, seniority and
	// the certification bonus are assumed maximal (0.3 + 0.2 + 0.15).
	return math.Min(1.0, 0.5*jc.SkillOverlap(p)+0.65)
}

// ApproxScore combines the coarse per-axis estimates with the resolved
// weights into the approximate rank used to bound the candidate pool.
func (jc *JobContext) ApproxScore(p FreelancerProfile, w AxisWeights) float64 {
	sum := w.Sum()
	if sum <= 0 {
		return 0
	}
	weighted := w.Time*jc.coarseTimeScore() +
		w.Place*jc.coarsePlaceScore(p) +
		w.Cost*jc.coarseCostScore(p) +
		w.Experience*jc.coarseExperienceScore(p)
	return Clamp01(weighted / sum)
}

// GenerateCandidates is the coarse stage: it drops every candidate that
// fails any mandatory requirement, ranks the survivors by approximate
// score and returns the best poolSize of them, descending. Hard-filter
// failures are permanent; the detailed stage never re-admits them.
func (jc *JobContext) GenerateCandidates(population []FreelancerProfile, w AxisWeights, poolSize int) []CandidateEstimate {
	if poolSize <= 0 {
		poolSize = 200
	}

	estimates := make([]CandidateEstimate, 0, len(population))
	for _, p := range population {
		if !SatisfiesAll(p, jc.Job.Requirements) {
			continue
		}
		estimates = append(estimates, CandidateEstimate{
			CandidateID: p.ID,
			ApproxScore: jc.ApproxScore(p, w),
		})
	}

	sort.Slice(estimates, func(i, j int) bool {
		if estimates[i].ApproxScore != estimates[j].ApproxScore {
			return estimates[i].ApproxScore > estimates[j].ApproxScore
		}
		return estimates[i].CandidateID.String() < estimates[j].CandidateID.String()
	})

	if len(estimates) > poolSize {
		estimates = estimates[:poolSize]
	}
	return estimates
}
