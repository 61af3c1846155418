package matching

import (
	"fmt"
	"math"
)

// hybridFalloffKm is the fixed distance scale used by the hybrid onsite
// component instead of the job's own radius.
const hybridFalloffKm = 200.0

// PlaceScore branches on the job's location policy. Onsite scoring uses
// the great-circle distance from the job to the candidate's nearest
// location with a linear falloff that reaches zero at three times the
// acceptance radius.
func (jc *JobContext) PlaceScore(p FreelancerProfile) AxisScore {
	job := jc.Job

	if job.LocationPolicy == PolicyRemote {
		if p.RemoteOK {
			return AxisScore{Score: 1.0, Reason: "Remote policy"}
		}
		return AxisScore{Score: 0.0, Reason: "Remote policy"}
	}

	if job.Location == nil || len(p.Locations) == 0 {
		return AxisScore{Score: 0.1, Reason: "Missing location data for onsite/hybrid job"}
	}

	distKm, _ := nearestDistanceKm(*job.Location, p.Locations)

	switch job.LocationPolicy {
	case PolicyOnsite:
		score := 1.0
		if distKm > job.RadiusKm {
			if job.RadiusKm > 0 {
				score = math.Max(0, 1-(distKm-job.RadiusKm)/(job.RadiusKm*2))
			} else {
				score = 0
			}
		}
		return AxisScore{
			Score:  Clamp01(score),
			Reason: fmt.Sprintf("Onsite policy, distance %.2fkm", distKm),
		}
	case PolicyHybrid:
		remotePart := 0.0
		if p.RemoteOK {
			remotePart = 0.6
		}
		onsitePart := math.Max(0, 1-distKm/hybridFalloffKm)
		return AxisScore{
			Score:  Clamp01(remotePart + 0.4*onsitePart),
			Reason: fmt.Sprintf("Hybrid policy, remote ok: %t, dist: %.2fkm", p.RemoteOK, distKm),
		}
	default:
		return AxisScore{Score: 0.0, Reason: fmt.Sprintf("Unknown location policy %q", job.LocationPolicy)}
	}
}
