package matching

import (
	"fmt"
	"math"
)

const certificationBonus = 0.15

var seniorityScores = map[Seniority]float64{
	SeniorityJunior: 0.4,
	SeniorityMid:    0.7,
	SenioritySenior: 1.0,
	SeniorityLead:   1.0,
}

// ExperienceScore is a composite of weighted skill overlap, years in
// the job's domain, seniority tier, and a flat bonus when the candidate
// holds every certification the job marks mandatory.
func (jc *JobContext) ExperienceScore(p FreelancerProfile) AxisScore {
	skill := jc.SkillOverlap(p)

	domainYears := 0.0
	for _, d := range p.Experience {
		if d.Domain == jc.Job.Domain {
			domainYears = math.Min(1.0, d.Years/10)
			break
		}
	}

	seniority := jc.seniorityScore(p)

	bonus := 0.0
	if len(jc.mandatoryCerts) > 0 && jc.holdsAllCerts(p) {
		bonus = certificationBonus
	}

	score := math.Min(1.0, 0.5*skill+0.3*domainYears+0.2*seniority+bonus)
	return AxisScore{
		Score:  Clamp01(score),
		Reason: fmt.Sprintf("Skill overlap: %.2f, Domain years: %.2f, Seniority: %.2f", skill, domainYears, seniority),
	}
}

// seniorityScore uses the candidate's record in the job's domain when
// one exists; otherwise it falls back to the seniority of their
// highest-experience record in any domain instead of assuming junior.
func (jc *JobContext) seniorityScore(p FreelancerProfile) float64 {
	if len(p.Experience) == 0 {
		return seniorityScores[SeniorityJunior]
	}

	for _, d := range p.Experience {
		if d.Domain == jc.Job.Domain {
			return seniorityScoreFor(d.Seniority)
		}
	}

	best := p.Experience[0]
	for _, d := range p.Experience[1:] {
		if d.Years > best.Years {
			best = d
		}
	}
	return seniorityScoreFor(best.Seniority)
}

func seniorityScoreFor(s Seniority) float64 {
	if v, ok := seniorityScores[s]; ok {
		return v
	}
	return seniorityScores[SeniorityJunior]
}

func (jc *JobContext) holdsAllCerts(p FreelancerProfile) bool {
	held := make(map[string]struct{}, len(p.Certifications))
	for _, c := range p.Certifications {
		held[c] = struct{}{}
	}
	for _, c := range jc.mandatoryCerts {
		if _, ok := held[c]; !ok {
			return false
		}
	}
	return true
}
