package matching

import (
	"time"

	"github.com/google/uuid"
)

// JobContext carries the job plus every job-derived intermediate value
// the scorers need. It is computed once per match run and shared
// read-only across all candidate scorings.
type JobContext struct {
	Job Job

	requiredDuration  time.Duration
	importanceBySkill map[uuid.UUID]int
	maxSkillScore     float64
	mandatoryCerts    []string
}

func NewJobContext(job Job) *JobContext {
	jc := &JobContext{
		Job:               job,
		requiredDuration:  totalDuration(job.Schedule.Windows),
		importanceBySkill: make(map[uuid.UUID]int, len(job.RequiredSkills)),
	}
	for _, rs := range job.RequiredSkills {
		if rs.SkillID == uuid.Nil || rs.Importance <= 0 {
			continue
		}
		jc.importanceBySkill[rs.SkillID] = rs.Importance
		jc.maxSkillScore += float64(rs.Importance)
	}
	for _, r := range job.Requirements {
		if r.Kind == RequirementCert {
			jc.mandatoryCerts = append(jc.mandatoryCerts, r.Value)
		}
	}
	return jc
}

// SkillOverlap is the weighted overlap between the candidate's skill
// proficiencies and the job's required skills, normalized to [0,1] by
// the maximum possible score. A job with no scorable required skills
// resolves to 0 rather than dividing by zero.
func (jc *JobContext) SkillOverlap(p FreelancerProfile) float64 {
	if jc.maxSkillScore <= 0 {
		return 0
	}
	var sum float64
	for _, sl := range p.Skills {
		imp, ok := jc.importanceBySkill[sl.SkillID]
		if !ok {
			continue
		}
		prof := clamp(float64(sl.Proficiency), 0, 100) / 100
		sum += prof * float64(imp)
	}
	return Clamp01(sum / jc.maxSkillScore)
}

// ScoreCandidate runs all four detailed axis scorers for one profile.
func (jc *JobContext) ScoreCandidate(p FreelancerProfile) Breakdown {
	return Breakdown{
		Time:       jc.TimeScore(p),
		Place:      jc.PlaceScore(p),
		Cost:       jc.CostScore(p),
		Experience: jc.ExperienceScore(p),
	}
}
