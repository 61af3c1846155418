package matching

import (
	"time"

	"github.com/google/uuid"
)

type LocationPolicy string

const (
	PolicyRemote LocationPolicy = "remote"
	PolicyOnsite LocationPolicy = "onsite"
	PolicyHybrid LocationPolicy = "hybrid"
)

type ScheduleType string

const (
	ScheduleFixed    ScheduleType = "fixed"
	ScheduleFlexible ScheduleType = "flexible"
)

type Seniority string

const (
	SeniorityJunior Seniority = "junior"
	SeniorityMid    Seniority = "mid"
	SenioritySenior Seniority = "senior"
	SeniorityLead   Seniority = "lead"
)

type GeoPoint struct {
	Lat float64
	Lon float64
}

type TimeWindow struct {
	Start time.Time
	End   time.Time
}

type Schedule struct {
	Type    ScheduleType
	Windows []TimeWindow
}

type RequiredSkill struct {
	SkillID    uuid.UUID
	Importance int
}

type Job struct {
	ID             uuid.UUID
	Domain         string
	RequiredSkills []RequiredSkill
	Requirements   []Requirement
	Schedule       Schedule
	LocationPolicy LocationPolicy
	Location       *GeoPoint
	RadiusKm       float64
	BudgetFloor    float64
	BudgetCeiling  float64
	TimezoneOffset int
}

type SkillLevel struct {
	SkillID     uuid.UUID
	Proficiency int // 0-100
}

type DomainExperience struct {
	Domain    string
	Years     float64
	Seniority Seniority
}

type FreelancerProfile struct {
	ID             uuid.UUID
	HourlyRate     float64
	RemoteOK       bool
	Locations      []GeoPoint
	TimezoneOffset int
	Availability   []TimeWindow
	Skills         []SkillLevel
	Experience     []DomainExperience
	Certifications []string
}

// AxisScore is one axis of a candidate's breakdown: a normalized score
// in [0,1] plus the human-readable reason it was produced.
type AxisScore struct {
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

type Breakdown struct {
	Time       AxisScore `json:"time"`
	Place      AxisScore `json:"place"`
	Cost       AxisScore `json:"cost"`
	Experience AxisScore `json:"experience"`
}

type MatchResult struct {
	JobID       uuid.UUID `json:"job_id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	FinalScore  float64   `json:"final_score"`
	Breakdown   Breakdown `json:"breakdown"`
	CreatedAt   time.Time `json:"created_at"`
}

func clamp(v, lower, upper float64) float64 {
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}

// Clamp01 bounds a score to the unit interval.
func Clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}
