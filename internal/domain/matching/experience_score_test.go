package matching

import (
	"testing"

	"github.com/google/uuid"
)

func TestExperienceScore_FullMatchClamps(t *testing.T) {
	skillID := uuid.New()
	jc := NewJobContext(Job{
		Domain:         "fintech",
		RequiredSkills: []RequiredSkill{{SkillID: skillID, Importance: 5}},
		Requirements:   []Requirement{{Kind: RequirementCert, Value: "ISO9001"}},
	})
	p := FreelancerProfile{
		Skills:         []SkillLevel{{SkillID: skillID, Proficiency: 100}},
		Experience:     []DomainExperience{{Domain: "fintech", Years: 10, Seniority: SenioritySenior}},
		Certifications: []string{"ISO9001"},
	}
	// 0.5*1 + 0.3*1 + 0.2*1 + 0.15 = 1.15, clamped.
	res := jc.ExperienceScore(p)
	if res.Score != 1.0 {
		t.Fatalf("expected 1.0, got %v", res.Score)
	}
}

func TestExperienceScore_Composite(t *testing.T) {
	skillID := uuid.New()
	jc := NewJobContext(Job{
		Domain:         "fintech",
		RequiredSkills: []RequiredSkill{{SkillID: skillID, Importance: 4}},
	})
	p := FreelancerProfile{
		Skills:     []SkillLevel{{SkillID: skillID, Proficiency: 60}},
		Experience: []DomainExperience{{Domain: "fintech", Years: 2, Seniority: SeniorityJunior}},
	}
	// 0.5*0.6 + 0.3*(2/10) + 0.2*0.4 = 0.3 + 0.06 + 0.08 = 0.44
	res := jc.ExperienceScore(p)
	if !almostEqual(res.Score, 0.44) {
		t.Fatalf("expected 0.44, got %v", res.Score)
	}
}

func TestExperienceScore_SeniorityFallback(t *testing.T) {
	jc := NewJobContext(Job{Domain: "fintech"})
	p := FreelancerProfile{
		Experience: []DomainExperience{
			{Domain: "healthcare", Years: 3, Seniority: SeniorityMid},
			{Domain: "ecommerce", Years: 8, Seniority: SenioritySenior},
		},
	}
	// No fintech record: seniority falls back to the highest-years
	// record (senior, 1.0), not the junior default.
	if got := jc.seniorityScore(p); got != 1.0 {
		t.Fatalf("expected fallback seniority 1.0, got %v", got)
	}
}

func TestExperienceScore_NoDomainMatchScoresZeroYears(t *testing.T) {
	skillID := uuid.New()
	jc := NewJobContext(Job{
		Domain:         "fintech",
		RequiredSkills: []RequiredSkill{{SkillID: skillID, Importance: 5}},
	})
	p := FreelancerProfile{
		Skills:     []SkillLevel{{SkillID: skillID, Proficiency: 20}},
		Experience: []DomainExperience{{Domain: "healthcare", Years: 10, Seniority: SeniorityLead}},
	}
	// 0.5*0.2 + 0.3*0 + 0.2*1.0 (lead via fallback) = 0.3
	res := jc.ExperienceScore(p)
	if !almostEqual(res.Score, 0.3) {
		t.Fatalf("expected 0.3, got %v", res.Score)
	}
}

func TestExperienceScore_CertBonusRequiresAllCerts(t *testing.T) {
	jc := NewJobContext(Job{
		Domain: "fintech",
		Requirements: []Requirement{
			{Kind: RequirementCert, Value: "ISO9001"},
			{Kind: RequirementCert, Value: "PMP"},
		},
	})
	p := FreelancerProfile{Certifications: []string{"ISO9001"}}
	if jc.holdsAllCerts(p) {
		t.Fatalf("expected missing PMP to fail the cert bonus")
	}
	p.Certifications = append(p.Certifications, "PMP")
	if !jc.holdsAllCerts(p) {
		t.Fatalf("expected all certs held")
	}
}

func TestSkillOverlap_ZeroMaxResolvesToZero(t *testing.T) {
	jc := NewJobContext(Job{})
	p := FreelancerProfile{Skills: []SkillLevel{{SkillID: uuid.New(), Proficiency: 100}}}
	if got := jc.SkillOverlap(p); got != 0 {
		t.Fatalf("expected 0 with no required skills, got %v", got)
	}
}

func TestSkillOverlap_Weighted(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	jc := NewJobContext(Job{RequiredSkills: []RequiredSkill{
		{SkillID: a, Importance: 3},
		{SkillID: b, Importance: 1},
	}})
	p := FreelancerProfile{Skills: []SkillLevel{
		{SkillID: a, Proficiency: 100},
		{SkillID: b, Proficiency: 50},
	}}
	// (1.0*3 + 0.5*1) / 4 = 0.875
	if got := jc.SkillOverlap(p); !almostEqual(got, 0.875) {
		t.Fatalf("expected 0.875, got %v", got)
	}
}
