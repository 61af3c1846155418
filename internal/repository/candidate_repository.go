package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"talent-match/internal/database"
	"talent-match/internal/domain/matching"

	"github.com/google/uuid"
)

// CandidateRepository produces the coarse stage's bounded, approximately
// ranked candidate set from the full active freelancer population.
type CandidateRepository interface {
	QueryCandidates(ctx context.Context, jc *matching.JobContext, poolSize int) ([]matching.CandidateEstimate, error)
}

type PostgresCandidateRepository struct {
	db      database.DB
	weights WeightRepository
}

func NewPostgresCandidateRepository(db database.DB, weights WeightRepository) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db, weights: weights}
}

type skillDoc struct {
	SkillID     uuid.UUID `json:"skill_id"`
	Proficiency int       `json:"proficiency"`
}

type domainDoc struct {
	Domain    string  `json:"domain"`
	Years     float64 `json:"years"`
	Seniority string  `json:"seniority"`
}

// QueryCandidates loads the cheap, precomputable slice of every active
// freelancer (rate, remote eligibility, skills, certifications, domain
// records) and runs the hard filter plus approximate ranking over it.
// It resolves the weight vector itself so the caller can run it
// concurrently with its own weight resolution.
func (r *PostgresCandidateRepository) QueryCandidates(ctx context.Context, jc *matching.JobContext, poolSize int) ([]matching.CandidateEstimate, error) {
	w, err := r.weights.GetWeights(ctx, jc.Job.ID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT f.id, f.hourly_rate, f.remote_ok,
		        COALESCE(sk.skills, '[]'),
		        COALESCE(ct.certs, '{}'),
		        COALESCE(dm.domains, '[]')
		 FROM freelancers f
		 LEFT JOIN (
		     SELECT freelancer_id,
		            json_agg(json_build_object('skill_id', skill_id, 'proficiency', proficiency)) AS skills
		     FROM freelancer_skills GROUP BY freelancer_id
		 ) sk ON sk.freelancer_id = f.id
		 LEFT JOIN (
		     SELECT freelancer_id, array_agg(cert_code) AS certs
		     FROM freelancer_certifications GROUP BY freelancer_id
		 ) ct ON ct.freelancer_id = f.id
		 LEFT JOIN (
		     SELECT freelancer_id,
		            json_agg(json_build_object('domain', domain, 'years', years, 'seniority', seniority)) AS domains
		     FROM freelancer_domain_experience GROUP BY freelancer_id
		 ) dm ON dm.freelancer_id = f.id
		 WHERE f.active`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	population := make([]matching.FreelancerProfile, 0, 1024)
	for rows.Next() {
		var (
			p          matching.FreelancerProfile
			skillsRaw  []byte
			domainsRaw []byte
		)
		if err := rows.Scan(&p.ID, &p.HourlyRate, &p.RemoteOK, &skillsRaw, &p.Certifications, &domainsRaw); err != nil {
			return nil, err
		}
		if p.Skills, err = decodeSkills(skillsRaw); err != nil {
			return nil, fmt.Errorf("candidate %s: %v", p.ID, err)
		}
		if p.Experience, err = decodeDomains(domainsRaw); err != nil {
			return nil, fmt.Errorf("candidate %s: %v", p.ID, err)
		}
		population = append(population, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jc.GenerateCandidates(population, w, poolSize), nil
}

func decodeSkills(raw []byte) ([]matching.SkillLevel, error) {
	var docs []skillDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("skills: %v", err)
	}
	out := make([]matching.SkillLevel, 0, len(docs))
	for _, d := range docs {
		out = append(out, matching.SkillLevel{SkillID: d.SkillID, Proficiency: d.Proficiency})
	}
	return out, nil
}

func decodeDomains(raw []byte) ([]matching.DomainExperience, error) {
	var docs []domainDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("domains: %v", err)
	}
	out := make([]matching.DomainExperience, 0, len(docs))
	for _, d := range docs {
		out = append(out, matching.DomainExperience{
			Domain:    d.Domain,
			Years:     d.Years,
			Seniority: matching.Seniority(d.Seniority),
		})
	}
	return out, nil
}
