package repository

import (
	"context"
	"fmt"
	"time"

	"talent-match/internal/database"
	"talent-match/internal/domain/matching"

	"github.com/google/uuid"
)

// ProfileRepository fetches full freelancer profiles for the generated
// candidate set. The fetch is batched: a fixed number of queries per
// run regardless of pool size, never one round trip per candidate.
type ProfileRepository interface {
	GetProfilesBatch(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]matching.FreelancerProfile, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

// GetProfilesBatch assembles profiles aspect by aspect with one
// `= ANY($ids)` query each. Ids with no freelancer row are simply
// absent from the result; callers decide how to treat the gap.
func (r *PostgresProfileRepository) GetProfilesBatch(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]matching.FreelancerProfile, error) {
	out := make(map[uuid.UUID]matching.FreelancerProfile, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT f.id, f.hourly_rate, f.remote_ok, f.timezone_offset,
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
		 WHERE f.id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			p          matching.FreelancerProfile
			skillsRaw  []byte
			domainsRaw []byte
		)
		if err := rows.Scan(&p.ID, &p.HourlyRate, &p.RemoteOK, &p.TimezoneOffset, &skillsRaw, &p.Certifications, &domainsRaw); err != nil {
			return nil, err
		}
		if p.Skills, err = decodeSkills(skillsRaw); err != nil {
			return nil, fmt.Errorf("profile %s: %v", p.ID, err)
		}
		if p.Experience, err = decodeDomains(domainsRaw); err != nil {
			return nil, fmt.Errorf("profile %s: %v", p.ID, err)
		}
		out[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachLocations(ctx, ids, out); err != nil {
		return nil, err
	}
	if err := r.attachAvailability(ctx, ids, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProfileRepository) attachLocations(ctx context.Context, ids []uuid.UUID, profiles map[uuid.UUID]matching.FreelancerProfile) error {
	rows, err := r.db.Query(ctx,
		`SELECT freelancer_id, lat, lon
		 FROM freelancer_locations
		 WHERE freelancer_id = ANY($1)`,
		ids,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id uuid.UUID
			pt matching.GeoPoint
		)
		if err := rows.Scan(&id, &pt.Lat, &pt.Lon); err != nil {
			return err
		}
		if p, ok := profiles[id]; ok {
			p.Locations = append(p.Locations, pt)
			profiles[id] = p
		}
	}
	return rows.Err()
}

func (r *PostgresProfileRepository) attachAvailability(ctx context.Context, ids []uuid.UUID, profiles map[uuid.UUID]matching.FreelancerProfile) error {
	rows, err := r.db.Query(ctx,
		`SELECT freelancer_id, start_ts, end_ts
		 FROM freelancer_availability
		 WHERE freelancer_id = ANY($1)
		 ORDER BY start_ts`,
		ids,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         uuid.UUID
			start, end time.Time
		)
		if err := rows.Scan(&id, &start, &end); err != nil {
			return err
		}
		if p, ok := profiles[id]; ok {
			p.Availability = append(p.Availability, matching.TimeWindow{Start: start, End: end})
			profiles[id] = p
		}
	}
	return rows.Err()
}
