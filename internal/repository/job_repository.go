package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"talent-match/internal/database"
	"talent-match/internal/domain/matching"

	"github.com/google/uuid"
)

var (
	// ErrJobNotFound is returned when the job id has no row.
	ErrJobNotFound = errors.New("job not found")
	// ErrMalformedJobData marks a job whose stored schedule or
	// requirement flags cannot be parsed. It fails that single job's
	// run with a descriptive error instead of silently defaulting.
	ErrMalformedJobData = errors.New("malformed job data")
)

type JobRepository interface {
	GetJob(ctx context.Context, jobID uuid.UUID) (matching.Job, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

// scheduleDoc is the stored JSON shape of a job's schedule requirement.
type scheduleDoc struct {
	Type    string `json:"type"`
	Windows []struct {
		Start time.Time `json:"start"`
		End   time.Time `json:"end"`
	} `json:"windows"`
}

func (r *PostgresJobRepository) GetJob(ctx context.Context, jobID uuid.UUID) (matching.Job, error) {
	if jobID == uuid.Nil {
		return matching.Job{}, ErrJobNotFound
	}

	var (
		job         matching.Job
		flags       []string
		scheduleRaw []byte
		lat, lon    *float64
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, domain, mandatory_flags, schedule, location_policy,
		        location_lat, location_lon, location_radius_km,
		        budget_floor, budget_ceiling, timezone_offset
		 FROM jobs
		 WHERE id = $1`,
		jobID,
	).Scan(
		&job.ID,
		&job.Domain,
		&flags,
		&scheduleRaw,
		&job.LocationPolicy,
		&lat,
		&lon,
		&job.RadiusKm,
		&job.BudgetFloor,
		&job.BudgetCeiling,
		&job.TimezoneOffset,
	)
	if err != nil {
		if isNoRows(err) {
			return matching.Job{}, ErrJobNotFound
		}
		return matching.Job{}, err
	}

	if lat != nil && lon != nil {
		job.Location = &matching.GeoPoint{Lat: *lat, Lon: *lon}
	}

	job.Requirements, err = matching.ParseRequirements(flags)
	if err != nil {
		return matching.Job{}, fmt.Errorf("%w: job %s: %v", ErrMalformedJobData, jobID, err)
	}

	job.Schedule, err = parseSchedule(scheduleRaw)
	if err != nil {
		return matching.Job{}, fmt.Errorf("%w: job %s: %v", ErrMalformedJobData, jobID, err)
	}

	job.RequiredSkills, err = r.requiredSkills(ctx, jobID)
	if err != nil {
		return matching.Job{}, err
	}

	return job, nil
}

func (r *PostgresJobRepository) requiredSkills(ctx context.Context, jobID uuid.UUID) ([]matching.RequiredSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT skill_id, importance_weight
		 FROM job_required_skills
		 WHERE job_id = $1
		 ORDER BY skill_id`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.RequiredSkill, 0)
	for rows.Next() {
		var rs matching.RequiredSkill
		if err := rows.Scan(&rs.SkillID, &rs.Importance); err != nil {
			return nil, err
		}
		out = append(out, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// parseSchedule converts the stored JSON document to the typed schedule
// once, at the storage boundary.
func parseSchedule(raw []byte) (matching.Schedule, error) {
	if len(raw) == 0 {
		return matching.Schedule{Type: matching.ScheduleFixed}, nil
	}

	var doc scheduleDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return matching.Schedule{}, fmt.Errorf("schedule: %v", err)
	}

	var typ matching.ScheduleType
	switch matching.ScheduleType(doc.Type) {
	case matching.ScheduleFixed, matching.ScheduleFlexible:
		typ = matching.ScheduleType(doc.Type)
	case "":
		typ = matching.ScheduleFixed
	default:
		return matching.Schedule{}, fmt.Errorf("schedule: unknown type %q", doc.Type)
	}

	windows := make([]matching.TimeWindow, 0, len(doc.Windows))
	for _, w := range doc.Windows {
		if w.Start.IsZero() || w.End.IsZero() || !w.End.After(w.Start) {
			return matching.Schedule{}, fmt.Errorf("schedule: invalid window [%s, %s]", w.Start, w.End)
		}
		windows = append(windows, matching.TimeWindow{Start: w.Start, End: w.End})
	}

	return matching.Schedule{Type: typ, Windows: windows}, nil
}
