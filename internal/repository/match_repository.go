package repository

import (
	"context"
	"encoding/json"
	"time"

	"talent-match/internal/database"
	"talent-match/internal/domain/matching"

	"github.com/google/uuid"
)

// MatchRepository persists the authoritative ranking for a job.
// SaveMatches replaces the job's previous result set atomically; a
// reader never observes a mix of old and new rows.
type MatchRepository interface {
	SaveMatches(ctx context.Context, jobID uuid.UUID, results []matching.MatchResult) error
	ListMatches(ctx context.Context, jobID uuid.UUID) ([]matching.MatchResult, error)
}

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

func (r *PostgresMatchRepository) SaveMatches(ctx context.Context, jobID uuid.UUID, results []matching.MatchResult) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM job_matches WHERE job_id = $1`, jobID); err != nil {
		return err
	}

	for rank, m := range results {
		breakdown, err := json.Marshal(m.Breakdown)
		if err != nil {
			return err
		}
		createdAt := m.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO job_matches (id, job_id, candidate_id, rank, final_score, breakdown, created_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			uuid.New(), jobID, m.CandidateID, rank+1, m.FinalScore, breakdown, createdAt,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresMatchRepository) ListMatches(ctx context.Context, jobID uuid.UUID) ([]matching.MatchResult, error) {
	rows, err := r.db.Query(ctx,
		`SELECT candidate_id, final_score, breakdown, created_at
		 FROM job_matches
		 WHERE job_id = $1
		 ORDER BY rank ASC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.MatchResult, 0)
	for rows.Next() {
		m := matching.MatchResult{JobID: jobID}
		var breakdown []byte
		if err := rows.Scan(&m.CandidateID, &m.FinalScore, &breakdown, &m.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(breakdown, &m.Breakdown); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
