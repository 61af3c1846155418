package repository

import (
	"context"

	"talent-match/internal/database"
	"talent-match/internal/domain/matching"

	"github.com/google/uuid"
)

// WeightRepository resolves the effective per-axis weight vector for a
// job: global defaults with per-job overrides layered on top.
type WeightRepository interface {
	GetWeights(ctx context.Context, jobID uuid.UUID) (matching.AxisWeights, error)
}

type PostgresWeightRepository struct {
	db database.DB
}

func NewPostgresWeightRepository(db database.DB) *PostgresWeightRepository {
	return &PostgresWeightRepository{db: db}
}

func (r *PostgresWeightRepository) GetWeights(ctx context.Context, jobID uuid.UUID) (matching.AxisWeights, error) {
	defaults, err := r.readWeights(ctx,
		`SELECT axis, weight FROM match_weight_defaults`)
	if err != nil {
		return matching.AxisWeights{}, err
	}

	overrides, err := r.readWeights(ctx,
		`SELECT axis, weight FROM match_weight_overrides WHERE job_id = $1`, jobID)
	if err != nil {
		return matching.AxisWeights{}, err
	}

	return matching.ResolveWeights(defaults, overrides)
}

func (r *PostgresWeightRepository) readWeights(ctx context.Context, query string, args ...any) (map[matching.Axis]float64, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[matching.Axis]float64, 4)
	for rows.Next() {
		var (
			axis   string
			weight float64
		)
		if err := rows.Scan(&axis, &weight); err != nil {
			return nil, err
		}
		out[matching.Axis(axis)] = weight
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
