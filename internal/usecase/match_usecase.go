package usecase

import (
	"context"
	"errors"
	"time"

	"talent-match/internal/config"
	"talent-match/internal/domain/matching"
	"talent-match/internal/pkg/workerpool"
	"talent-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrJobNotFound      = errors.New("job not found")
	ErrMalformedJobData = errors.New("malformed job data")
	ErrInternal         = errors.New("internal error")
)

type MatchUsecase interface {
	MatchJob(ctx context.Context, jobID uuid.UUID, topN int) ([]matching.MatchResult, error)
	GetMatches(ctx context.Context, jobID uuid.UUID) ([]matching.MatchResult, error)
}

type Match struct {
	jobs       repository.JobRepository
	candidates repository.CandidateRepository
	profiles   repository.ProfileRepository
	weights    repository.WeightRepository
	store      repository.MatchRepository
	cache      MatchCache
	cacheTTL   time.Duration
	cfg        config.MatchConfig
	logger     *zap.Logger
}

func NewMatchUsecase(
	jobs repository.JobRepository,
	candidates repository.CandidateRepository,
	profiles repository.ProfileRepository,
	weights repository.WeightRepository,
	store repository.MatchRepository,
	cache MatchCache,
	cacheTTL time.Duration,
	cfg config.MatchConfig,
	logger *zap.Logger,
) *Match {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Match{
		jobs:       jobs,
		candidates: candidates,
		profiles:   profiles,
		weights:    weights,
		store:      store,
		cache:      cache,
		cacheTTL:   cacheTTL,
		cfg:        cfg,
		logger:     logger,
	}
}

// MatchJob runs the full two-stage match for one job and persists the
// ranking, replacing whatever was stored before. The whole run is
// bounded by the configured deadline; a run that times out persists
// nothing and surfaces the error.
func (u *Match) MatchJob(ctx context.Context, jobID uuid.UUID, topN int) ([]matching.MatchResult, error) {
	if topN <= 0 {
		topN = u.cfg.TopN
	}
	if topN <= 0 {
		topN = 50
	}

	if u.cfg.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.cfg.RunTimeout)
		defer cancel()
	}

	job, err := u.jobs.GetJob(ctx, jobID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrJobNotFound):
			return nil, ErrJobNotFound
		case errors.Is(err, repository.ErrMalformedJobData):
			return nil, errors.Join(ErrMalformedJobData, err)
		default:
			return nil, err
		}
	}

	jc := matching.NewJobContext(job)

	// The coarse stage and the weight resolver are both pure reads and
	// independent, so they run concurrently.
	type weightsOut struct {
		w   matching.AxisWeights
		err error
	}
	weightsCh := make(chan weightsOut, 1)
	go func() {
		w, err := u.weights.GetWeights(ctx, jobID)
		weightsCh <- weightsOut{w: w, err: err}
	}()

	estimates, err := u.candidates.QueryCandidates(ctx, jc, u.cfg.PoolSize)
	if err != nil {
		<-weightsCh
		return nil, err
	}

	wo := <-weightsCh
	if wo.err != nil {
		return nil, wo.err
	}
	weights := wo.w

	if len(estimates) == 0 {
		// No survivors: the empty ranking still replaces the old one.
		if err := u.store.SaveMatches(ctx, jobID, nil); err != nil {
			return nil, err
		}
		u.cacheResults(ctx, jobID, []matching.MatchResult{})
		return []matching.MatchResult{}, nil
	}

	ids := make([]uuid.UUID, 0, len(estimates))
	for _, e := range estimates {
		ids = append(ids, e.CandidateID)
	}

	profileByID, err := u.profiles.GetProfilesBatch(ctx, ids)
	if err != nil {
		return nil, err
	}

	scorable := make([]matching.FreelancerProfile, 0, len(ids))
	for _, id := range ids {
		p, ok := profileByID[id]
		if !ok {
			u.logger.Warn("dropping candidate with no retrievable profile",
				zap.String("job_id", jobID.String()),
				zap.String("candidate_id", id.String()))
			continue
		}
		scorable = append(scorable, p)
	}

	results := u.scoreAll(ctx, jc, weights, scorable)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matching.SortResults(results)
	if len(results) > topN {
		results = results[:topN]
	}

	now := time.Now().UTC()
	for i := range results {
		results[i].CreatedAt = now
	}

	if err := u.store.SaveMatches(ctx, jobID, results); err != nil {
		return nil, err
	}
	u.cacheResults(ctx, jobID, results)

	return results, nil
}

// scoreAll runs the detailed scorers over the candidate batch on a
// bounded worker pool. Scorers are pure, so each worker writes only its
// own slot in the result slice.
func (u *Match) scoreAll(ctx context.Context, jc *matching.JobContext, weights matching.AxisWeights, profiles []matching.FreelancerProfile) []matching.MatchResult {
	results := make([]matching.MatchResult, len(profiles))

	workers := u.cfg.Workers
	if workers <= 0 {
		workers = 8
	}
	pool := workerpool.New(workers, len(profiles))
	for i, p := range profiles {
		i, p := i, p
		pool.Submit(func(context.Context) {
			breakdown := jc.ScoreCandidate(p)
			results[i] = matching.MatchResult{
				JobID:       jc.Job.ID,
				CandidateID: p.ID,
				FinalScore:  matching.Aggregate(weights, breakdown),
				Breakdown:   breakdown,
			}
		})
	}
	pool.Close()
	<-pool.Run(ctx)

	return results
}

// GetMatches returns the job's last persisted ranking, consulting the
// cache first.
func (u *Match) GetMatches(ctx context.Context, jobID uuid.UUID) ([]matching.MatchResult, error) {
	if u.cache != nil {
		var cached []matching.MatchResult
		if ok, err := u.cache.GetJSON(ctx, matchCacheKey(jobID), &cached); err == nil && ok {
			return cached, nil
		}
	}

	results, err := u.store.ListMatches(ctx, jobID)
	if err != nil {
		return nil, err
	}
	u.cacheResults(ctx, jobID, results)
	return results, nil
}

// cacheResults is best effort; a cache failure never fails the run.
func (u *Match) cacheResults(ctx context.Context, jobID uuid.UUID, results []matching.MatchResult) {
	if u.cache == nil {
		return
	}
	if err := u.cache.SetJSON(ctx, matchCacheKey(jobID), results, u.cacheTTL); err != nil {
		u.logger.Warn("failed to cache match results",
			zap.String("job_id", jobID.String()),
			zap.Error(err))
	}
}

func matchCacheKey(jobID uuid.UUID) string {
	return "matches:" + jobID.String()
}
