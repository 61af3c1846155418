package queue

import (
	"context"
	"errors"
	"sync"

	"talent-match/internal/domain/matching"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Runner is the piece of the match usecase the queue needs.
type Runner interface {
	MatchJob(ctx context.Context, jobID uuid.UUID, topN int) ([]matching.MatchResult, error)
}

var ErrQueueFull = errors.New("match queue full")

// MatchQueue processes match runs in the background, one job id per
// task. Enqueue never blocks; a full queue is reported to the caller
// instead of stalling the request path.
type MatchQueue struct {
	runner  Runner
	logger  *zap.Logger
	tasks   chan uuid.UUID
	wg      sync.WaitGroup
	cancel  context.CancelFunc
	started bool
	mu      sync.Mutex
}

func NewMatchQueue(runner Runner, size int, logger *zap.Logger) *MatchQueue {
	if size <= 0 {
		size = 64
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatchQueue{
		runner: runner,
		logger: logger,
		tasks:  make(chan uuid.UUID, size),
	}
}

// Start launches the worker goroutines. Safe to call once.
func (q *MatchQueue) Start(workers int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.started {
		return
	}
	q.started = true

	if workers <= 0 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	q.cancel = cancel

	q.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go q.worker(ctx)
	}
}

func (q *MatchQueue) worker(ctx context.Context) {
	defer q.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case jobID, ok := <-q.tasks:
			if !ok {
				return
			}
			q.logger.Info("match queue picked up job", zap.String("job_id", jobID.String()))
			if _, err := q.runner.MatchJob(ctx, jobID, 0); err != nil {
				q.logger.Error("match run failed",
					zap.String("job_id", jobID.String()),
					zap.Error(err))
				continue
			}
			q.logger.Info("match run finished", zap.String("job_id", jobID.String()))
		}
	}
}

// Enqueue schedules an asynchronous match run for the job.
func (q *MatchQueue) Enqueue(jobID uuid.UUID) error {
	select {
	case q.tasks <- jobID:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop cancels in-flight runs and waits for the workers to exit.
func (q *MatchQueue) Stop() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.started {
		return
	}
	q.started = false
	q.cancel()
	close(q.tasks)
	q.wg.Wait()
}
