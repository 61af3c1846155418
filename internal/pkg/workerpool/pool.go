package workerpool

import (
	"context"
	"sync"
)

type Task func(ctx context.Context)

// Pool runs submitted tasks on a fixed number of workers. Submit after
// Close panics, matching channel semantics; callers own that ordering.
type Pool struct {
	workers int
	tasks   chan Task
	wg      sync.WaitGroup
}

func New(workers, buffer int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &Pool{
		workers: workers,
		tasks:   make(chan Task, buffer),
	}
}

func (p *Pool) Submit(t Task) {
	if t == nil {
		return
	}
	p.tasks <- t
}

// Close stops accepting tasks; workers drain the backlog and exit.
func (p *Pool) Close() {
	close(p.tasks)
}

// Run starts the workers and returns a channel that closes once every
// submitted task has finished or the context is cancelled.
func (p *Pool) Run(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-p.tasks:
					if !ok {
						return
					}
					t(ctx)
				}
			}
		}()
	}

	go func() {
		p.wg.Wait()
		close(done)
	}()

	return done
}
