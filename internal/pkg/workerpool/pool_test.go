package workerpool

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestPool_RunsAllTasks(t *testing.T) {
	const tasks = 100
	var ran atomic.Int64

	p := New(4, tasks)
	for i := 0; i < tasks; i++ {
		p.Submit(func(context.Context) { ran.Add(1) })
	}
	p.Close()

	select {
	case <-p.Run(context.Background()):
	case <-time.After(2 * time.Second):
		t.Fatalf("pool did not drain in time")
	}

	if got := ran.Load(); got != tasks {
		t.Fatalf("ran %d tasks, want %d", got, tasks)
	}
}

func TestPool_CancelStopsWorkers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	p := New(2, 0)
	done := p.Run(ctx)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("workers did not exit on cancellation")
	}
}

func TestPool_IgnoresNilTask(t *testing.T) {
	p := New(1, 1)
	p.Submit(nil)
	p.Close()

	select {
	case <-p.Run(context.Background()):
	case <-time.After(2 * time.Second):
		t.Fatalf("pool did not drain in time")
	}
}
