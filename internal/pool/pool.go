// Package pool provides a bounded-concurrency task runner. Up to limit
// tasks run at once; whenever any task settles the next pending one is
// launched. Each task's outcome lands at its own index, so one task's
// failure never affects a sibling's scheduling or result.
package pool

import (
	"context"
	"sync"
)

// Result holds one task's outcome.
type Result[T any] struct {
	Value T
	Err   error
}

// Task is a unit of work run by the pool.
type Task[T any] func(ctx context.Context) (T, error)

// Run executes tasks with at most limit running concurrently and returns
// their results in task order. Tasks are never retried; ctx is passed
// through so individual tasks can honor cancellation, but the pool itself
// always drains every task.
func Run[T any](ctx context.Context, limit int, tasks []Task[T]) []Result[T] {
	if limit < 1 {
		limit = 1
	}

	results := make([]Result[T], len(tasks))
	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup

	for i, task := range tasks {
		sem <- struct{}{}
		wg.Add(1)
		go func(i int, task Task[T]) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i].Value, results[i].Err = task(ctx)
		}(i, task)
	}

	wg.Wait()
	return results
}
