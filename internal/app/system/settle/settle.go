// Package settle runs independent tasks concurrently and reports every
// task's outcome.
//
// Unlike errgroup.WithContext, a failing task never cancels its siblings and
// never hides their results: All returns only after every task has finished,
// with one Outcome per task in the order the tasks were given.
package settle

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Task is a unit of work run by All.
type Task[T any] func(ctx context.Context) (T, error)

// Outcome is the settled result of one Task.
type Outcome[T any] struct {
	Value T
	Err   error
}

// Fulfilled reports whether the task returned without error.
func (o Outcome[T]) Fulfilled() bool { return o.Err == nil }

// Rejected reports whether the task returned an error.
func (o Outcome[T]) Rejected() bool { return o.Err != nil }

// ValueOr returns the value when fulfilled and def otherwise.
func (o Outcome[T]) ValueOr(def T) T {
	if o.Err != nil {
		return def
	}
	return o.Value
}

// All runs every task in its own goroutine and waits for all of them.
// A panicking task is reported as a rejected Outcome instead of crashing
// the process.
func All[T any](ctx context.Context, tasks ...Task[T]) []Outcome[T] {
	out := make([]Outcome[T], len(tasks))

	var g errgroup.Group
	for i, task := range tasks {
		g.Go(func() error {
			// Task errors stay in the Outcome; the group only joins.
			out[i] = run(ctx, task)
			return nil
		})
	}
	_ = g.Wait()

	return out
}

// Pair settles two differently-typed tasks.
func Pair[A, B any](ctx context.Context, a Task[A], b Task[B]) (Outcome[A], Outcome[B]) {
	var (
		oa Outcome[A]
		ob Outcome[B]
	)
	var g errgroup.Group
	g.Go(func() error {
		oa = run(ctx, a)
		return nil
	})
	g.Go(func() error {
		ob = run(ctx, b)
		return nil
	})
	_ = g.Wait()
	return oa, ob
}

func run[T any](ctx context.Context, task Task[T]) (o Outcome[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			o = Outcome[T]{Err: fmt.Errorf("settle: task panicked: %v", rec)}
		}
	}()
	v, err := task(ctx)
	return Outcome[T]{Value: v, Err: err}
}
