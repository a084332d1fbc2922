// Package settle runs independent tasks concurrently and collects every
// outcome. A failing task never stops the others.
package settle

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Outcome is the result of running the task for one item
type Outcome[T any] struct {
	Index int
	Item  T
	Err   error
}

// Fulfilled reports whether the task succeeded
func (o Outcome[T]) Fulfilled() bool {
	return o.Err == nil
}

// All runs fn for every item and waits until all of them finish. Outcomes
// are returned in item order. limit bounds the number of tasks in flight;
// zero or less runs every task at once.
func All[T any](ctx context.Context, items []T, limit int, fn func(ctx context.Context, item T) error) []Outcome[T] {
	outcomes := make([]Outcome[T], len(items))

	// A plain Group, not WithContext: one failure must not cancel the rest.
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			outcomes[i] = Outcome[T]{Index: i, Item: item, Err: fn(ctx, item)}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// Partition splits outcomes into fulfilled and rejected items, keeping order
func Partition[T any](outcomes []Outcome[T]) (fulfilled, rejected []T) {
	for _, o := range outcomes {
		if o.Fulfilled() {
			fulfilled = append(fulfilled, o.Item)
		} else {
			rejected = append(rejected, o.Item)
		}
	}
	return fulfilled, rejected
}
