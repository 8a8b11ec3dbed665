package ddbctl

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type result[T any] struct {
	key   string
	value T
	err   error
}

// fanOut calls fn once per key with at most limit calls in flight (0 means no
// limit) and returns one result per key, in key order. A failing key does not
// stop the others.
func fanOut[T any](ctx context.Context, limit int, keys []string, fn func(ctx context.Context, key string) (T, error)) []result[T] {
	results := make([]result[T], len(keys))
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, key := range keys {
		g.Go(func() error {
			v, err := fn(ctx, key)
			results[i] = result[T]{key: key, value: v, err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// summarize logs every failed result and returns an error only if all of them
// failed.
func summarize[T any](log *zap.Logger, what string, results []result[T]) error {
	var errs []error
	for _, r := range results {
		if r.err != nil {
			log.Error(what+" failed", zap.String("item", r.key), zap.Error(r.err))
			errs = append(errs, fmt.Errorf("%s: %w", r.key, r.err))
		}
	}
	if len(errs) > 0 && len(errs) == len(results) {
		return errors.Join(errs...)
	}
	return nil
}
