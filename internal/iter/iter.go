// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package iter holds small pull iterators used to walk documents and the
// records inside them.
package iter

import (
	"context"

	"gopkg.microglot.org/combinator.go/internal/optional"
)

type Iterator[T any] interface {
	// Next returns the next value or None when the iterator is exhausted.
	Next(ctx context.Context) optional.Optional[T]
	Close(ctx context.Context) error
}

type Filter[T any] interface {
	Keep(ctx context.Context, val T) bool
}

// NewIteratorFilter wraps an iterator with a filter so that only values that
// pass the filter are returned.
func NewIteratorFilter[T any](it Iterator[T], f Filter[T]) Iterator[T] {
	return &iteratorFilter[T]{
		iter:   it,
		filter: f,
	}
}

type iteratorFilter[T any] struct {
	iter   Iterator[T]
	filter Filter[T]
}

func (it *iteratorFilter[T]) Next(ctx context.Context) optional.Optional[T] {
	for {
		v := it.iter.Next(ctx)
		if !v.IsPresent() {
			return v
		}
		if it.filter.Keep(ctx, v.Value()) {
			return v
		}
	}
}

func (it *iteratorFilter[T]) Close(ctx context.Context) error {
	return it.iter.Close(ctx)
}

// Collect drains it into a slice and closes it. Iteration stops early when
// ctx is done.
func Collect[T any](ctx context.Context, it Iterator[T]) ([]T, error) {
	var out []T
	for v := it.Next(ctx); v.IsPresent(); v = it.Next(ctx) {
		if err := ctx.Err(); err != nil {
			_ = it.Close(ctx)
			return out, err
		}
		out = append(out, v.Value())
	}
	return out, it.Close(ctx)
}

// FilterFunc is an adaptor for simple filter functions that makes them
// compatible with the Filter interface. Use like:
//
//	FilterFunc[T](func(ctx context.Context, val T) bool { return true })
//
// Note that this type should never be referenced directly in any signature.
// Always use Filter as an input or output type.
type FilterFunc[T any] func(ctx context.Context, val T) bool

func (f FilterFunc[T]) Keep(ctx context.Context, val T) bool {
	return f(ctx, val)
}
