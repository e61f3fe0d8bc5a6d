package iter

import (
	"context"

	"github.com/steamkit/enums/internal/idl"
	"github.com/steamkit/enums/internal/optional"
)

// NewSlice converts a slice of values into an Iterator implementation.
func NewSlice[T any](vs []T) idl.Iterator[T] {
	return &iteratorSlice[T]{slice: vs, offset: -1}
}

type iteratorSlice[T any] struct {
	slice  []T
	offset int
}

func (it *iteratorSlice[T]) Next(ctx context.Context) optional.Optional[T] {
	it.offset = it.offset + 1
	if it.offset >= len(it.slice) {
		return optional.None[T]()
	}
	return optional.Some(it.slice[it.offset])
}

func (it *iteratorSlice[T]) Close(ctx context.Context) error {
	return nil
}

// NewIteratorFilter wraps an iterator with a filter so that only values that
// pass the filter are returned.
func NewIteratorFilter[T any](it idl.Iterator[T], f idl.Filter[T]) idl.Iterator[T] {
	return &iteratorFilter[T]{
		iter:   it,
		filter: f,
	}
}

type iteratorFilter[T any] struct {
	iter   idl.Iterator[T]
	filter idl.Filter[T]
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

// Collect drains the iterator into a slice and closes it. The context is
// checked between values so that a long stream can be abandoned.
func Collect[T any](ctx context.Context, it idl.Iterator[T]) ([]T, error) {
	var out []T
	for {
		if err := ctx.Err(); err != nil {
			_ = it.Close(ctx)
			return out, err
		}
		v := it.Next(ctx)
		if !v.IsPresent() {
			break
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

// Any combines filters so that a value is kept when at least one keeps it.
// With no filters every value is kept.
func Any[T any](filters ...idl.Filter[T]) idl.Filter[T] {
	return FilterFunc[T](func(ctx context.Context, val T) bool {
		if len(filters) == 0 {
			return true
		}
		for _, f := range filters {
			if f.Keep(ctx, val) {
				return true
			}
		}
		return false
	})
}
