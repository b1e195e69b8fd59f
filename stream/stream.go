package stream

import "context"

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// --- Constructors ---

// FromSlice creates an iterator over a slice of values.
func FromSlice[T any](items []T) Iterator[T] {
	return &sliceIter[T]{items: items}
}

// FromChannel creates an iterator that receives from a channel.
// The iterator is exhausted when the channel is closed; an unclosed
// channel blocks Next until a value arrives or ctx is cancelled.
func FromChannel[T any](ch <-chan T) Iterator[T] {
	return &chanIter[T]{ch: ch}
}

// Empty returns an already-exhausted iterator.
func Empty[T any]() Iterator[T] {
	return emptyIter[T]{}
}

// Fail returns an iterator whose every Next reports err.
func Fail[T any](err error) Iterator[T] {
	return &failIter[T]{err: err}
}

// --- Terminals ---

// Collect pulls all values into a slice, closing the iterator on every
// exit path.
func Collect[T any](ctx context.Context, it Iterator[T]) ([]T, error) {
	defer it.Close()
	var result []T
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, val)
	}
}

// ForEach pulls all values and calls fn for each, closing the iterator
// on every exit path. The first error (fn's or the iterator's) aborts.
func ForEach[T any](ctx context.Context, it Iterator[T], fn func(context.Context, T) error) error {
	defer it.Close()
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(ctx, val); err != nil {
			return err
		}
	}
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }

type chanIter[T any] struct {
	ch <-chan T
}

func (it *chanIter[T]) Next(ctx context.Context) (T, bool, error) {
	select {
	case val, open := <-it.ch:
		if !open {
			var zero T
			return zero, false, nil
		}
		return val, true, nil
	case <-ctx.Done():
		var zero T
		return zero, false, ctx.Err()
	}
}

func (it *chanIter[T]) Close() error { return nil }

type emptyIter[T any] struct{}

func (emptyIter[T]) Next(_ context.Context) (T, bool, error) {
	var zero T
	return zero, false, nil
}

func (emptyIter[T]) Close() error { return nil }

type failIter[T any] struct {
	err error
}

func (it *failIter[T]) Next(_ context.Context) (T, bool, error) {
	var zero T
	return zero, false, it.err
}

func (it *failIter[T]) Close() error { return nil }
