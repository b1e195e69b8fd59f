package stream

import (
	"context"
	"iter"
)

// FromSeq adapts a range-over-func sequence. Close stops the suspended
// producer so its deferred cleanup runs even when only a prefix of the
// sequence is consumed.
func FromSeq[T any](seq iter.Seq[T]) Iterator[T] {
	next, stop := iter.Pull(seq)
	return &seqIter[T]{next: next, stop: stop}
}

// FromSeq2 adapts a range-over-func sequence of (value, error) pairs.
// A non-nil error ends iteration and stops the producer.
func FromSeq2[T any](seq iter.Seq2[T, error]) Iterator[T] {
	next, stop := iter.Pull2(seq)
	return &seq2Iter[T]{next: next, stop: stop}
}

// ToSeq2 exposes an iterator as a range-over-func sequence of
// (value, error) pairs. The iterator is closed when the loop completes,
// breaks early, or the iterator fails.
func ToSeq2[T any](ctx context.Context, it Iterator[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		defer it.Close()
		for {
			val, ok, err := it.Next(ctx)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !ok {
				return
			}
			if !yield(val, nil) {
				return
			}
		}
	}
}

type seqIter[T any] struct {
	next func() (T, bool)
	stop func()
}

func (it *seqIter[T]) Next(_ context.Context) (T, bool, error) {
	val, ok := it.next()
	return val, ok, nil
}

func (it *seqIter[T]) Close() error {
	it.stop()
	return nil
}

type seq2Iter[T any] struct {
	next func() (T, error, bool)
	stop func()
}

func (it *seq2Iter[T]) Next(_ context.Context) (T, bool, error) {
	val, err, ok := it.next()
	if !ok {
		var zero T
		return zero, false, nil
	}
	if err != nil {
		it.stop()
		var zero T
		return zero, false, err
	}
	return val, true, nil
}

func (it *seq2Iter[T]) Close() error {
	it.stop()
	return nil
}
