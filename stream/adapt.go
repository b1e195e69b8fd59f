package stream

import (
	"context"
	"iter"
	"reflect"

	"github.com/kbukum/querykit/errors"
)

// FromAny adapts an arbitrary source value into an Iterator[any].
//
// Accepted sources: Iterator[any] (used as-is, so it is consumed
// one-shot), iter.Seq[any], iter.Seq2[any, error], receive-capable
// channels, []any, and any other slice or array via reflection. Slices
// and arrays adapt to a fresh iterator on every call, so they are
// restartable.
//
// Anything else, including nil, is not rejected here: the returned
// iterator fails on first pull with a NOT_ITERABLE error. Strings and
// maps are deliberately not iterable; a string is an atomic value, and
// map iteration order would not be a sequence.
func FromAny(source any) Iterator[any] {
	switch src := source.(type) {
	case nil:
		return Fail[any](errors.NotIterable(source))
	case Iterator[any]:
		return src
	case []any:
		return FromSlice(src)
	case iter.Seq[any]:
		return FromSeq(src)
	case func(func(any) bool):
		return FromSeq(iter.Seq[any](src))
	case iter.Seq2[any, error]:
		return FromSeq2(src)
	case func(func(any, error) bool):
		return FromSeq2(iter.Seq2[any, error](src))
	case <-chan any:
		return FromChannel(src)
	case chan any:
		return FromChannel(src)
	}

	rv := reflect.ValueOf(source)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return &reflectSliceIter{items: rv}
	case reflect.Chan:
		if rv.Type().ChanDir()&reflect.RecvDir != 0 {
			return &reflectChanIter{ch: rv}
		}
	}

	return Fail[any](errors.NotIterable(source))
}

// reflectSliceIter iterates a typed slice or array by index.
type reflectSliceIter struct {
	items reflect.Value
	index int
}

func (it *reflectSliceIter) Next(_ context.Context) (any, bool, error) {
	if it.index >= it.items.Len() {
		return nil, false, nil
	}
	val := it.items.Index(it.index).Interface()
	it.index++
	return val, true, nil
}

func (it *reflectSliceIter) Close() error { return nil }

// reflectChanIter receives from a typed channel.
type reflectChanIter struct {
	ch reflect.Value
}

func (it *reflectChanIter) Next(ctx context.Context) (any, bool, error) {
	chosen, recv, open := reflect.Select([]reflect.SelectCase{
		{Dir: reflect.SelectRecv, Chan: it.ch},
		{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(ctx.Done())},
	})
	if chosen == 1 {
		return nil, false, ctx.Err()
	}
	if !open {
		return nil, false, nil
	}
	return recv.Interface(), true, nil
}

func (it *reflectChanIter) Close() error { return nil }
