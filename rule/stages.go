package rule

import (
	"context"

	"github.com/kbukum/querykit/record"
	"github.com/kbukum/querykit/stream"
)

// Select projects every element to a fresh record holding exactly the
// requested fields, each value copied by reference from the element's
// field of the same name. A field the element does not have maps to
// nil. Nested structure stays shared with the source element.
func Select(fields ...string) Rule {
	return func(in stream.Iterator[any]) stream.Iterator[any] {
		return &selectIter{source: in, fields: fields}
	}
}

// Pluck yields the named field's value of every element directly, with
// no wrapping record. A missing field yields nil.
func Pluck(field string) Rule {
	return func(in stream.Iterator[any]) stream.Iterator[any] {
		return &pluckIter{source: in, field: field}
	}
}

// Where passes an element through iff pred returns true. The index
// passed to pred is the element's zero-based position in the input
// stream, counting rejected elements too.
func Where(pred func(ctx context.Context, value any, index int) (bool, error)) Rule {
	return func(in stream.Iterator[any]) stream.Iterator[any] {
		return &whereIter{source: in, pred: pred}
	}
}

// Flat treats each input element as an iterable group and yields its
// members, one group fully expanded at a time, in order. With groups
// negative (Unlimited) every group is expanded. With groups >= 0,
// iteration stops entirely after that many groups have been expanded:
// remaining input groups are discarded, never passed through
// unflattened, and never pulled from the input. A group that is not
// iterable fails the pull with NOT_ITERABLE.
func Flat(groups int) Rule {
	return func(in stream.Iterator[any]) stream.Iterator[any] {
		return &flatIter{source: in, groups: groups}
	}
}

// Take yields the first n elements, then reports exhaustion without
// pulling further input.
func Take(n int) Rule {
	return func(in stream.Iterator[any]) stream.Iterator[any] {
		return &takeIter{source: in, n: n}
	}
}

// Skip discards the first n input elements positionally and passes
// every subsequent element through unchanged.
func Skip(n int) Rule {
	return func(in stream.Iterator[any]) stream.Iterator[any] {
		return &skipIter{source: in, n: n}
	}
}

// Map yields fn(value, index) for each element, in order. The index is
// zero-based and increments once per input element.
func Map(fn func(ctx context.Context, value any, index int) (any, error)) Rule {
	return func(in stream.Iterator[any]) stream.Iterator[any] {
		return &mapIter{source: in, fn: fn}
	}
}

// Tap calls fn as a side-effect for each element, then passes the
// element through unchanged. An error from fn aborts the pull.
func Tap(fn func(ctx context.Context, value any) error) Rule {
	return func(in stream.Iterator[any]) stream.Iterator[any] {
		return &tapIter{source: in, fn: fn}
	}
}

// --- Iterator implementations ---

type selectIter struct {
	source stream.Iterator[any]
	fields []string
}

func (it *selectIter) Next(ctx context.Context) (any, bool, error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return nil, false, err
	}
	return record.Project(val, it.fields...), true, nil
}

func (it *selectIter) Close() error { return it.source.Close() }

type pluckIter struct {
	source stream.Iterator[any]
	field  string
}

func (it *pluckIter) Next(ctx context.Context) (any, bool, error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return nil, false, err
	}
	return record.Field(val, it.field), true, nil
}

func (it *pluckIter) Close() error { return it.source.Close() }

type whereIter struct {
	source stream.Iterator[any]
	pred   func(context.Context, any, int) (bool, error)
	index  int
}

func (it *whereIter) Next(ctx context.Context) (any, bool, error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return nil, false, err
		}
		idx := it.index
		it.index++
		keep, err := it.pred(ctx, val, idx)
		if err != nil {
			return nil, false, err
		}
		if keep {
			return val, true, nil
		}
	}
}

func (it *whereIter) Close() error { return it.source.Close() }

type flatIter struct {
	source   stream.Iterator[any]
	groups   int
	expanded int
	current  stream.Iterator[any]
	done     bool
}

func (it *flatIter) Next(ctx context.Context) (any, bool, error) {
	for {
		if it.done {
			return nil, false, nil
		}
		if it.current == nil {
			if it.groups >= 0 && it.expanded >= it.groups {
				it.done = true
				return nil, false, nil
			}
			group, ok, err := it.source.Next(ctx)
			if err != nil {
				return nil, false, err
			}
			if !ok {
				it.done = true
				return nil, false, nil
			}
			it.current = stream.FromAny(group)
		}
		val, ok, err := it.current.Next(ctx)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return val, true, nil
		}
		_ = it.current.Close()
		it.current = nil
		it.expanded++
	}
}

func (it *flatIter) Close() error {
	if it.current != nil {
		_ = it.current.Close()
	}
	return it.source.Close()
}

type takeIter struct {
	source stream.Iterator[any]
	n      int
	taken  int
}

func (it *takeIter) Next(ctx context.Context) (any, bool, error) {
	if it.taken >= it.n {
		return nil, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return nil, false, err
	}
	it.taken++
	return val, true, nil
}

func (it *takeIter) Close() error { return it.source.Close() }

type skipIter struct {
	source  stream.Iterator[any]
	n       int
	skipped bool
}

func (it *skipIter) Next(ctx context.Context) (any, bool, error) {
	if !it.skipped {
		it.skipped = true
		for i := 0; i < it.n; i++ {
			_, ok, err := it.source.Next(ctx)
			if err != nil || !ok {
				return nil, false, err
			}
		}
	}
	return it.source.Next(ctx)
}

func (it *skipIter) Close() error { return it.source.Close() }

type mapIter struct {
	source stream.Iterator[any]
	fn     func(context.Context, any, int) (any, error)
	index  int
}

func (it *mapIter) Next(ctx context.Context) (any, bool, error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return nil, false, err
	}
	idx := it.index
	it.index++
	out, err := it.fn(ctx, val, idx)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

func (it *mapIter) Close() error { return it.source.Close() }

type tapIter struct {
	source stream.Iterator[any]
	fn     func(context.Context, any) error
}

func (it *tapIter) Next(ctx context.Context) (any, bool, error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return nil, false, err
	}
	if err := it.fn(ctx, val); err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (it *tapIter) Close() error { return it.source.Close() }
