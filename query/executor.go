package query

import (
	"context"
	"iter"
	"sync"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/querykit/logger"
	"github.com/kbukum/querykit/observability"
	"github.com/kbukum/querykit/rule"
	"github.com/kbukum/querykit/stream"
)

// Executor pairs a compiled rule with a data source. The rule is
// immutable once built; the source can be rebound with On between
// runs. Every terminal re-runs the pipeline from the start, so a
// restartable source (a slice, say) can be consumed any number of
// times, while a one-shot source such as a live Iterator drains once.
type Executor struct {
	id     string
	rule   rule.Rule
	source any
	opts   options
}

// ID returns the executor's identifier, carried as query_id in logs,
// metrics and spans.
func (e *Executor) ID() string {
	return e.id
}

// On rebinds the executor to a new source and returns the same
// executor. The compiled rule is untouched.
func (e *Executor) On(source any) *Executor {
	e.source = source
	return e
}

// Extend returns a new Builder seeded with this executor's compiled
// rule as its single stage. Stages appended to the new Builder never
// affect this executor.
func (e *Executor) Extend() *Builder {
	return &Builder{
		rules: []rule.Rule{e.rule},
		opts:  e.opts,
	}
}

// Iter adapts the current source and applies the rule, returning the
// resulting iterator without consuming it. The caller owns Close. An
// unbound or non-iterable source surfaces NOT_ITERABLE on first pull.
func (e *Executor) Iter() stream.Iterator[any] {
	return e.rule(stream.FromAny(e.source))
}

// All returns the pipeline as a value/error sequence for range-over.
// Breaking out of the loop closes the underlying iterator.
func (e *Executor) All(ctx context.Context) iter.Seq2[any, error] {
	return stream.ToSeq2(ctx, e.Iter())
}

// Collect runs the pipeline and returns every produced value in order.
func (e *Executor) Collect(ctx context.Context) ([]any, error) {
	ctx, finish := e.begin(ctx, "collect", observability.SpanCollect)
	results, err := stream.Collect(ctx, e.Iter())
	finish(ctx, len(results), err)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// CollectAsync runs the pipeline, handing every produced value and its
// zero-based production index to fn in its own goroutine as soon as the
// value is produced, and returns the transformed values ordered by
// production position regardless of completion order. A nil fn collects
// values unchanged. The first failure, from production or from any fn,
// is returned without waiting for the remaining goroutines; those run
// to completion on their own.
func (e *Executor) CollectAsync(ctx context.Context, fn func(ctx context.Context, value any, index int) (any, error)) ([]any, error) {
	ctx, finish := e.begin(ctx, "collect_async", observability.SpanCollectAsync)
	if fn == nil {
		fn = func(_ context.Context, value any, _ int) (any, error) { return value, nil }
	}

	it := e.Iter()
	defer it.Close()

	// Each produced value gets its own heap cell, so goroutines write
	// results without touching the growing slice.
	type cell struct {
		value any
	}
	var (
		cells    []*cell
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr = make(chan error, 1)
	)

	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			finish(ctx, len(cells), err)
			return nil, err
		}
		if !ok {
			break
		}
		c := &cell{}
		cells = append(cells, c)
		wg.Add(1)
		go func(c *cell, val any, index int) {
			defer wg.Done()
			out, err := fn(ctx, val, index)
			if err != nil {
				errOnce.Do(func() { firstErr <- err })
				return
			}
			c.value = out
		}(c, val, len(cells)-1)
	}

	waitCh := make(chan struct{})
	go func() {
		wg.Wait()
		close(waitCh)
	}()

	select {
	case err := <-firstErr:
		finish(ctx, len(cells), err)
		return nil, err
	case <-waitCh:
		// All goroutines are done; an error may still be queued if it
		// lost the race with waitCh.
		select {
		case err := <-firstErr:
			finish(ctx, len(cells), err)
			return nil, err
		default:
		}
	}

	results := make([]any, len(cells))
	for i, c := range cells {
		results[i] = c.value
	}
	finish(ctx, len(results), nil)
	return results, nil
}

// ForEach runs the pipeline and calls fn for each value in order. The
// first error, fn's or the pipeline's, aborts the run; values already
// handed to fn keep their effects.
func (e *Executor) ForEach(ctx context.Context, fn func(ctx context.Context, value any) error) error {
	return e.forEach(ctx, "foreach", observability.SpanForEach, func(ctx context.Context, value any, _ int) error {
		return fn(ctx, value)
	})
}

// ForEachIndexed is ForEach with the value's zero-based output
// position passed alongside it.
func (e *Executor) ForEachIndexed(ctx context.Context, fn func(ctx context.Context, value any, index int) error) error {
	return e.forEach(ctx, "foreach_indexed", observability.SpanForEachIndexed, fn)
}

func (e *Executor) forEach(ctx context.Context, op, spanName string, fn func(ctx context.Context, value any, index int) error) error {
	ctx, finish := e.begin(ctx, op, spanName)
	it := e.Iter()
	defer it.Close()

	produced := 0
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			finish(ctx, produced, err)
			return err
		}
		if !ok {
			finish(ctx, produced, nil)
			return nil
		}
		produced++
		if err := fn(ctx, val, produced-1); err != nil {
			finish(ctx, produced, err)
			return err
		}
	}
}

// begin starts instrumentation for one terminal run and returns a
// finish callback to invoke on every exit path. With no logger,
// metrics or tracing configured both are no-ops.
func (e *Executor) begin(ctx context.Context, op, spanName string) (context.Context, func(ctx context.Context, produced int, err error)) {
	if e.opts.log == nil && e.opts.metrics == nil && !e.opts.tracing {
		return ctx, func(context.Context, int, error) {}
	}

	oc := observability.NewOperationContext(e.opts.serviceName, op, e.id, e.opts.metrics)
	var span trace.Span
	if e.opts.tracing {
		ctx, span = oc.StartSpanForOperation(ctx, spanName)
	}

	return ctx, func(ctx context.Context, produced int, err error) {
		oc.EndOperation(ctx, span, statusOf(err), produced, err)
		if e.opts.log == nil {
			return
		}
		fields := logger.Fields(
			logger.FieldQueryID, e.id,
			logger.FieldOperation, op,
			logger.FieldCount, produced,
			logger.FieldDuration, oc.Duration().Milliseconds(),
		)
		if err != nil {
			fields[logger.FieldError] = err.Error()
			e.opts.log.Error("query operation failed", fields)
			return
		}
		e.opts.log.Debug("query operation complete", fields)
	}
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
