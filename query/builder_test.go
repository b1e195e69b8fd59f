package query

import (
	"context"
	"reflect"
	"testing"

	qerrors "github.com/kbukum/querykit/errors"
	"github.com/kbukum/querykit/rule"
	"github.com/kbukum/querykit/stream"
)

func mustCollect(t *testing.T, e *Executor) []any {
	t.Helper()
	results, err := e.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	return results
}

func equalValues(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func double(_ context.Context, v any, _ int) (any, error) {
	return v.(int) * 2, nil
}

func TestNew_EmptyIsIdentity(t *testing.T) {
	results := mustCollect(t, New().On([]any{1, 2, 3}))
	if !equalValues(results, []any{1, 2, 3}) {
		t.Errorf("expected identity passthrough, got %v", results)
	}
}

func TestBuilder_FluentChainingReturnsSameBuilder(t *testing.T) {
	b := New()
	keep := func(_ context.Context, _ any, _ int) (bool, error) { return true, nil }
	noop := func(_ context.Context, _ any) error { return nil }

	chained := b.Select("a").Pluck("a").Where(keep).Flat().FlatN(1).
		Take(1).Skip(1).Map(double).Tap(noop).Append(rule.Identity)
	if chained != b {
		t.Fatal("chaining methods should return the same Builder")
	}
	if b.Len() != 10 {
		t.Errorf("expected 10 stages, got %d", b.Len())
	}
	if b.Pack() != b {
		t.Error("Pack should return the same Builder")
	}
	if b.Len() != 1 {
		t.Errorf("expected Pack to collapse to 1 stage, got %d", b.Len())
	}
}

func TestBuilder_CompileSnapshotUnaffectedByLaterStages(t *testing.T) {
	b := New().Map(func(_ context.Context, v any, _ int) (any, error) {
		return v.(int) + 10, nil
	})
	snapshot := b.Compile()
	b.Take(1)

	// The snapshot predates Take and must not truncate.
	results, err := stream.Collect(context.Background(), snapshot(stream.FromSlice([]any{1, 2, 3})))
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if !equalValues(results, []any{11, 12, 13}) {
		t.Errorf("expected [11 12 13] from snapshot, got %v", results)
	}

	if b.Len() != 2 {
		t.Errorf("expected builder to keep both stages, got %d", b.Len())
	}
	after := mustCollect(t, b.On([]any{1, 2, 3}))
	if !equalValues(after, []any{11}) {
		t.Errorf("expected [11] from mutated builder, got %v", after)
	}
}

func TestBuilder_OnCompilesSnapshot(t *testing.T) {
	b := New().Map(double)
	e := b.On([]any{1, 2, 3})
	b.Take(1)

	results := mustCollect(t, e)
	if !equalValues(results, []any{2, 4, 6}) {
		t.Errorf("executor should hold the rule compiled at On time, got %v", results)
	}
}

func TestBuilder_ExtendIsolatesBothDirections(t *testing.T) {
	parent := New().Map(double)
	child := parent.Extend()
	child.Map(func(_ context.Context, v any, _ int) (any, error) {
		return v.(int) + 1, nil
	})
	parent.Take(1)

	parentOut := mustCollect(t, parent.On([]any{1, 2, 3}))
	if !equalValues(parentOut, []any{2}) {
		t.Errorf("parent should double then truncate, got %v", parentOut)
	}
	childOut := mustCollect(t, child.On([]any{1, 2, 3}))
	if !equalValues(childOut, []any{3, 5, 7}) {
		t.Errorf("child should double then increment without truncation, got %v", childOut)
	}
}

func TestBuilder_PackPreservesOutput(t *testing.T) {
	build := func() *Builder {
		return New().
			Map(double).
			Where(func(_ context.Context, v any, _ int) (bool, error) {
				return v.(int) > 2, nil
			}).
			Skip(1)
	}

	before := mustCollect(t, build().On([]any{1, 2, 3, 4}))

	b := build()
	b.Pack()
	if b.Len() != 1 {
		t.Fatalf("expected 1 stage after Pack, got %d", b.Len())
	}
	after := mustCollect(t, b.On([]any{1, 2, 3, 4}))
	if !equalValues(before, after) {
		t.Errorf("Pack changed output: before %v, after %v", before, after)
	}
}

func TestBuilder_PackOnEmpty(t *testing.T) {
	b := New().Pack()
	if b.Len() != 1 {
		t.Fatalf("expected a single identity stage, got %d", b.Len())
	}
	results := mustCollect(t, b.On([]any{"x"}))
	if !equalValues(results, []any{"x"}) {
		t.Errorf("expected passthrough, got %v", results)
	}
}

func TestBuilder_BuildUnboundFailsNotIterable(t *testing.T) {
	e := New().Take(1).Build()
	_, err := e.Collect(context.Background())
	if err == nil {
		t.Fatal("expected error collecting from an unbound executor")
	}
	if code := qerrors.CodeOf(err); code != qerrors.ErrCodeNotIterable {
		t.Errorf("expected code %s, got %s", qerrors.ErrCodeNotIterable, code)
	}
}

func TestBuilder_AppendCompiledRule(t *testing.T) {
	truncate := New().Take(2).Compile()
	b := New().Map(double).Append(truncate)

	results := mustCollect(t, b.On([]any{1, 2, 3, 4}))
	if !equalValues(results, []any{2, 4}) {
		t.Errorf("expected [2 4], got %v", results)
	}
}
