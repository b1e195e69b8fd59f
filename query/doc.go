// Package query provides a fluent builder for reusable, lazy query
// pipelines over heterogeneous data sources.
//
// A Builder accumulates stages (Select, Where, Map, ...) in insertion
// order, compiles them into a single rule, and binds the rule to a
// source with On. Nothing runs until a terminal on the resulting
// Executor pulls values, and every terminal re-runs the pipeline from
// the start.
//
// # Stages
//
//   - Select: project each record down to named fields
//   - Pluck: replace each record with one field's value
//   - Where: keep values matching a predicate
//   - Flat / FlatN: expand grouped values, optionally capped
//   - Take / Skip: positional truncation
//   - Map: transform each value with its position
//   - Tap: side-effect without altering the value
//   - Append: splice in pre-built rules
//
// # Terminals
//
//   - Collect: gather all values into a slice
//   - CollectAsync: per-value goroutine fan-out, production order kept
//   - ForEach / ForEachIndexed: visit values in order
//   - All: range-over iter.Seq2
//   - Iter: the raw iterator, caller-driven
//
// # Usage
//
//	users := query.New().
//	    Where(func(_ context.Context, v any, _ int) (bool, error) {
//	        u, ok := v.(map[string]any)
//	        return ok && u["active"] == true, nil
//	    }).
//	    Select("id", "name").
//	    On(source)
//	results, err := users.Collect(ctx)
//
// Sources may be slices, channels, iter.Seq / iter.Seq2 sequences, or
// stream.Iterator values; anything else fails with NOT_ITERABLE when
// first pulled. Builders are reusable: Extend forks a snapshot, Pack
// collapses the stage list in place, and On rebinds an executor to a
// new source between runs.
package query
