// Package stream provides the pull-based iterator primitive the query
// engine is built on.
//
// Iterators are lazy: no work happens until values are pulled via
// Next, Collect, or ForEach. Each adapter pulls from its upstream on
// demand, one value at a time, and Close propagates upstream so
// suspended producers are finalized even when only a prefix of the
// stream is consumed.
//
// FromAny adapts arbitrary source values (slices, arrays, channels,
// range-over-func sequences, or existing Iterators) into Iterator[any]
// for binding to a query. Adaptation never fails eagerly; a value that
// cannot be iterated yields an iterator whose first pull reports
// NOT_ITERABLE.
//
// Context cancellation is best-effort for synchronous sources: slice
// and sequence iterators do not poll ctx, while channel-backed
// iterators select on ctx.Done.
package stream
