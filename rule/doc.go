// Package rule provides the stage constructors of the query engine.
//
// Each constructor (Select, Pluck, Where, Flat, Take, Skip, Map, Tap)
// captures its parameters and returns a Rule: a lazy transformer from
// one value stream to another. Rules do no work until the stream they
// produce is pulled, buffer at most one group iterator (Flat), and
// chain Close upstream so early termination finalizes every suspended
// producer.
//
// Compose joins rules into one; a query.Builder is the fluent way to
// accumulate and compose them.
package rule
