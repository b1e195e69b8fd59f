package query

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/kbukum/querykit/rule"
)

// Builder accumulates an ordered list of stages and compiles them into
// one rule. Chaining methods mutate the Builder in place and return the
// same instance; a Builder is a single-owner object during
// construction and is not safe for concurrent mutation.
type Builder struct {
	rules []rule.Rule
	opts  options
}

// New returns an empty Builder. Its compiled rule is the identity
// until stages are appended.
func New(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(&b.opts)
	}
	return b
}

// Select appends a field-projection stage: each element becomes a fresh
// record holding exactly the given fields, shallow-copied by reference.
func (b *Builder) Select(fields ...string) *Builder {
	return b.Append(rule.Select(fields...))
}

// Pluck appends a single-field stage: each element is replaced by the
// named field's value, with no wrapping record.
func (b *Builder) Pluck(field string) *Builder {
	return b.Append(rule.Pluck(field))
}

// Where appends a filter stage. The predicate's index is the element's
// position in the stage's input, counting rejected elements too.
func (b *Builder) Where(pred func(ctx context.Context, value any, index int) (bool, error)) *Builder {
	return b.Append(rule.Where(pred))
}

// Flat appends a group-flattening stage that expands every group.
func (b *Builder) Flat() *Builder {
	return b.Append(rule.Flat(rule.Unlimited))
}

// FlatN appends a group-flattening stage limited to the first groups
// groups; after that many have been expanded the stream ends and
// remaining groups are never pulled.
func (b *Builder) FlatN(groups int) *Builder {
	return b.Append(rule.Flat(groups))
}

// Take appends a stage that yields the first n elements.
func (b *Builder) Take(n int) *Builder {
	return b.Append(rule.Take(n))
}

// Skip appends a stage that discards the first n elements.
func (b *Builder) Skip(n int) *Builder {
	return b.Append(rule.Skip(n))
}

// Map appends a transformation stage with a zero-based element index.
func (b *Builder) Map(fn func(ctx context.Context, value any, index int) (any, error)) *Builder {
	return b.Append(rule.Map(fn))
}

// Tap appends a side-effect stage that passes elements through
// unchanged.
func (b *Builder) Tap(fn func(ctx context.Context, value any) error) *Builder {
	return b.Append(rule.Tap(fn))
}

// Append appends pre-built rules, enabling custom stages and reuse of
// another Builder's compiled rule.
func (b *Builder) Append(rules ...rule.Rule) *Builder {
	b.rules = append(b.rules, rules...)
	return b
}

// Len reports the current stage-list length.
func (b *Builder) Len() int {
	return len(b.rules)
}

// Compile returns one rule equal to applying every stage in insertion
// order; with no stages it is the identity. Compile never mutates the
// stage list, and repeated calls return independent snapshots.
func (b *Builder) Compile() rule.Rule {
	return rule.Compose(slices.Clone(b.rules)...)
}

// Build returns an Executor with no source bound. Consuming it before
// On fails with NOT_ITERABLE on first pull.
func (b *Builder) Build() *Executor {
	return b.newExecutor(nil)
}

// On returns an Executor over Compile's result bound to source.
func (b *Builder) On(source any) *Executor {
	return b.newExecutor(source)
}

// Extend returns a new Builder whose single stage is this Builder's
// compiled snapshot at this instant. Mutating either Builder afterwards
// never affects the other.
func (b *Builder) Extend() *Builder {
	return &Builder{
		rules: []rule.Rule{b.Compile()},
		opts:  b.opts,
	}
}

// Pack collapses the stage list, in place, to a single already-composed
// stage. Output is unchanged; future compiles no longer re-walk the
// original list. Returns the same Builder.
func (b *Builder) Pack() *Builder {
	b.rules = []rule.Rule{b.Compile()}
	return b
}

func (b *Builder) newExecutor(source any) *Executor {
	return &Executor{
		id:     uuid.NewString(),
		rule:   b.Compile(),
		source: source,
		opts:   b.opts,
	}
}
