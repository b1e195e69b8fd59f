package rule

import "github.com/kbukum/querykit/stream"

// Rule transforms one value stream into another. A Rule is pure with
// respect to its construction parameters: applying it allocates fresh
// adapter state, so the same Rule can be applied to any number of
// sources independently.
type Rule func(stream.Iterator[any]) stream.Iterator[any]

// Unlimited expands every group when passed to Flat.
const Unlimited = -1

// Identity passes the input stream through unchanged.
func Identity(in stream.Iterator[any]) stream.Iterator[any] { return in }

// Compose chains rules in order: the first rule's output feeds the
// second rule's input, and so on. Composing nothing yields Identity.
func Compose(rules ...Rule) Rule {
	if len(rules) == 0 {
		return Identity
	}
	return func(in stream.Iterator[any]) stream.Iterator[any] {
		out := in
		for _, r := range rules {
			out = r(out)
		}
		return out
	}
}
