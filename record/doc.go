// Package record provides dynamic field access over the values flowing
// through a query: name-keyed lookup, shallow projection, and codecs
// that turn byte streams of concatenated JSON or MessagePack documents
// into record sources.
//
// Field and Project treat string-keyed maps and exported struct fields
// uniformly; a missing field is nil. Projection is shallow: projected
// values reference the same underlying data as the source.
package record
