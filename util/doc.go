// Package util provides small generic helpers shared across the module:
// pointer construction and dereferencing, zero-value coalescing, and
// slice/map conveniences.
package util
