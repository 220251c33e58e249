// Package closure implements the prefix-closure algorithm: expanding a
// sparse prefix→rate mapping so that every leading substring of every
// defined prefix is addressable, and resolving the introduced
// placeholders to their nearest defined ancestor.
package closure

import (
	"rate-table/core/rate"
)

// Base is the sparse prefix→rate mapping built from accepted input
// rows. It is fully built during ingestion and treated as immutable by
// every later stage.
type Base struct {
	entries map[string]rate.Micro
}

// NewBase creates an empty base mapping.
func NewBase() *Base {
	return &Base{entries: make(map[string]rate.Micro)}
}

// Put inserts or replaces the rate for a prefix. Duplicate prefixes
// follow last-write-wins: the value from the latest call survives.
// This is a deliberate policy, matching input-order overwrite
// semantics, not incidental map behavior.
func (b *Base) Put(prefix string, r rate.Micro) {
	b.entries[prefix] = r
}

// Get returns the rate for a prefix, if defined.
func (b *Base) Get(prefix string) (rate.Micro, bool) {
	r, ok := b.entries[prefix]
	return r, ok
}

// Len returns the number of distinct prefixes.
func (b *Base) Len() int {
	return len(b.entries)
}

// Prefixes calls fn for every defined prefix. Iteration order is
// unspecified; the closure algorithm is order-independent.
func (b *Base) Prefixes(fn func(prefix string, r rate.Micro)) {
	for p, r := range b.entries {
		fn(p, r)
	}
}
