package closure

import (
	"rate-table/core/rate"
)

// node is the tagged per-prefix state: either a resolved rate or an
// unresolved placeholder awaiting ancestor resolution.
type node struct {
	rate     rate.Micro
	resolved bool
}

// Closure is the dense prefix mapping derived from a Base. It covers
// every leading substring of every base prefix. Base prefixes carry
// their own rate from construction; placeholders start unresolved.
type Closure struct {
	nodes map[string]node
}

// Entry is a resolved prefix/rate pair.
type Entry struct {
	Prefix string
	Rate   rate.Micro
}

// Expand builds the closure of base. For each base prefix p of length
// n, every leading substring p[:i] (1 ≤ i ≤ n) becomes a node: with the
// base rate if the substring is itself a base prefix, otherwise as an
// unresolved placeholder. Insertion is insert-if-absent, so an existing
// node is never downgraded or reassigned; since base is immutable, a
// node created as a placeholder can never turn out to be a base prefix
// later.
func Expand(base *Base) *Closure {
	c := &Closure{nodes: make(map[string]node, 2*base.Len())}
	base.Prefixes(func(p string, _ rate.Micro) {
		for i := 1; i <= len(p); i++ {
			sub := p[:i]
			if _, ok := c.nodes[sub]; ok {
				continue
			}
			if r, ok := base.Get(sub); ok {
				c.nodes[sub] = node{rate: r, resolved: true}
			} else {
				c.nodes[sub] = node{}
			}
		}
	})
	return c
}

// Resolve fills every unresolved node with the rate of its nearest
// strict ancestor defined in base, scanning ancestor lengths from
// longest to shortest. Lookups go against base, not the closure, so
// resolution never chains through another placeholder. Nodes with no
// defined ancestor at any length stay unresolved; their count is
// returned for diagnostics.
func (c *Closure) Resolve(base *Base) int {
	unresolved := 0
	for p, n := range c.nodes {
		if n.resolved {
			continue
		}
		if r, ok := nearestAncestor(base, p); ok {
			c.nodes[p] = node{rate: r, resolved: true}
		} else {
			unresolved++
		}
	}
	return unresolved
}

// nearestAncestor returns the rate of the longest strict leading
// substring of p defined in base.
func nearestAncestor(base *Base, p string) (rate.Micro, bool) {
	for j := len(p) - 1; j >= 1; j-- {
		if r, ok := base.Get(p[:j]); ok {
			return r, true
		}
	}
	return 0, false
}

// Len returns the number of nodes, resolved or not.
func (c *Closure) Len() int {
	return len(c.nodes)
}

// Rate returns the resolved rate for a prefix, if the node exists and
// has been resolved.
func (c *Closure) Rate(prefix string) (rate.Micro, bool) {
	n, ok := c.nodes[prefix]
	if !ok || !n.resolved {
		return 0, false
	}
	return n.rate, true
}

// ResolvedEntries returns all resolved prefix/rate pairs in unspecified
// order. Unresolved placeholders are omitted.
func (c *Closure) ResolvedEntries() []Entry {
	entries := make([]Entry, 0, len(c.nodes))
	for p, n := range c.nodes {
		if n.resolved {
			entries = append(entries, Entry{Prefix: p, Rate: n.rate})
		}
	}
	return entries
}
