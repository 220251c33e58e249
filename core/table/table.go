// Package table compiles the resolved prefix closure into the dense,
// sorted rate table artifact and serves longest-prefix-match lookups
// over it.
package table

import (
	"encoding/json"
	"sort"

	"rate-table/core/closure"
	"rate-table/core/rate"
	"rate-table/internal/errors"
)

// Table is the compiled rate table: two positionally aligned parallel
// sequences, with Prefixes strictly increasing in lexicographic byte
// order. This is the sole durable output of the pipeline and the
// contract routing-time consumers binary-search against.
type Table struct {
	Prefixes []string     `json:"prefixes"`
	Rates    []rate.Micro `json:"rates"`
}

// Compile filters the closure down to resolved entries, sorts them
// lexicographically and builds the aligned parallel sequences.
// Permanently unresolved placeholders are dropped here.
func Compile(c *closure.Closure) *Table {
	entries := c.ResolvedEntries()
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Prefix < entries[j].Prefix
	})

	t := &Table{
		Prefixes: make([]string, len(entries)),
		Rates:    make([]rate.Micro, len(entries)),
	}
	for i, e := range entries {
		t.Prefixes[i] = e.Prefix
		t.Rates[i] = e.Rate
	}
	return t
}

// Len returns the number of table entries.
func (t *Table) Len() int {
	return len(t.Prefixes)
}

// Validate checks the structural invariants: equal-length sequences
// and strictly increasing prefixes with no duplicates.
func (t *Table) Validate() error {
	if len(t.Prefixes) != len(t.Rates) {
		return errors.Newf(errors.TypeInternal,
			"misaligned table: %d prefixes, %d rates", len(t.Prefixes), len(t.Rates))
	}
	for i := 1; i < len(t.Prefixes); i++ {
		if t.Prefixes[i-1] >= t.Prefixes[i] {
			return errors.Newf(errors.TypeInternal,
				"prefixes not strictly increasing at %d: %q >= %q",
				i, t.Prefixes[i-1], t.Prefixes[i])
		}
	}
	return nil
}

// Marshal encodes the artifact as compact JSON with exactly two
// top-level fields. Identical input always yields byte-identical
// output.
func (t *Table) Marshal() ([]byte, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return nil, errors.Internal("failed to encode rate table", err)
	}
	return data, nil
}

// Unmarshal decodes an artifact previously produced by Marshal and
// validates its invariants.
func Unmarshal(data []byte) (*Table, error) {
	var t Table
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, errors.Parsing("failed to decode rate table", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}
