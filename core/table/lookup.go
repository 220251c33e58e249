package table

import (
	"sort"

	"rate-table/core/rate"
)

// maxPrefixLen bounds the candidate lengths probed during lookup.
// Dialing prefixes follow E.164, which caps numbers at 15 digits.
const maxPrefixLen = 15

// Longest returns the rate of the longest table prefix that is a
// leading substring of number. Closure-completeness guarantees that if
// any prefix of the number is in the table, so is the longest one, so
// one binary-search membership probe per candidate length is exact.
func (t *Table) Longest(number string) (rate.Micro, bool) {
	n := len(number)
	if n > maxPrefixLen {
		n = maxPrefixLen
	}
	for i := n; i >= 1; i-- {
		candidate := number[:i]
		j := sort.SearchStrings(t.Prefixes, candidate)
		if j < len(t.Prefixes) && t.Prefixes[j] == candidate {
			return t.Rates[j], true
		}
	}
	return 0, false
}
