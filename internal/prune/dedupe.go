package prune

import (
	"sort"
	"strings"
)

// Dedupe collapses a set of addresses to its minimal covering subset: an
// address whose ancestor is also present is redundant and dropped. Sorting
// lexicographically is a valid proxy for path-prefix ordering because child
// segments are only ever appended, so an ancestor always sorts immediately
// before its descendants. Survivors are returned in sorted order.
func Dedupe(addrs []string) []string {
	sorted := make([]string, len(addrs))
	copy(sorted, addrs)
	sort.Strings(sorted)

	redundant := make([]bool, len(sorted))
	for i, addr := range sorted {
		if redundant[i] {
			continue
		}
		for j := i + 1; j < len(sorted); j++ {
			if strings.HasPrefix(sorted[j], addr) {
				redundant[j] = true
			}
		}
	}

	out := sorted[:0]
	for i, addr := range sorted {
		if !redundant[i] {
			out = append(out, addr)
		}
	}
	return out
}
