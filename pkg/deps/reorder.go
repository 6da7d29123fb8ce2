package deps

import (
	"cmp"
	"math"
	"slices"
)

// Reorder returns the values of items sorted by the manifest rank of their
// keys. Keys the order does not declare sort last; their relative order
// follows map iteration and is unspecified.
func Reorder[V any](items map[string]V, order *Order) []V {
	rank := func(name string) int {
		if r, ok := order.Rank(name); ok {
			return r
		}
		return math.MaxInt
	}

	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	slices.SortStableFunc(names, func(a, b string) int {
		return cmp.Compare(rank(a), rank(b))
	})

	out := make([]V, 0, len(names))
	for _, name := range names {
		out = append(out, items[name])
	}
	return out
}
