// Generic ordering of optionally-weighted header directives.
package weighted

import (
	"sort"
)

// Sortable is implemented by directive types that carry an optional quality
// weight.
type Sortable interface {
	// SortWeight returns the weight used for ordering. Directives without an
	// explicit weight report 1.0.
	SortWeight() float64
}

/*
Sort orders items by weight, highest first. Among items of equal weight, the
one declared later comes first, matching how clients override earlier
directives with later ones of the same precedence.

The slice is reordered in place.
*/
func Sort[E Sortable](items []E) {
	// Reversing first, then sorting stably on weight alone, makes
	// later-declared items win ties.
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SortWeight() > items[j].SortWeight()
	})
}
