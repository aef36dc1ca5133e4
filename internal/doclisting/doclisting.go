// Package doclisting implements DocListing (§4.8): over an SA interval it
// reports the columns touched, in SA order, with adjacent duplicates
// suppressed — and, separately, the fully deduplicated set when a caller
// wants that instead.
package doclisting

import "golang.org/x/exp/slices"

// List returns [C[i], then C[k] for every k in (i,j) where C[k] != C[k-1]],
// per §4.8. The half-open range [i, j) is over the original SA-order
// column array C (not an RLE-compressed one). Adjacent duplicates are
// suppressed, but the result is not globally unique — callers after
// SA-order-sensitive output (e.g. a SAM emitter) need exactly this form.
func List(c []int, i, j int) []int {
	res := []int{c[i]}
	for k := i + 1; k < j; k++ {
		if c[k-1] != c[k] {
			res = append(res, c[k])
		}
	}
	return res
}

// Unique sorts and deduplicates the adjacency-deduped list from List — the
// "additional sort-and-unique pass" §4.8 calls optional. Used by
// internal/index.Query, whose end-to-end scenarios describe the final
// answer in globally-unique form.
func Unique(cols []int) []int {
	out := append([]int(nil), cols...)
	slices.Sort(out)
	return slices.Compact(out)
}
