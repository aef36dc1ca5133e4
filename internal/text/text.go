// Package text implements TextAssembler and EPLookup: it concatenates the
// ungapped projection of every MSA row into one text T, terminated by a
// unique global sentinel, and the coordinate tables needed to translate
// between a T position and the (row, column) it came from.
package text

import "sort"

const (
	RowSeparator   byte = '$'
	GlobalSentinel byte = '#'
)

// Assembled holds T and the coordinate tables built alongside it. All
// fields are read-only after Assemble returns.
type Assembled struct {
	T []byte

	// EP has length N+1. EP[i] is the T position where row i's ungapped
	// characters begin; EP[N] is the position of the global sentinel.
	EP []int

	// N is the row count, W the MSA width.
	N, W int

	// posToCol is the packed pos_to_col table. Row i occupies the slice
	// posToCol[rowStart[i] : rowStart[i]+rowLen[i]+1]: the first rowLen[i]
	// entries are the aligned columns of row i's ungapped characters, in
	// ascending order; the trailing entry is always W, a pseudo-column
	// standing for the row's closing '$'.
	//
	// That trailing entry exists because ColBuilder's predecessor lookup
	// (§4.4) can legitimately land on a row's '$' — in_row_offset(p) then
	// equals len_i, "one past" the row (§4.3's stated edge case) — and
	// needs a defined column to report. original_source/scripts/
	// create_col.py's parse_msa resolves this the same way: it literally
	// appends '$' to each row before building pos_to_col, so every row
	// gets one extra (offset=len_i, column=width) entry. §3's claim that
	// pos_to_col has "total size L" is therefore off by N; this
	// implementation follows the original's actual behavior.
	posToCol []int
	rowStart []int
	rowLen   []int
}

// Assemble runs the TextAssembler scan of spec §4.1 over rows (each of
// width w), producing T = U[0]·$·U[1]·$·…·U[N-1]·$·#.
func Assemble(rows []string, w int) *Assembled {
	n := len(rows)
	a := &Assembled{
		N:  n,
		W:  w,
		EP: make([]int, n+1),
	}
	rowStart := make([]int, n)
	rowLen := make([]int, n)
	var t []byte
	var posToCol []int

	for i, row := range rows {
		rowStart[i] = len(posToCol)
		count := 0
		for c := 0; c < len(row); c++ {
			if row[c] == '-' {
				continue
			}
			t = append(t, row[c])
			posToCol = append(posToCol, c)
			count++
		}
		posToCol = append(posToCol, w) // pseudo-column for the row's '$'
		rowLen[i] = count
		t = append(t, RowSeparator)
		a.EP[i+1] = len(t)
	}
	t = append(t, GlobalSentinel)

	a.T = t
	a.posToCol = posToCol
	a.rowStart = rowStart
	a.rowLen = rowLen
	return a
}

// RowOf returns the row index u such that EP[u] <= p < EP[u+1], i.e. the
// row owning T position p. For p == len(T)-1 (the global sentinel) it
// returns N, the sentinel "row".
func (a *Assembled) RowOf(p int) int {
	// EP[0..N] is nondecreasing; find the last index u with EP[u] <= p.
	u := sort.Search(len(a.EP), func(i int) bool { return a.EP[i] > p }) - 1
	if u < 0 {
		u = 0
	}
	if u >= a.N {
		return a.N
	}
	return u
}

// InRowOffset returns p's 0-based ungapped offset inside its row (RowOf(p)).
// For p pointing at the row's closing '$', this returns len_u (one past the
// row, matching spec §4.3's stated edge case).
func (a *Assembled) InRowOffset(p int) int {
	u := a.RowOf(p)
	if u >= a.N {
		return 0
	}
	return p - a.EP[u]
}

// RowLen returns len_i, the ungapped length of row i.
func (a *Assembled) RowLen(row int) int {
	return a.rowLen[row]
}

// ColOf returns the aligned column of row i's o-th ungapped character
// (pos_to_col[(i,o)]), or W (the pseudo-column) when o == len_i.
func (a *Assembled) ColOf(row, offset int) int {
	return a.posToCol[a.rowStart[row]+offset]
}

// PosInText resolves msa_to_T(row, column): the T position of the
// character that row writes at the given aligned column, or the position
// of row's closing '$' when column == W.
//
// §3 defines msa_to_T as keyed by (row, in-row-ungapped-offset), but §4.7
// indexes it as msa_to_T[(R'[k], C'[k])] — i.e. by (row, column). This
// implementation resolves the inconsistency in favor of the (row, column)
// form BoundarySearch actually needs: row i's populated columns already sit
// in ascending order as posToCol[rowStart[i]:rowStart[i]+rowLen[i]+1], so
// the in-row offset for a given column is one binary search away, and
// T position = EP[row] + offset (row i's ungapped characters are written
// contiguously into T starting at EP[row]). No separate O(N·W) table is
// kept; total extra memory stays O(L), per the budget in §5.
func (a *Assembled) PosInText(row, col int) int {
	if row >= a.N {
		// The sentinel row: its one "column" is the position of '#'.
		return len(a.T) - 1
	}
	start := a.rowStart[row]
	cols := a.posToCol[start : start+a.rowLen[row]+1]
	offset := sort.SearchInts(cols, col)
	return a.EP[row] + offset
}
