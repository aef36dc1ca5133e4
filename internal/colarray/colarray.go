// Package colarray is the ColBuilder: from SA and the coordinate tables
// built by internal/text, it derives the BWT, the row array R, and the
// column array C, per spec §4.4.
package colarray

import "github.com/xiles84/pancol/internal/text"

// Built holds the three SA-indexed arrays produced by ColBuilder.
type Built struct {
	BWT []byte
	R   []int // row index, or N for the sentinel-predecessor entry
	C   []int // aligned column, or N+1 for the sentinel-predecessor entry
}

// Build implements spec §4.4's five-step derivation for every SA index i.
func Build(t *text.Assembled, sa []int) *Built {
	n := len(sa)
	tlen := len(t.T)
	b := &Built{
		BWT: make([]byte, n),
		R:   make([]int, n),
		C:   make([]int, n),
	}

	terminalRow := t.N
	terminalCol := t.N + 1

	for i, s := range sa {
		p := s - 1
		if p < 0 {
			p += tlen
		}
		b.BWT[i] = t.T[p]

		seqn := t.RowOf(p)
		if seqn == terminalRow {
			// p is the position of the global sentinel '#': this suffix's
			// predecessor is the sentinel itself.
			b.R[i] = terminalRow
			b.C[i] = terminalCol
			continue
		}

		inRow := t.InRowOffset(p)
		b.R[i] = seqn
		b.C[i] = t.ColOf(seqn, inRow)
	}
	return b
}
