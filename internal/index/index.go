// Package index implements QueryDriver (§4.9): it wires A through E once at
// build time, and J, G (with F), and H per query.
package index

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/xiles84/pancol/internal/boundary"
	"github.com/xiles84/pancol/internal/colarray"
	"github.com/xiles84/pancol/internal/doclisting"
	"github.com/xiles84/pancol/internal/locator"
	"github.com/xiles84/pancol/internal/msa"
	"github.com/xiles84/pancol/internal/panerr"
	"github.com/xiles84/pancol/internal/rle"
	"github.com/xiles84/pancol/internal/suffixarray"
	"github.com/xiles84/pancol/internal/text"
)

// Index is the built, read-only pangenomic column-location index. Once
// Build returns, a *Index is safe for concurrent Query calls: construction
// happens-before queries, and no query mutates shared state (§5).
type Index struct {
	names []string
	t     *text.Assembled
	sa    []int
	col   *colarray.Built
	cp    []int
	rp    []int
	spans []rle.RunSpan
}

// Build runs the full construction pipeline (A→B→C→D→E) over an already
// parsed MSA.
func Build(m *msa.MSA) (*Index, error) {
	if len(m.Rows) == 0 {
		return nil, panerr.EmptyCorpus("no rows to index")
	}

	assembled := text.Assemble(m.Rows, m.Width)
	sa := suffixarray.Build(assembled.T)
	col := colarray.Build(assembled, sa)
	cp, rp, spans := rle.Encode(col.C, col.R)

	return &Index{
		names: m.Names,
		t:     assembled,
		sa:    sa,
		col:   col,
		cp:    cp,
		rp:    rp,
		spans: spans,
	}, nil
}

// Query runs the query pipeline (P→J→G(with F)→H) for pattern, returning
// the globally unique, ascending list of MSA columns P anchors to. A
// pattern with no occurrence anywhere in T, or longer than T itself,
// yields a nil slice — per §7, these are valid-input conditions, not
// errors.
func (idx *Index) Query(pattern string) []int {
	p := []byte(pattern)
	m := len(p)
	if m == 0 || m > len(idx.t.T) {
		return nil
	}

	occ1 := locator.Find(idx.t.T, p)
	if occ1 < 0 {
		return nil
	}

	upper := boundary.Search(idx.t.T, idx.cp, idx.rp, idx.spans, idx.t.PosInText, occ1, m, boundary.Upper)
	lower := boundary.Search(idx.t.T, idx.cp, idx.rp, idx.spans, idx.t.PosInText, occ1, m, boundary.Lower)

	// C[i] is the column of SA[i]'s predecessor (§4.4), so the column an
	// occurrence starts at is read from SA[i] itself. The search reports
	// whole-run endpoints, so suffixes in [upper, lower] that do not start
	// with P are skipped.
	var starts []int
	for _, pos := range idx.sa[upper : lower+1] {
		if !bytes.HasPrefix(idx.t.T[pos:], p) {
			continue
		}
		col := idx.sentinelColumn()
		if row := idx.t.RowOf(pos); row < idx.t.N {
			col = idx.t.ColOf(row, idx.t.InRowOffset(pos))
		}
		starts = append(starts, col)
	}
	if len(starts) == 0 {
		return nil
	}
	cols := doclisting.List(starts, 0, len(starts))
	cols = dropSentinel(cols, idx.sentinelColumn())
	return doclisting.Unique(cols)
}

// sentinelColumn is the value Query gives the '#' suffix: W+1, one past the
// '$' pseudo-column W, so no real column can take it. P is non-empty over
// Σ, so it cannot match the '#' suffix, but this guard keeps that guarantee
// explicit rather than implicit in the search proof.
func (idx *Index) sentinelColumn() int {
	return idx.t.W + 1
}

func dropSentinel(cols []int, sentinel int) []int {
	out := cols[:0]
	for _, c := range cols {
		if c != sentinel {
			out = append(out, c)
		}
	}
	return out
}

// DumpCol writes C, one integer per line — the col.txt debugging artifact
// of §6. Not load-bearing; nothing in this repo reads it back.
func (idx *Index) DumpCol(w io.Writer) error {
	for _, c := range idx.col.C {
		if _, err := io.WriteString(w, strconv.Itoa(c)+"\n"); err != nil {
			return fmt.Errorf("dumping col.txt: %w", err)
		}
	}
	return nil
}

// DumpBWT writes the BWT, one character per line — the bwt.txt debugging
// artifact of §6.
func (idx *Index) DumpBWT(w io.Writer) error {
	for _, b := range idx.col.BWT {
		if _, err := io.WriteString(w, string(b)+"\n"); err != nil {
			return fmt.Errorf("dumping bwt.txt: %w", err)
		}
	}
	return nil
}
