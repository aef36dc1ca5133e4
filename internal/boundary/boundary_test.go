package boundary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xiles84/pancol/internal/colarray"
	"github.com/xiles84/pancol/internal/locator"
	"github.com/xiles84/pancol/internal/msa"
	"github.com/xiles84/pancol/internal/rle"
	"github.com/xiles84/pancol/internal/suffixarray"
	"github.com/xiles84/pancol/internal/text"
)

type fixture struct {
	t         []byte
	cp, rp    []int
	spans     []rle.RunSpan
	posInText PosInText
}

func build(t *testing.T, fasta string) fixture {
	t.Helper()
	m, err := msa.Load(strings.NewReader(fasta))
	require.NoError(t, err)
	a := text.Assemble(m.Rows, m.Width)
	sa := suffixarray.Build(a.T)
	col := colarray.Build(a, sa)
	cp, rp, spans := rle.Encode(col.C, col.R)
	return fixture{t: a.T, cp: cp, rp: rp, spans: spans, posInText: a.PosInText}
}

func TestBinsearchAndLinsearchAgree(t *testing.T) {
	f := build(t, ">seq0\nACGTACGTACGT\n>seq1\nACGTTTGTACGT\n>seq2\nAC-TACGAACGT\n")
	patterns := []string{"ACGT", "CGTA", "GTAC", "TACG", "AC", "CGT"}

	for _, p := range patterns {
		pb := []byte(p)
		occ1 := locator.Find(f.t, pb)
		require.GreaterOrEqual(t, occ1, 0, "pattern %q must occur", p)

		upperBin := Search(f.t, f.cp, f.rp, f.spans, f.posInText, occ1, len(pb), Upper)
		lowerBin := Search(f.t, f.cp, f.rp, f.spans, f.posInText, occ1, len(pb), Lower)
		upperLin := SearchLinear(f.t, f.cp, f.rp, f.spans, f.posInText, occ1, len(pb), Upper)
		lowerLin := SearchLinear(f.t, f.cp, f.rp, f.spans, f.posInText, occ1, len(pb), Lower)

		require.Equal(t, upperBin, upperLin, "upper endpoint disagreement for %q", p)
		require.Equal(t, lowerBin, lowerLin, "lower endpoint disagreement for %q", p)
		require.LessOrEqual(t, upperBin, lowerBin)
	}
}

// TestSearchMatchesScenarioS1 pins down spec.md §8's S1 worked example
// (single row "ACGT", pattern "CG") against both search strategies: the
// interval must collapse to the lone SA rank whose suffix starts with "CG".
func TestSearchMatchesScenarioS1(t *testing.T) {
	f := build(t, ">seq0\nACGT\n")
	p := []byte("CG")
	occ1 := locator.Find(f.t, p)
	require.Equal(t, 1, occ1)

	upperBin := Search(f.t, f.cp, f.rp, f.spans, f.posInText, occ1, len(p), Upper)
	lowerBin := Search(f.t, f.cp, f.rp, f.spans, f.posInText, occ1, len(p), Lower)
	upperLin := SearchLinear(f.t, f.cp, f.rp, f.spans, f.posInText, occ1, len(p), Upper)
	lowerLin := SearchLinear(f.t, f.cp, f.rp, f.spans, f.posInText, occ1, len(p), Lower)

	require.Equal(t, 3, upperBin)
	require.Equal(t, 3, lowerBin)
	require.Equal(t, upperBin, upperLin)
	require.Equal(t, lowerBin, lowerLin)
}

func TestSearchIntervalContainsOcc1sOwnSAIndex(t *testing.T) {
	f := build(t, ">seq0\nACGTACGTACGT\n>seq1\nACGTTTGTACGT\n")
	p := []byte("ACGT")
	occ1 := locator.Find(f.t, p)
	require.GreaterOrEqual(t, occ1, 0)

	upper := Search(f.t, f.cp, f.rp, f.spans, f.posInText, occ1, len(p), Upper)
	lower := Search(f.t, f.cp, f.rp, f.spans, f.posInText, occ1, len(p), Lower)
	require.LessOrEqual(t, upper, lower)

	sa := suffixarray.Build(f.t)
	rank := 0
	for sa[rank] != occ1 {
		rank++
	}
	require.LessOrEqual(t, upper, rank)
	require.LessOrEqual(t, rank, lower)
}
