package text

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssembleScenarioS1(t *testing.T) {
	a := Assemble([]string{"ACGT"}, 4)
	require.Equal(t, "ACGT$#", string(a.T))
	require.Equal(t, []int{0, 5}, a.EP)
}

func TestAssembleScenarioS2(t *testing.T) {
	a := Assemble([]string{"A-CGT", "AACGT"}, 5)
	require.Equal(t, "ACGT$AACGT$#", string(a.T))
}

func TestRowOfAndInRowOffset(t *testing.T) {
	a := Assemble([]string{"ACGT", "AACGT"}, 5)
	// row 0 occupies T[0:4] ('A','C','G','T'), then '$' at 4.
	require.Equal(t, 0, a.RowOf(0))
	require.Equal(t, 0, a.RowOf(3))
	require.Equal(t, 0, a.RowOf(4)) // the '$' itself still belongs to row 0
	require.Equal(t, 4, a.InRowOffset(4))

	require.Equal(t, 1, a.RowOf(5))
	require.Equal(t, 2, a.N) // sentinel "row" is N
	require.Equal(t, 2, a.RowOf(len(a.T)-1))
}

func TestColOfHandlesRowClosingDollarPseudoColumn(t *testing.T) {
	// row "A-CGT" has width 5 but only 4 ungapped characters (len_i=4); the
	// predecessor of SA[0] always lands on some row's '$', whose in-row
	// offset is len_i (one past the row) — ColOf must not panic there.
	a := Assemble([]string{"A-CGT"}, 5)
	require.Equal(t, 4, a.RowLen(0))
	require.Equal(t, 5, a.ColOf(0, 4)) // pseudo-column == width
	require.Equal(t, 0, a.ColOf(0, 0))
	require.Equal(t, 2, a.ColOf(0, 1))
}

func TestPosInTextRoundTripsWithColOf(t *testing.T) {
	a := Assemble([]string{"A-CGT", "AACGT"}, 5)
	for row := 0; row < a.N; row++ {
		for offset := 0; offset <= a.RowLen(row); offset++ {
			col := a.ColOf(row, offset)
			pos := a.PosInText(row, col)
			require.Equal(t, offset, a.InRowOffset(pos))
		}
	}
}

func TestAssembleAllGapRowContributesEmptyUngapped(t *testing.T) {
	a := Assemble([]string{"----", "ACGT"}, 4)
	require.Equal(t, 0, a.RowLen(0))
	require.Equal(t, "$ACGT$#", string(a.T))
	require.Equal(t, 4, a.ColOf(0, 0)) // pseudo-column for the empty row's '$'
}
