package rle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeBoundaryPairLaw(t *testing.T) {
	c := []int{4, 4, 5, 5, 5, 5, 7, 8, 8, 4, 4, 8, 8, 8, 8, 8, 8, 1, 1}
	r := make([]int, len(c))
	for i := range r {
		r[i] = i // distinct so we can tell witnesses apart
	}

	cp, rp, spans := Encode(c, r)

	require.Equal(t, len(cp), len(rp))
	require.Equal(t, len(cp), 2*len(spans))

	// C'[0] is C[0]; the terminator is (C[n-1], R[n-1]).
	require.Equal(t, c[0], cp[0])
	require.Equal(t, r[0], rp[0])
	require.Equal(t, c[len(c)-1], cp[len(cp)-1])
	require.Equal(t, r[len(r)-1], rp[len(rp)-1])

	// Spans partition [0, len(c)) with no gaps or overlaps.
	require.Equal(t, 0, spans[0].Start)
	require.Equal(t, len(c), spans[len(spans)-1].End)
	for i := 1; i < len(spans); i++ {
		require.Equal(t, spans[i-1].End, spans[i].Start)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := [][]int{
		{4, 4, 5, 5, 5, 5, 7, 8, 8, 4, 4, 8, 8, 8, 8, 8, 8, 1, 1},
		{3},
		{9, 9, 9, 9},
		{1, 2, 3, 4, 5},
	}
	for _, c := range cases {
		r := make([]int, len(c))
		for i := range r {
			r[i] = 2 * i
		}
		cp, rp, spans := Encode(c, r)
		gotC, gotR := Decode(cp, rp, spans)
		// R comes back as the value at the first index of each run.
		wantR := make([]int, len(c))
		for i := range c {
			wantR[i] = r[i]
			if i > 0 && c[i] == c[i-1] {
				wantR[i] = wantR[i-1]
			}
		}
		require.Equal(t, c, gotC)
		require.Equal(t, wantR, gotR)
	}
}

func TestRunSpansMatchRunCount(t *testing.T) {
	c := []int{1, 1, 1, 2, 3, 3}
	r := make([]int, len(c))
	_, _, spans := Encode(c, r)
	require.Len(t, spans, 3)
	require.Equal(t, RunSpan{Start: 0, End: 3}, spans[0])
	require.Equal(t, RunSpan{Start: 3, End: 4}, spans[1])
	require.Equal(t, RunSpan{Start: 4, End: 6}, spans[2])
}
