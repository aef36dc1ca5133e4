// Package rle implements the RLE component of §4.5: it encodes the parallel
// (C, R) streams as the "boundary-pair" alternating form BoundarySearch
// needs — not textbook (value, count) pairs — and keeps, as a byproduct of
// building that form, the original SA-coordinate span of every run.
package rle

// RunSpan gives run k's half-open [Start, End) range in the original,
// SA-order C/R arrays. BoundarySearch's return discipline (§4.7) needs this
// to translate a located RLE index back into an inclusive SA-coordinate
// endpoint.
type RunSpan struct {
	Start, End int
}

// Encode implements the boundary-pair law of §4.5 exactly: C'[0]=C[0],
// R'[0]=R[0]; at every i>0 where C[i]!=C[i-1] a run-closing record
// (C[i-1],R[i-1]) and a run-opening record (C[i],R[i]) are emitted; finally
// the terminator (C[n-1],R[n-1]) is emitted. Consequently len(cp) ==
// len(rp) == 2*len(spans), and run k occupies cp[2k] (opening witness) and
// cp[2k+1] (closing witness).
func Encode(c, r []int) (cp, rp []int, spans []RunSpan) {
	n := len(c)
	if n == 0 {
		return nil, nil, nil
	}

	cp = append(cp, c[0])
	rp = append(rp, r[0])
	runStart := 0

	for i := 1; i < n; i++ {
		if c[i] != c[i-1] {
			cp = append(cp, c[i-1])
			rp = append(rp, r[i-1])
			spans = append(spans, RunSpan{Start: runStart, End: i})

			cp = append(cp, c[i])
			rp = append(rp, r[i])
			runStart = i
		}
	}

	cp = append(cp, c[n-1])
	rp = append(rp, r[n-1])
	spans = append(spans, RunSpan{Start: runStart, End: n})

	return cp, rp, spans
}

// Decode reconstructs the original C array from the encoded form plus the
// run-span table Encode produced alongside it (the boundary-pair form alone
// does not carry run lengths, only boundary witnesses — spans is what
// supplies them, per invariant 5). R is reconstructed as each run's opening
// witness repeated across the run, i.e. the R value at the run's first
// index; R values inside a run that differ from it are not recovered.
func Decode(cp, rp []int, spans []RunSpan) (c, r []int) {
	if len(spans) == 0 {
		return nil, nil
	}
	n := spans[len(spans)-1].End
	c = make([]int, n)
	r = make([]int, n)
	for k, sp := range spans {
		v, rv := cp[2*k], rp[2*k]
		for i := sp.Start; i < sp.End; i++ {
			c[i] = v
			r[i] = rv
		}
	}
	return c, r
}
