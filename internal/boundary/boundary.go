// Package boundary implements BoundarySearch (§4.7): given one occurrence
// occ1 of a pattern of length m, it locates the upper and lower endpoints
// of the SA interval whose suffixes start with the pattern, searching over
// RLE runs rather than individual SA entries.
package boundary

import (
	"github.com/xiles84/pancol/internal/lce"
	"github.com/xiles84/pancol/internal/panerr"
	"github.com/xiles84/pancol/internal/rle"
)

// Kind selects which endpoint a search locates. The four-branch decision
// table of §4.7 is implemented once in decide and mirrored for Lower by
// the kind flag, rather than duplicated.
type Kind int

const (
	Upper Kind = iota
	Lower
)

// PosInText resolves msa_to_T(row, col): the T position of the run
// witness at (row, col). internal/text.Assembled.PosInText satisfies this.
type PosInText func(row, col int) int

type outcome int

const (
	outcomeFound outcome = iota
	outcomeUp
	outcomeDown
)

// probe is the (lce length, sign) pair Design Note 9 recommends in place
// of the source's loose return-value mix.
type probe struct {
	lceLen      int
	leftSmaller bool
}

type searcher struct {
	t         []byte
	cp, rp    []int
	posInText PosInText
	occ1, m   int
}

// probeAt reports the LCE between occ1 and the suffix that RLE record k
// actually stands for. msa_to_T(R'[k], C'[k]) reconstructs the predecessor
// position p = SA[i]-1 (mod |T|) that ColBuilder derived C/R from (§4.4), one
// short of the suffix start itself, so the probe position is p+1 (mod |T|).
func (s *searcher) probeAt(k int) probe {
	p := s.posInText(s.rp[k], s.cp[k])
	pos := (p + 1) % len(s.t)
	r := lce.Extend(s.t, pos, s.occ1)
	return probe{lceLen: r.K, leftSmaller: r.LeftSmaller}
}

// decide implements the §4.7 boundary predicate. here is the probe at the
// candidate RLE index; neigh is the probe at its fixed ±1 neighbor (−1 for
// Upper, +1 for Lower, selected by the caller). The equal-LCE branch that
// moves away from here only applies while here lies outside the interval
// (lceLen < m); a probe inside the interval always moves toward the boundary.
func decide(kind Kind, here, neigh probe, m int) outcome {
	if here.lceLen >= m && neigh.lceLen < m {
		return outcomeFound
	}
	if here.lceLen == neigh.lceLen && here.leftSmaller != neigh.leftSmaller {
		return outcomeFound
	}

	if kind == Upper {
		if here.lceLen < m && here.lceLen == neigh.lceLen && here.leftSmaller {
			return outcomeDown
		}
		if here.lceLen >= m || !here.leftSmaller {
			return outcomeUp
		}
		panerr.Invariant("boundary.decide", "upper branch fell through all cases")
		return outcomeUp
	}

	if here.lceLen < m && here.lceLen == neigh.lceLen && !here.leftSmaller {
		return outcomeUp
	}
	if here.lceLen >= m || here.leftSmaller {
		return outcomeDown
	}
	panerr.Invariant("boundary.decide", "lower branch fell through all cases")
	return outcomeDown
}

func bounds(kind Kind, n int) (start, end, offset int) {
	if kind == Lower {
		return 0, n - 1, 1
	}
	return 1, n, -1
}

func (s *searcher) binsearch(kind Kind) int {
	start, end, offset := bounds(kind, len(s.cp))
	middle := -1
	for start < end {
		middle = start + (end-start)/2
		switch decide(kind, s.probeAt(middle), s.probeAt(middle+offset), s.m) {
		case outcomeFound:
			return middle
		case outcomeUp:
			end = middle
		default:
			start = middle + 1
		}
	}
	panerr.Invariant("boundary.binsearch", "search range collapsed without locating a boundary")
	return middle
}

// linsearch is the sweep variant of §4.7's source, kept so the test suite
// can pin its agreement with binsearch (property 8).
func (s *searcher) linsearch(kind Kind) int {
	start, end, offset := bounds(kind, len(s.cp))
	for i := start; i < end; i++ {
		if decide(kind, s.probeAt(i), s.probeAt(i+offset), s.m) == outcomeFound {
			return i
		}
	}
	panerr.Invariant("boundary.linsearch", "swept the full range without locating a boundary")
	return -1
}

// toSACoordinate implements the Return discipline resolution: run index is
// rleIndex/2 (§4.5's pairing of opening/closing witnesses); the reported
// SA coordinate is that run's first SA index for Upper, last for Lower —
// i.e. inclusive endpoints of the matching suffix interval.
func toSACoordinate(spans []rle.RunSpan, rleIndex int, kind Kind) int {
	run := spans[rleIndex/2]
	if kind == Upper {
		return run.Start
	}
	return run.End - 1
}

// Search locates the inclusive SA-coordinate endpoint of kind for the
// pattern of length m known to occur at occ1, via binary search over the
// RLE-encoded runs (cp, rp, spans — the output of internal/rle.Encode).
func Search(t []byte, cp, rp []int, spans []rle.RunSpan, posInText PosInText, occ1, m int, kind Kind) int {
	s := &searcher{t: t, cp: cp, rp: rp, posInText: posInText, occ1: occ1, m: m}
	return toSACoordinate(spans, s.binsearch(kind), kind)
}

// SearchLinear is the linsearch variant; it must always agree with Search.
func SearchLinear(t []byte, cp, rp []int, spans []rle.RunSpan, posInText PosInText, occ1, m int, kind Kind) int {
	s := &searcher{t: t, cp: cp, rp: rp, posInText: posInText, occ1: occ1, m: m}
	return toSACoordinate(spans, s.linsearch(kind), kind)
}
