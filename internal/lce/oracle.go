package lce

// Oracle answers LCE queries in O(1) after an O(n log n) build, the
// RMQ-backed alternative §4.6 says callers "may substitute" for the naive
// byte-by-byte Extend. It is adapted from the teacher's Kasai LCP-array
// routine (computeLCP in the source's lcs.go): the rank/LCP arrays it
// produced fed a single linear scan there, but the same LCP array also
// answers arbitrary-pair LCE queries once it backs a sparse table for
// range-minimum queries, since lce(T,i,j) is exactly the minimum LCP value
// between the SA ranks of i and j.
type Oracle struct {
	rank  []int
	lcp   []int
	table [][]int // table[k][i] = min(lcp[i..i+2^k))
	log2  []int
}

// NewOracle builds the oracle from T's suffix array. sa must be a valid
// suffix array of a text of length len(sa) (internal/suffixarray.Build's
// output).
func NewOracle(t []byte, sa []int) *Oracle {
	n := len(sa)
	rank := make([]int, n)
	for i, pos := range sa {
		rank[pos] = i
	}

	lcp := kasaiLCP(t, sa, rank)

	o := &Oracle{rank: rank, lcp: lcp}
	o.buildSparseTable()
	return o
}

// kasaiLCP computes lcp[i] = the length of the common prefix of the
// suffixes at SA[i-1] and SA[i], for i>0; lcp[0] = 0.
func kasaiLCP(t []byte, sa, rank []int) []int {
	n := len(sa)
	lcp := make([]int, n)
	h := 0
	for i := 0; i < n; i++ {
		if rank[i] == 0 {
			h = 0
			continue
		}
		j := sa[rank[i]-1]
		for i+h < n && j+h < n && t[i+h] == t[j+h] {
			h++
		}
		lcp[rank[i]] = h
		if h > 0 {
			h--
		}
	}
	return lcp
}

func (o *Oracle) buildSparseTable() {
	n := len(o.lcp)
	o.log2 = make([]int, n+1)
	for i := 2; i <= n; i++ {
		o.log2[i] = o.log2[i/2] + 1
	}

	if n == 0 {
		return
	}
	levels := o.log2[n] + 1
	o.table = make([][]int, levels)
	o.table[0] = append([]int(nil), o.lcp...)
	for k := 1; k < levels; k++ {
		width := 1 << k
		row := make([]int, n-width+1)
		half := width / 2
		prev := o.table[k-1]
		for i := range row {
			row[i] = min(prev[i], prev[i+half])
		}
		o.table[k] = row
	}
}

// rangeMin returns min(lcp[lo..hi]), inclusive of both ends.
func (o *Oracle) rangeMin(lo, hi int) int {
	k := o.log2[hi-lo+1]
	a := o.table[k][lo]
	b := o.table[k][hi-(1<<k)+1]
	return min(a, b)
}

// Extend answers lce(T, i, j) in O(1), matching the contract of Extend.
func (o *Oracle) Extend(i, j int) Result {
	if i == j {
		return Result{K: len(o.rank) - i, LeftSmaller: true}
	}
	ri, rj := o.rank[i], o.rank[j]
	lo, hi := ri, rj
	if lo > hi {
		lo, hi = hi, lo
	}
	k := o.rangeMin(lo+1, hi)
	return Result{K: k, LeftSmaller: ri < rj}
}
