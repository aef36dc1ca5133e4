// Package suffixarray is the SAConstructor: it builds the suffix array of a
// byte string in linear time via SA-IS. The algorithm shape — classify
// S/L types, extract and name LMS substrings, recurse on the reduced
// problem, induce-sort twice — is adapted from xiles84/dnatools's SAIS,
// generalized to operate on T directly (T's own global sentinel is already
// the unique minimum byte, so unlike the teacher's encodeString there is no
// need to shift the alphabet to reserve 0).
package suffixarray

// Build returns SA[0..len(t)), the permutation of T's suffix starts sorted
// in lexicographic order of the suffixes, under plain byte comparison. t
// must end with a byte that is strictly smaller than every other byte in t
// and occurs nowhere else in t (the index's global sentinel '#' satisfies
// this).
func Build(t []byte) []int {
	n := len(t)
	s := make([]int, n)
	for i, b := range t {
		s[i] = int(b)
	}
	return sais(s, 256, n)
}

func sais(s []int, k, n int) []int {
	sa := make([]int, n)
	for i := range sa {
		sa[i] = -1
	}
	if n == 0 {
		return sa
	}
	if n == 1 {
		sa[0] = 0
		return sa
	}

	// Classify characters into S-type (true) and L-type (false).
	isS := make([]bool, n)
	isS[n-1] = true
	for i := n - 2; i >= 0; i-- {
		switch {
		case s[i] < s[i+1]:
			isS[i] = true
		case s[i] > s[i+1]:
			isS[i] = false
		default:
			isS[i] = isS[i+1]
		}
	}

	isLMS := func(i int) bool { return i > 0 && isS[i] && !isS[i-1] }

	var lmsPositions []int
	for i := 1; i < n; i++ {
		if isLMS(i) {
			lmsPositions = append(lmsPositions, i)
		}
	}

	sa = induceSort(s, sa, isS, k, lmsPositions)

	var sortedLMS []int
	for _, pos := range sa {
		if isLMS(pos) {
			sortedLMS = append(sortedLMS, pos)
		}
	}

	lmsNames := make([]int, n)
	for i := range lmsNames {
		lmsNames[i] = -1
	}
	name := 0
	prev := -1
	for _, pos := range sortedLMS {
		if prev != -1 && !lmsSubstringEqual(s, isS, isLMS, prev, pos) {
			name++
		}
		lmsNames[pos] = name
		prev = pos
	}
	numNames := name + 1

	reduced := make([]int, len(lmsPositions))
	for i, pos := range lmsPositions {
		reduced[i] = lmsNames[pos]
	}

	var reducedSA []int
	if numNames < len(reduced) {
		reducedSA = sais(reduced, numNames, len(reduced))
	} else {
		reducedSA = make([]int, len(reduced))
		for i, nm := range reduced {
			reducedSA[nm] = i
		}
	}

	orderedLMS := make([]int, len(reducedSA))
	for i, idx := range reducedSA {
		orderedLMS[i] = lmsPositions[idx]
	}
	for i := range sa {
		sa[i] = -1
	}
	return induceSort(s, sa, isS, k, orderedLMS)
}

func induceSort(s []int, sa []int, isS []bool, k int, lms []int) []int {
	bucketSizes := computeBucketSizes(s, k)

	tails := computeBucketTails(bucketSizes)
	for i := len(lms) - 1; i >= 0; i-- {
		pos := lms[i]
		c := s[pos]
		sa[tails[c]] = pos
		tails[c]--
	}

	heads := computeBucketHeads(bucketSizes)
	for i := range sa {
		pos := sa[i]
		if pos > 0 && !isS[pos-1] {
			c := s[pos-1]
			sa[heads[c]] = pos - 1
			heads[c]++
		}
	}

	tails = computeBucketTails(bucketSizes)
	for i := len(sa) - 1; i >= 0; i-- {
		pos := sa[i]
		if pos > 0 && isS[pos-1] {
			c := s[pos-1]
			sa[tails[c]] = pos - 1
			tails[c]--
		}
	}
	return sa
}

func computeBucketSizes(s []int, k int) []int {
	sizes := make([]int, k)
	for _, c := range s {
		sizes[c]++
	}
	return sizes
}

func computeBucketHeads(sizes []int) []int {
	heads := make([]int, len(sizes))
	sum := 0
	for i, v := range sizes {
		heads[i] = sum
		sum += v
	}
	return heads
}

func computeBucketTails(sizes []int) []int {
	tails := make([]int, len(sizes))
	sum := 0
	for i, v := range sizes {
		sum += v
		tails[i] = sum - 1
	}
	return tails
}

func lmsSubstringEqual(s []int, isS []bool, isLMS func(int) bool, i, j int) bool {
	n := len(s)
	for k := 0; ; k++ {
		if s[i] != s[j] || isS[i] != isS[j] {
			return false
		}
		iLMS, jLMS := isLMS(i), isLMS(j)
		if k > 0 && iLMS && jLMS {
			return true
		}
		if iLMS != jLMS {
			return false
		}
		i++
		j++
		if i >= n || j >= n {
			return false
		}
	}
}
