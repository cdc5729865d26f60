package index

// DJB2Hash computes the DJB2 hash of s: h := 5381; h := h*33 + byte, in
// unsigned 32-bit arithmetic. Bucket placement by this hash only affects
// build-time chain order diagnostics - the in-memory dictionary itself is
// keyed by a Go map, but this function is exposed standalone so its
// cross-run determinism stays independently testable, per the source's
// bucket-distribution contract.
func DJB2Hash(s []byte) uint32 {
	var h uint32 = 5381
	for _, c := range s {
		h = h*33 + uint32(c)
	}
	return h
}

// BucketCount returns the fixed bucket count DJB2Hash is reduced modulo
// for the given dictionary mode.
func BucketCount(mode Mode) uint32 {
	switch mode {
	case ModeTextAnalysis:
		return 50021
	case ModePersistentIndex:
		return 20011
	default:
		return 20011
	}
}

// BucketHistogram distributes terms across bucketCount buckets by
// DJB2Hash(stem) % bucketCount, reproducing the chain layout the source's
// fixed-size hash table would have produced. It reports the longest chain
// and the number of buckets that received at least one term, the two
// figures that matter for judging whether a configured bucket count keeps
// chain walks short.
func BucketHistogram(terms []TermStats, bucketCount int) (maxChain, usedBuckets int) {
	if bucketCount <= 0 {
		return 0, 0
	}
	counts := make([]int, bucketCount)
	for _, t := range terms {
		b := DJB2Hash(t.Stem) % uint32(bucketCount)
		counts[b]++
	}
	for _, c := range counts {
		if c > 0 {
			usedBuckets++
		}
		if c > maxChain {
			maxChain = c
		}
	}
	return maxChain, usedBuckets
}

// Mode selects the bucket count used for the DJB2 bucket-walk diagnostic.
type Mode int

const (
	// ModePersistentIndex is the bucket count used while building an
	// index destined for the binary file.
	ModePersistentIndex Mode = iota
	// ModeTextAnalysis is the larger bucket count used for standalone
	// text-analysis/diagnostic runs over a term dictionary.
	ModeTextAnalysis
)
