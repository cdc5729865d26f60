// Package setalg implements the linear set-algebra operations the query
// evaluator runs over sorted, duplicate-free posting lists: intersection,
// union, and negation against a closed document-identifier universe.
package setalg

// Intersect returns the sorted, duplicate-free intersection of a and b via
// a two-pointer merge. Both inputs must already be sorted ascending and
// duplicate-free.
func Intersect(a, b []uint32) []uint32 {
	out := make([]uint32, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}

// Union returns the sorted, duplicate-free union of a and b via a
// two-pointer merge, draining whichever input remains once the other is
// exhausted.
func Union(a, b []uint32) []uint32 {
	out := make([]uint32, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// Negate returns every identifier in 1..=n that does not appear in l. l
// must be sorted ascending and duplicate-free.
func Negate(l []uint32, n uint32) []uint32 {
	out := make([]uint32, 0, int(n)-len(l))
	li := 0
	for id := uint32(1); id <= n; id++ {
		if li < len(l) && l[li] == id {
			li++
			continue
		}
		out = append(out, id)
	}
	return out
}
