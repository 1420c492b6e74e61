package set

type subsets[T any] []T

// Subsets wraps entries for streaming enumeration of their power set.
func Subsets[T any](entries []T) subsets[T] {
	return entries
}

func SubsetsV[T any](entries ...T) subsets[T] {
	return entries
}

// Len is the number of subsets ForEach will visit.
func (S subsets[T]) Len() int {
	return 1 << len(S)
}

// ForEach calls do once per subset of S, without materialising the whole
// power set. Subsets are visited in lexicographic order of their index
// sequences, starting with the empty subset. The slice passed to do is
// fresh on every call.
func (S subsets[T]) ForEach(do func([]T)) {
	last := len(S) - 1

	ss := []int{}

	for ss != nil {
		subset := make([]T, 0, len(ss))

		for _, i := range ss {
			subset = append(subset, S[i])
		}

		do(subset)

		switch {
		// Initial set is empty
		case len(S) == 0:
			ss = nil
		// Process the empty subset
		case len(ss) == 0:
			ss = append(ss, 0)
		// The singleton holding the last element closes the enumeration.
		case len(ss) == 1 && ss[0] == last:
			ss = nil
		// Drop the last element and advance the one before it.
		case ss[len(ss)-1] == last:
			ss = append(ss[:len(ss)-2], ss[len(ss)-2]+1)
		// Otherwise extend with the next index.
		default:
			ss = append(ss, ss[len(ss)-1]+1)
		}
	}
}

// PowerSet returns every subset of s. The power set of s is the power set
// of its tail, followed by each of those subsets prefixed with the head, so
// subsets without s[0] precede subsets with it. Elements keep their relative
// order from s.
func PowerSet[T any](s []T) [][]T {
	if len(s) == 0 {
		return [][]T{{}}
	}

	tail := PowerSet(s[1:])

	res := make([][]T, 0, 2*len(tail))
	res = append(res, tail...)
	for _, sub := range tail {
		with := make([]T, 0, len(sub)+1)
		with = append(with, s[0])
		with = append(with, sub...)
		res = append(res, with)
	}

	return res
}
