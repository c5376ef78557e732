package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// Distinct returns the elements of s in first-seen order with duplicates removed.
// Elements for which skip returns true are dropped.
func Distinct[S ~[]E, E comparable](s S, skip func(E) bool) S {
	if len(s) == 0 {
		return nil
	}

	seen := make(map[E]struct{}, len(s))
	result := make(S, 0, len(s))

	for _, e := range s {
		if skip != nil && skip(e) {
			continue
		}

		if _, ok := seen[e]; ok {
			continue
		}

		seen[e] = struct{}{}
		result = append(result, e)
	}

	return result
}
