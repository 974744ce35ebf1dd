package common

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// Insert inserts v at index i, appending when i is negative or past the end.
func Insert[S ~[]E, E any](s S, i int, v E) S {
	if i < 0 || i >= len(s) {
		return append(s, v)
	}

	s = append(s, v)
	copy(s[i+1:], s[i:])
	s[i] = v

	return s
}

// RemoveAt removes the element at index i.
func RemoveAt[S ~[]E, E any](s S, i int) S {
	copy(s[i:], s[i+1:])

	var zero E
	s[len(s)-1] = zero

	return s[:len(s)-1]
}
