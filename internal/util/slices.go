package util

// SliceFill sets every element of s to v and returns s.
func SliceFill[S ~[]E, E any](s S, v E) S {
	for i := range s {
		s[i] = v
	}
	return s
}
