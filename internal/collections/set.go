package collections

import (
	"cmp"
	"slices"
)

// Set is a map-backed set with zero-size values
type Set[T comparable] map[T]struct{}

// NewSet creates a Set holding the given values
func NewSet[T comparable](vs ...T) Set[T] {
	s := make(Set[T], len(vs))
	s.Add(vs...)
	return s
}

// Add inserts values, ignoring ones already present
func (s Set[T]) Add(vs ...T) {
	for _, v := range vs {
		s[v] = struct{}{}
	}
}

// Has reports whether v is in the set
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Merge adds every member of other to s
func (s Set[T]) Merge(other Set[T]) {
	for v := range other {
		s[v] = struct{}{}
	}
}

// Members returns the values in unspecified order
func (s Set[T]) Members() []T {
	r := make([]T, 0, len(s))
	for v := range s {
		r = append(r, v)
	}
	return r
}

// Sorted returns the members of s in ascending order
func Sorted[T cmp.Ordered](s Set[T]) []T {
	r := s.Members()
	slices.Sort(r)
	return r
}
