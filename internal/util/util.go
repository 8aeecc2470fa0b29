package util

import (
	"sort"
)

// Orderable is the constraint for types whose values have a defined total
// ordering via the < operator.
type Orderable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~string
}

// OrderedKeys returns the keys of m, sorted ascending.
func OrderedKeys[K Orderable, V any](m map[K]V) []K {
	keys := make([]K, len(m))
	var curKeyIdx int
	for k := range m {
		keys[curKeyIdx] = k
		curKeyIdx++
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})

	return keys
}

// OrderedElements returns the elements of s, sorted ascending.
func OrderedElements[E Orderable](s ISet[E]) []E {
	elems := s.Elements()
	sort.Slice(elems, func(i, j int) bool {
		return elems[i] < elems[j]
	})
	return elems
}
