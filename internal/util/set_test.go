package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_KeySet_AddRemoveHas(t *testing.T) {
	assert := assert.New(t)

	s := NewKeySet[int]()

	s.Add(2)
	s.Add(2)
	s.Add(8)

	assert.Equal(2, s.Len())
	assert.True(s.Has(2))
	assert.True(s.Has(8))
	assert.False(s.Has(413))

	s.Remove(2)
	assert.False(s.Has(2))
	assert.Equal(1, s.Len())

	// removing again has no effect
	s.Remove(2)
	assert.Equal(1, s.Len())
}

func Test_KeySet_setOps(t *testing.T) {
	assert := assert.New(t)

	s1 := KeySetOf([]int{1, 2, 3})
	s2 := KeySetOf([]int{3, 4})

	assert.True(s1.Union(s2).Equal(KeySetOf([]int{1, 2, 3, 4})))
	assert.True(s1.Intersection(s2).Equal(KeySetOf([]int{3})))
	assert.True(s1.Difference(s2).Equal(KeySetOf([]int{1, 2})))
	assert.False(s1.DisjointWith(s2))
	assert.True(s1.DisjointWith(KeySetOf([]int{6})))
}

func Test_KeySet_Equal(t *testing.T) {
	assert := assert.New(t)

	s1 := KeySetOf([]int{1, 2})
	s2 := NewKeySet[int]()
	s2.Add(2)
	s2.Add(1)

	assert.True(s1.Equal(s2))
	assert.False(s1.Equal(KeySetOf([]int{1})))
	assert.False(s1.Equal("not a set"))
}

func Test_KeySet_Any(t *testing.T) {
	assert := assert.New(t)

	s := KeySetOf([]int{1, 3, 5})

	assert.True(s.Any(func(v int) bool {
		return v > 4
	}))
	assert.False(s.Any(func(v int) bool {
		return v%2 == 0
	}))
	assert.False(NewKeySet[int]().Any(func(v int) bool {
		return true
	}))
}

func Test_OrderedKeys(t *testing.T) {
	assert := assert.New(t)

	m := map[rune]string{'c': "C", 'a': "A", 'b': "B"}

	assert.Equal([]rune{'a', 'b', 'c'}, OrderedKeys(m))
}

func Test_OrderedElements(t *testing.T) {
	assert := assert.New(t)

	s := KeySetOf([]int{4, 1, 3})

	assert.Equal([]int{1, 3, 4}, OrderedElements[int](s))
}
