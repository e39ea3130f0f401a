package collections_test

import (
	"testing"

	"bennypowers.dev/tuc/internal/collections"
	"github.com/stretchr/testify/assert"
)

func TestNewSet(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		s := collections.NewSet[string]()
		assert.NotNil(t, s)
		assert.Empty(t, s)
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		s := collections.NewSet("bg-a", "text-b", "bg-a")
		assert.Len(t, s, 2)
		assert.True(t, s.Has("bg-a"))
		assert.True(t, s.Has("text-b"))
		assert.False(t, s.Has("border-c"))
	})
}

func TestMerge(t *testing.T) {
	a := collections.NewSet("x", "y")
	b := collections.NewSet("y", "z")
	a.Merge(b)
	assert.Equal(t, []string{"x", "y", "z"}, collections.Sorted(a))
	assert.Len(t, b, 2, "merge must not modify its argument")
}

func TestSorted(t *testing.T) {
	s := collections.NewSet(3, 1, 2)
	assert.Equal(t, []int{1, 2, 3}, collections.Sorted(s))
	assert.ElementsMatch(t, []int{1, 2, 3}, s.Members())
}
