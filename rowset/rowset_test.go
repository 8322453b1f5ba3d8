package rowset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbanas/baza/rowset"
)

func TestAddDedup(t *testing.T) {
	s := rowset.New()
	s.Add(1)
	s.Add(2)
	s.Add(1)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []uint64{1, 2}, s.Rows())
}

func TestUnionCommutativeAndDedup(t *testing.T) {
	a := rowset.Of(1, 2, 3)
	b := rowset.Of(3, 4)

	ab, ok := rowset.Union(a, b)
	require.True(t, ok)
	ba, ok := rowset.Union(b, a)
	require.True(t, ok)

	assert.Equal(t, ab.Rows(), ba.Rows())
	assert.Equal(t, []uint64{1, 2, 3, 4}, ab.Rows())
}

func TestUnionWithEmpty(t *testing.T) {
	a := rowset.Of(5, 6)
	empty := rowset.New()

	result, ok := rowset.Union(a, empty)
	require.True(t, ok)
	assert.Equal(t, a.Rows(), result.Rows())
}

func TestIntersectionWithEmpty(t *testing.T) {
	a := rowset.Of(5, 6)
	empty := rowset.New()

	result, ok := rowset.Intersection(a, empty)
	require.True(t, ok)
	assert.Equal(t, 0, result.Len())
}

func TestIntersectionOfDistinctEqualCopies(t *testing.T) {
	a := rowset.Of(1, 2, 3)
	b := rowset.Of(1, 2, 3)

	result, ok := rowset.Intersection(a, b)
	require.True(t, ok)
	assert.Equal(t, a.Rows(), result.Rows())
}

func TestSelfCombinationIsRejected(t *testing.T) {
	a := rowset.Of(1, 2, 3)

	_, ok := rowset.Union(a, a)
	assert.False(t, ok)

	_, ok = rowset.Intersection(a, a)
	assert.False(t, ok)
}
