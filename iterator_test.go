package hashtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnsafeIteratorVisitsEveryElement(t *testing.T) {
	tab := NewTable[*int](intType())
	const n = 700
	for i := 0; i < n; i++ {
		tab.Add(ptr(i))
	}

	it := NewIterator[*int](tab)
	seen := make(map[int]int)
	for {
		elem, ok := it.Next()
		if !ok {
			break
		}
		seen[*elem]++
	}
	it.Reset()

	assert.Len(t, seen, n)
	for i := 0; i < n; i++ {
		assert.Equal(t, 1, seen[i], "key %d visited %d times", i, seen[i])
	}
}

func TestUnsafeIteratorDuringRehashVisitsEveryElement(t *testing.T) {
	tab := NewTable[*int](intType())
	const n = 3000
	for i := 0; i < n; i++ {
		tab.Add(ptr(i))
	}
	require.True(t, tab.IsRehashing())

	it := NewIterator[*int](tab)
	seen := make(map[int]bool)
	for {
		elem, ok := it.Next()
		if !ok {
			break
		}
		seen[*elem] = true
	}
	it.Reset()

	for i := 0; i < n; i++ {
		assert.True(t, seen[i], "key %d missing from unsafe iteration during rehash", i)
	}
}

func TestUnsafeIteratorPanicsIfTableMutatedBeforeReset(t *testing.T) {
	tab := NewTable[*int](intType())
	for i := 0; i < 50; i++ {
		tab.Add(ptr(i))
	}

	it := NewIterator[*int](tab)
	_, ok := it.Next()
	require.True(t, ok)

	tab.Add(ptr(9999))

	assert.Panics(t, func() { it.Reset() })
}

func TestSafeIteratorToleratesDeletionDuringIteration(t *testing.T) {
	tab := NewTable[*int](intType())
	const n = 200
	for i := 0; i < n; i++ {
		tab.Add(ptr(i))
	}

	it := NewSafeIterator[*int](tab)
	returned := 0
	for i := 0; i < 10; i++ {
		elem, ok := it.Next()
		require.True(t, ok)
		returned++
		tab.Delete(*elem)
	}
	for {
		_, ok := it.Next()
		if !ok {
			break
		}
		returned++
	}
	it.Reset()

	assert.Equal(t, n, returned)
	assert.Equal(t, n-10, tab.Size())
}

func TestSafeIteratorPausesRehashing(t *testing.T) {
	tab := NewTable[*int](intType())
	const n = 3000
	for i := 0; i < n; i++ {
		tab.Add(ptr(i))
	}
	require.True(t, tab.IsRehashing())

	it := NewSafeIterator[*int](tab)
	it.Next()
	rehashIdxDuring := tab.rehashIdx
	for i := 0; i < 20; i++ {
		tab.Find(i)
	}
	assert.Equal(t, rehashIdxDuring, tab.rehashIdx, "rehashing should be paused while the safe iterator is live")
	it.Reset()
}
