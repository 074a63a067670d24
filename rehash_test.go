package hashtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncrementalRehashSpreadsAcrossReads(t *testing.T) {
	tab := NewTable[*int](intType())

	const n = 3000
	for i := 0; i < n; i++ {
		tab.Add(ptr(i))
	}
	require.True(t, tab.IsRehashing() || tab.Size() == n)

	// Drive find operations; under ResizeAllow each should step the
	// rehasher, and eventually it completes.
	for i := 0; i < n && tab.IsRehashing(); i++ {
		tab.Find(i % n)
	}

	for i := 0; i < n; i++ {
		_, ok := tab.Find(i)
		assert.True(t, ok, "key %d missing after rehash", i)
	}
}

func TestResizeAvoidDefersRehashToWrites(t *testing.T) {
	old := GetResizePolicy()
	defer SetResizePolicy(old)

	tab := NewTable[*int](intType())
	for i := 0; i < 1000; i++ {
		tab.Add(ptr(i))
	}

	SetResizePolicy(ResizeAvoid)
	// Force a resize while avoiding rehashing.
	_, err := tab.Expand(10000)
	require.NoError(t, err)
	require.True(t, tab.IsRehashing())

	rehashIdxBefore := tab.rehashIdx
	for i := 0; i < 10; i++ {
		tab.Find(i)
	}
	assert.Equal(t, rehashIdxBefore, tab.rehashIdx, "reads shouldn't advance rehashing under ResizeAvoid")

	tab.Add(ptr(-1))
	assert.NotEqual(t, rehashIdxBefore, tab.rehashIdx, "a write should advance rehashing under ResizeAvoid")

	SetResizePolicy(ResizeAllow)
	for tab.IsRehashing() {
		tab.rehashStep()
	}
	for i := 0; i < 1000; i++ {
		_, ok := tab.Find(i)
		assert.True(t, ok)
	}
}

func TestShrinkAfterManyDeletes(t *testing.T) {
	tab := NewTable[*int](intType())
	const n = 4000
	for i := 0; i < n; i++ {
		tab.Add(ptr(i))
	}
	for tab.IsRehashing() {
		tab.rehashStep()
	}
	before := numBuckets(tab.bucketExp[0])

	for i := 0; i < n-10; i++ {
		tab.Delete(i)
	}
	for tab.IsRehashing() {
		tab.rehashStep()
	}
	after := numBuckets(tab.bucketExp[0])
	assert.Less(t, after, before, "table should shrink after most elements are deleted")

	for i := n - 10; i < n; i++ {
		_, ok := tab.Find(i)
		assert.True(t, ok)
	}
}

func TestInstantRehashingCompletesImmediately(t *testing.T) {
	ty := intType()
	ty.InstantRehashing = true
	tab := NewTable[*int](ty)

	for i := 0; i < 2000; i++ {
		tab.Add(ptr(i))
		assert.False(t, tab.IsRehashing(), "instant rehashing should never leave the table mid-rehash")
	}
}

func TestRehashingCallbacks(t *testing.T) {
	var started, completed int
	ty := intType()
	ty.RehashingStarted = func(*Table[*int]) { started++ }
	ty.RehashingCompleted = func(*Table[*int]) { completed++ }
	tab := NewTable[*int](ty)

	for i := 0; i < 3000; i++ {
		tab.Add(ptr(i))
		for tab.IsRehashing() {
			tab.rehashStep()
		}
	}
	assert.Equal(t, started, completed)
	assert.Greater(t, started, 0)
}
