package hashtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullScan[E any](t *testing.T, tab *Table[E]) map[any]int {
	seen := make(map[any]int)
	var cursor uint64
	steps := 0
	for {
		cursor = tab.Scan(cursor, func(elem *E) {
			key := tab.ty.elementKey(*elem)
			seen[key]++
		}, 0)
		steps++
		require.Less(t, steps, 1_000_000, "scan failed to terminate")
		if cursor == 0 {
			break
		}
	}
	return seen
}

func TestScanOnEmptyTable(t *testing.T) {
	tab := NewTable[*int](intType())
	cursor := tab.Scan(0, func(elem **int) { t.Fatal("should not be called") }, 0)
	assert.Equal(t, uint64(0), cursor)
}

func TestScanVisitsEveryElementAtLeastOnce(t *testing.T) {
	tab := NewTable[*int](intType())
	const n = 500
	for i := 0; i < n; i++ {
		tab.Add(ptr(i))
	}

	seen := fullScan(t, tab)
	assert.Len(t, seen, n)
	for i := 0; i < n; i++ {
		assert.GreaterOrEqual(t, seen[i], 1)
		assert.LessOrEqual(t, seen[i], 2, "element emitted more than twice")
	}
}

func TestScanDuringRehashVisitsEveryElement(t *testing.T) {
	tab := NewTable[*int](intType())
	const n = 3000
	for i := 0; i < n; i++ {
		tab.Add(ptr(i))
	}
	require.True(t, tab.IsRehashing())

	seen := fullScan(t, tab)
	for i := 0; i < n; i++ {
		assert.GreaterOrEqual(t, seen[i], 1, "key %d missing from scan during rehash", i)
	}
}

func TestScanSingleStepMakesBoundedProgress(t *testing.T) {
	tab := NewTable[*int](intType())
	for i := 0; i < 200; i++ {
		tab.Add(ptr(i))
	}

	count := 0
	cursor := tab.Scan(0, func(elem **int) { count++ }, ScanSingleStep)
	assert.LessOrEqual(t, count, elementsPerBucket*2)
	_ = cursor
}

func TestScanDuringShrinkRehashVisitsEveryElement(t *testing.T) {
	tab := NewTable[*int](intType())
	const n = 6000
	for i := 0; i < n; i++ {
		tab.Add(ptr(i))
	}
	for tab.IsRehashing() {
		tab.rehashStep()
	}

	// Delete almost everything so the next delete triggers a shrink; the
	// source table (tables[0]) then ends up far larger than the destination
	// (tables[1]) for the whole scan below, which is the case Scan's
	// rehashing branch must sweep bucket-by-bucket rather than emit once.
	for i := 0; i < n-5; i++ {
		tab.Delete(i)
	}
	require.True(t, tab.IsRehashing(), "deleting most elements should have triggered a shrink")

	seen := make(map[int]bool)
	var cursor uint64
	for {
		cursor = tab.Scan(cursor, func(elem **int) { seen[**elem] = true }, 0)
		if cursor == 0 {
			break
		}
	}
	for i := n - 5; i < n; i++ {
		assert.True(t, seen[i], "key %d missing from scan during a shrink rehash", i)
	}
}

func TestScanIsStableAcrossMutation(t *testing.T) {
	tab := NewTable[*int](intType())
	for i := 0; i < 300; i++ {
		tab.Add(ptr(i))
	}

	var cursor uint64
	seen := make(map[int]bool)
	calls := 0
	for {
		cursor = tab.Scan(cursor, func(elem **int) { seen[**elem] = true }, 0)
		calls++
		if calls == 3 {
			tab.Add(ptr(10000 + calls))
		}
		if cursor == 0 {
			break
		}
	}
	for i := 0; i < 300; i++ {
		assert.True(t, seen[i])
	}
}
