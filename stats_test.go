package hashtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatsOnEmptyTable(t *testing.T) {
	tab := NewTable[*int](intType())
	stats := tab.GetStats()
	assert.Equal(t, 0, stats.Table0.Used)
	assert.Equal(t, TableStats{}, stats.Table1)
}

func TestGetStatsReflectsOccupancy(t *testing.T) {
	tab := NewTable[*int](intType())
	const n = 400
	for i := 0; i < n; i++ {
		tab.Add(ptr(i))
	}
	for tab.IsRehashing() {
		tab.rehashStep()
	}

	stats := tab.GetStats()
	assert.Equal(t, n, stats.Table0.Used)
	assert.LessOrEqual(t, stats.Table0.Used, stats.Table0.Capacity)
	total := 0
	for _, c := range stats.Table0.ChainLenHistogram {
		total += c
	}
	assert.Greater(t, total, 0)
}

func TestGetStatsDuringRehashPopulatesTable1(t *testing.T) {
	tab := NewTable[*int](intType())
	const n = 3000
	for i := 0; i < n; i++ {
		tab.Add(ptr(i))
	}
	require.True(t, tab.IsRehashing())

	stats := tab.GetStats()
	assert.Greater(t, stats.Table1.Buckets, 0)
	assert.Equal(t, n, stats.Table0.Used+stats.Table1.Used)
}
