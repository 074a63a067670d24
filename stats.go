package hashtab

// chainLengthBuckets is the length of the chain-length histogram in Stats.
// Chains at or beyond this length are folded into the last bucket.
const chainLengthBuckets = 50

// TableStats summarizes the bucket occupancy and probe-chain lengths of one
// of a Table's two underlying tables (index 0 is always populated; index 1
// is only meaningful while rehashing).
type TableStats struct {
	Buckets           int
	Capacity          int // Buckets * elementsPerBucket.
	Used              int
	MaxChainLen       int
	TotalChainLen     int
	ChainLenHistogram [chainLengthBuckets]int
}

// Stats is a snapshot of a Table's internal distribution, for diagnostics
// and capacity planning. Human-readable formatting of this data is left to
// the caller; this package only computes the underlying numbers.
type Stats struct {
	Table0 TableStats
	Table1 TableStats // Zero value if the table is not currently rehashing.
}

// GetStats computes a Stats snapshot. This walks every bucket in both
// tables, so it's relatively expensive — intended for periodic diagnostics,
// not a hot path.
func (t *Table[E]) GetStats() Stats {
	var s Stats
	s.Table0 = tableStatsFor(t, 0)
	if t.IsRehashing() {
		s.Table1 = tableStatsFor(t, 1)
	}
	return s
}

func tableStatsFor[E any](t *Table[E], tableIdx int) TableStats {
	var s TableStats
	s.Buckets = numBuckets(t.bucketExp[tableIdx])
	s.Capacity = s.Buckets * elementsPerBucket
	s.Used = t.used[tableIdx]

	var chainLen int
	for idx := 0; idx < s.Buckets; idx++ {
		b := &t.tables[tableIdx][idx]
		if b.everfull {
			s.TotalChainLen++
			chainLen++
			continue
		}
		bucketIdx := chainLen
		if bucketIdx >= chainLengthBuckets {
			bucketIdx = chainLengthBuckets - 1
		}
		s.ChainLenHistogram[bucketIdx]++
		if chainLen > s.MaxChainLen {
			s.MaxChainLen = chainLen
		}
		chainLen = 0
	}
	return s
}
