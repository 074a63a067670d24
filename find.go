package hashtab

import "math/bits"

// findBucket looks for an element matching key. If found, it returns the
// bucket index, the slot index within that bucket, the table index (0 or 1)
// the bucket belongs to, and found=true.
func findBucket[E any](t *Table[E], hash uint64, key any) (bucketIndex uint64, posInBucket, tableIndex int, found bool) {
	if t.Size() == 0 {
		return 0, 0, 0, false
	}
	h2 := highBits(hash)

	t.rehashStepOnReadIfNeeded()

	// Check the rehashing destination table first: it's newer and typically
	// has fewer ever-full buckets, so it needs less probing.
	for table := 1; table >= 0; table-- {
		if t.used[table] == 0 {
			continue
		}
		mask := expToMask(t.bucketExp[table])
		idx := hash & mask
		for {
			bk := &t.tables[table][idx]
			matches := bk.matchFingerprint(h2)
			for matches != 0 {
				pos := bits.TrailingZeros16(matches)
				matches &^= 1 << pos
				elemKey := t.ty.elementKey(bk.elements[pos])
				if t.ty.compareKeys(key, elemKey) {
					return idx, pos, table, true
				}
			}
			if !bk.everfull {
				break
			}
			idx = nextCursor(idx, mask)
		}
	}
	return 0, 0, 0, false
}
