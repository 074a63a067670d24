package hashtab

// rehashStep moves every element out of one source bucket in table 0,
// inserting each into table 1, then advances the rehash cursor to the next
// bucket in probing order (so a whole probe chain is rehashed together, not
// just one array slot) and completes the rehash if the cursor wraps to zero.
func (t *Table[E]) rehashStep() {
	assertf(t.IsRehashing(), "rehashStep called while not rehashing")
	idx := uint64(t.rehashIdx)
	b := &t.tables[0][idx]
	for pos := 0; pos < elementsPerBucket; pos++ {
		if b.presence&(1<<pos) == 0 {
			continue
		}
		elem := b.elements[pos]
		h2 := b.fingerprints[pos]

		// When shrinking, we can avoid recomputing the hash and just use
		// idx as the hash, but only if we know probing never pushed this
		// element away from its primary bucket — i.e. only if the
		// preceding bucket in probe order has never been full.
		var hash uint64
		if t.bucketExp[1] < t.bucketExp[0] && !t.tables[0][prevCursor(idx, expToMask(t.bucketExp[0]))].everfull {
			hash = idx
		} else {
			hash = t.ty.hashElement(elem)
		}

		dstBucketIndex, dstPos, _ := findBucketForInsert(t, hash)
		dst := &t.tables[1][dstBucketIndex]
		dst.elements[dstPos] = elem
		dst.fingerprints[dstPos] = h2
		dst.presence |= 1 << dstPos
		if bucketIsFull(dst) {
			dst.everfull = true
		}
		t.used[0]--
		t.used[1]++
	}
	// Mark the source bucket as empty.
	b.presence = 0

	t.rehashIdx = int64(nextCursor(idx, expToMask(t.bucketExp[0])))
	if t.rehashIdx == 0 {
		t.rehashingCompleted()
	}
}

// rehashingCompleted swaps table 1 into table 0's place and discards the old
// table.
func (t *Table[E]) rehashingCompleted() {
	if t.ty.RehashingCompleted != nil {
		t.ty.RehashingCompleted(t)
	}
	t.tables[0] = t.tables[1]
	t.bucketExp[0] = t.bucketExp[1]
	t.used[0] = t.used[1]
	resetTable(t, 1)
	t.rehashIdx = -1
}

// rehashStepOnReadIfNeeded is called on lookups and other reads.
func (t *Table[E]) rehashStepOnReadIfNeeded() {
	if !t.IsRehashing() || t.pauseRehash != 0 {
		return
	}
	if resizePolicy != ResizeAllow {
		return
	}
	t.rehashStep()
}

// rehashStepOnWriteIfNeeded is called on inserts and deletes. Reads already
// rehash a step under ResizeAllow, so this only fires under ResizeAvoid,
// ensuring writes still make progress toward finishing a rehash before the
// table needs to grow again.
func (t *Table[E]) rehashStepOnWriteIfNeeded() {
	if !t.IsRehashing() || t.pauseRehash != 0 {
		return
	}
	if resizePolicy != ResizeAvoid {
		return
	}
	t.rehashStep()
}
