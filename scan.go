package hashtab

// ScanFunc is called by Scan for each element visited. It always receives a
// pointer into the table's backing storage, which callers may use to mutate
// the element in place (the moral equivalent of the original's EMIT_REF
// flag — Go's slice-backed buckets make a pointer cheap to hand out
// unconditionally, so there's no separate by-value calling convention).
type ScanFunc[E any] func(elem *E)

// ScanFlags controls Scan's behavior.
type ScanFlags uint8

const (
	// ScanEmitRef is accepted for API compatibility but has no effect:
	// ScanFunc is always called with a pointer to the element's slot.
	ScanEmitRef ScanFlags = 1 << iota

	// ScanSingleStep disables probe-chain continuation, trading the
	// liveness guarantee for a smaller, bounded amount of work per call.
	// Used by sampling, which doesn't need a complete traversal.
	ScanSingleStep
)

// Scan is a stateless, cursor-based traversal. Start with a cursor of 0;
// each call emits zero or more elements through fn and returns the cursor to
// pass to the next call. A returned cursor of 0 means the traversal is
// complete.
//
// The table may be mutated, resized, and rehashed between calls — the scan
// resumes using only the cursor value. Any element present for an entire
// traversal is emitted at least once; an element may rarely be emitted
// twice, chiefly when a probe chain spans the wraparound at cursor 0 or an
// element migrates between tables mid-scan.
//
// fn must not insert, delete, or look up elements in t: Scan pauses
// rehashing for its duration, but does not defend against the table
// changing shape underneath the callback.
func (t *Table[E]) Scan(cursor uint64, fn ScanFunc[E], flags ScanFlags) uint64 {
	if t.Size() == 0 {
		return 0
	}

	t.PauseRehashing()
	defer t.ResumeRehashing()

	singleStep := flags&ScanSingleStep != 0
	cursorPassedZero := false
	inProbeSequence := true

	emit := func(b *bucket[E]) {
		for pos := 0; pos < elementsPerBucket; pos++ {
			if b.presence&(1<<pos) != 0 {
				fn(&b.elements[pos])
			}
		}
	}

	for {
		inProbeSequence = false

		if !t.IsRehashing() {
			mask := expToMask(t.bucketExp[0])
			b := &t.tables[0][cursor&mask]
			emit(b)
			inProbeSequence = b.everfull
			cursor = nextCursor(cursor, mask)
		} else {
			// tables[0] is always the rehash source and tables[1] always the
			// destination, regardless of whether this resize is a grow or a
			// shrink, so each keeps its own mask; rehashIdx is expressed in
			// table 0's own mask space (rehashStep advances it that way), so
			// the already-migrated gate applies to every access of tables[0]
			// specifically, whichever role it's playing below. Cursor
			// advancement is driven by the bigger of the two masks, and the
			// bigger table is the one that must be swept bucket-by-bucket on
			// every step of the loop -- the smaller table's corresponding
			// bucket only needs one visit per group, since several of the
			// bigger table's buckets fold into it.
			maskSrc := expToMask(t.bucketExp[0])
			maskDst := expToMask(t.bucketExp[1])
			srcIsBigger := maskSrc > maskDst
			driveMask := maskDst
			if srcIsBigger {
				driveMask = maskSrc
			}

			emitSrc := func(idx uint64) {
				if !cursorIsLessThan(idx, uint64(t.rehashIdx)) {
					b := &t.tables[0][idx&maskSrc]
					emit(b)
					inProbeSequence = inProbeSequence || b.everfull
				}
			}
			emitDst := func(idx uint64) {
				b := &t.tables[1][idx&maskDst]
				emit(b)
				inProbeSequence = inProbeSequence || b.everfull
			}

			if srcIsBigger {
				emitDst(cursor)
				for {
					emitSrc(cursor)
					cursor = nextCursor(cursor, driveMask)
					if cursor&(maskSrc^maskDst) == 0 {
						break
					}
				}
			} else {
				emitSrc(cursor)
				for {
					emitDst(cursor)
					cursor = nextCursor(cursor, driveMask)
					if cursor&(maskSrc^maskDst) == 0 {
						break
					}
				}
			}
		}

		if cursor == 0 {
			cursorPassedZero = true
		}
		if !inProbeSequence || singleStep {
			break
		}
	}

	if cursorPassedZero {
		return 0
	}
	return cursor
}
