package hashtab

import "unsafe"

// tableFingerprint hashes a snapshot of both tables' identity, size, and
// occupancy, using Tomas Wang's 64-bit integer hash. An unsafe iterator
// checks this at Reset against the value captured at its first Next, to
// catch a table mutated during an iteration that promised not to be.
func tableFingerprint[E any](t *Table[E]) uint64 {
	var words [6]uint64
	words[0] = uint64(uintptr(unsafe.Pointer(unsafe.SliceData(t.tables[0]))))
	words[1] = uint64(uint8(t.bucketExp[0]))
	words[2] = uint64(t.used[0])
	words[3] = uint64(uintptr(unsafe.Pointer(unsafe.SliceData(t.tables[1]))))
	words[4] = uint64(uint8(t.bucketExp[1]))
	words[5] = uint64(t.used[1])

	var hash uint64
	for _, w := range words {
		hash += w
		hash = ^hash + (hash << 21)
		hash ^= hash >> 24
		hash = (hash + (hash << 3)) + (hash << 8)
		hash ^= hash >> 14
		hash = (hash + (hash << 2)) + (hash << 4)
		hash ^= hash >> 28
		hash += hash << 31
	}
	return hash
}

// Iterator walks every element of a Table exactly once (modulo the mutation
// rules below). The zero value is not usable; create one with NewIterator
// or NewSafeIterator.
//
// An unsafe iterator forbids all lookups, insertions, and deletions on the
// underlying table for its entire lifetime — any of those can trigger
// incremental rehashing, which moves elements and invalidates the
// iterator's bookkeeping. Reset panics if it detects this happened.
//
// A safe iterator pauses rehashing from the first call to Next until Reset,
// so mutation is permitted: elements deleted or replaced (via Replace)
// after being returned by the iterator are not returned again; elements
// replaced before being returned are returned; elements inserted during the
// iteration may or may not be returned.
type Iterator[E any] struct {
	t           *Table[E]
	table       int
	index       int
	posInBucket int
	safe        bool
	started     bool
	fingerprint uint64
}

// NewIterator creates an unsafe iterator over t.
func NewIterator[E any](t *Table[E]) *Iterator[E] {
	return &Iterator[E]{t: t, table: 0, index: -1}
}

// NewSafeIterator creates a safe iterator over t.
func NewSafeIterator[E any](t *Table[E]) *Iterator[E] {
	return &Iterator[E]{t: t, table: 0, index: -1, safe: true}
}

// Next advances the iterator and returns the next element. ok is false once
// every element has been visited.
func (it *Iterator[E]) Next() (elem E, ok bool) {
	for {
		if it.index == -1 && it.table == 0 {
			if !it.started {
				it.started = true
				if it.safe {
					it.t.PauseRehashing()
				} else {
					it.fingerprint = tableFingerprint(it.t)
				}
			}
			it.index = 0
			if it.t.tables[0] == nil {
				// Empty table: nothing to visit.
				it.posInBucket = elementsPerBucket
				return elem, false
			}
			if it.t.IsRehashing() {
				// Skip buckets in table 0 that have already been rehashed
				// away.
				it.index = int(it.t.rehashIdx)
			}
			it.posInBucket = 0
		} else {
			it.posInBucket++
			if it.posInBucket >= elementsPerBucket {
				it.posInBucket = 0
				if it.t.IsRehashing() && it.table == 0 {
					// Table 0 is drained in cursor order, so its remaining
					// buckets run from rehashIdx up to the cursor's wrap to 0.
					it.index = int(nextCursor(uint64(it.index), expToMask(it.t.bucketExp[0])))
					if it.index == 0 {
						it.table++
					}
				} else if it.index++; it.index >= numBuckets(it.t.bucketExp[it.table]) {
					it.index = 0
					return elem, false
				}
			}
		}

		b := &it.t.tables[it.table][it.index]
		if b.presence&(1<<it.posInBucket) == 0 {
			continue
		}
		return b.elements[it.posInBucket], true
	}
}

// Reset releases whatever state the iterator holds on the table — resuming
// rehashing for a safe iterator, or checking the unsafe fingerprint — and
// must be called once iteration is abandoned or complete. Reset panics if
// an unsafe iterator detects that the table was mutated during iteration.
func (it *Iterator[E]) Reset() {
	if it.index == -1 && it.table == 0 {
		return
	}
	if it.safe {
		it.t.ResumeRehashing()
	} else {
		assertf(it.fingerprint == tableFingerprint(it.t),
			"hashtab: table mutated during unsafe iteration")
	}
}
