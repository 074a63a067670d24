package hashtab

import (
	"fmt"
	"math/bits"
)

// We use a soft and a hard limit for the minimum and maximum fill factor.
// The hard limits are used when resizing should be avoided, per
// ResizePolicy. Resizing is typically avoided when there's a forked child
// process running: we don't want to move too much memory around, since the
// fork is using copy-on-write.
//
// With open addressing, the physical fill factor limit is 100% (probing
// covers the whole table), so an expand may still be needed even when it's
// preferred to avoid one. Even so, we can avoid actively moving elements
// from the old table to the new one: under ResizeAvoid, incremental
// rehashing only advances on writes, not on reads.
const (
	maxFillPercentSoft = 77
	maxFillPercentHard = 90
	minFillPercentSoft = 13
	minFillPercentHard = 3
)

// nextBucketExp returns the smallest exponent exp such that numBuckets =
// 1 << exp is at least ceil(minCapacity * bucketFactor / bucketDivisor), so
// that minCapacity elements fill at most about 76% of the capacity
// (numBuckets * elementsPerBucket). It returns -1 if minCapacity <= 0.
func nextBucketExp(minCapacity int) int8 {
	if minCapacity <= 0 {
		return -1
	}
	// ceil(x / y) = floor((x - 1) / y) + 1
	minBuckets := (uint64(minCapacity)*uint64(bucketFactor)-1)/uint64(bucketDivisor) + 1
	if minBuckets <= 1 {
		return 0
	}
	exp := bits.Len64(minBuckets - 1)
	if exp > 62 {
		exp = 62
	}
	return int8(exp)
}

// resize allocates a new table and initiates incremental rehashing if
// necessary. Returns grew=true if a new table was allocated.
func (t *Table[E]) resize(minCapacity int) (grew bool, err error) {
	if minCapacity == 0 {
		minCapacity = 1
	}

	exp := nextBucketExp(minCapacity)
	nb := numBuckets(exp)
	newCapacity := nb * elementsPerBucket
	if newCapacity < minCapacity {
		return false, fmt.Errorf("hashtab: requested capacity %d overflows bucket sizing", minCapacity)
	}

	oldExp := t.bucketExp[0]
	if t.IsRehashing() {
		oldExp = t.bucketExp[1]
	}
	if exp == oldExp {
		// Can't resize to the same size.
		return false, nil
	}

	// We can't resize if rehashing is already ongoing; fast-forward it.
	for t.IsRehashing() {
		t.rehashStep()
	}

	t.tables[1] = make([]bucket[E], nb)
	t.bucketExp[1] = exp
	t.used[1] = 0
	t.rehashIdx = 0
	if t.ty.RehashingStarted != nil {
		t.ty.RehashingStarted(t)
	}

	if t.tables[0] == nil || t.used[0] == 0 {
		// The old table was empty: rehashing completes immediately.
		t.rehashingCompleted()
	} else if t.ty.InstantRehashing {
		for t.IsRehashing() {
			t.rehashStep()
		}
	}
	return true, nil
}

func (t *Table[E]) expand(size int) (grew bool, err error) {
	if size < t.Size() {
		return false, nil
	}
	return t.resize(size)
}

// Expand ensures the table has room for at least size elements without
// needing another resize right away. Returns grew=true if a resize took
// place.
func (t *Table[E]) Expand(size int) (grew bool, err error) {
	return t.expand(size)
}

// TryExpand behaves exactly like Expand. The original C implementation
// distinguishes them by how allocation failure is reported; in Go,
// allocation failure panics (the same way append or make does) rather than
// being a value a caller can recover from, so there is nothing left for
// TryExpand to report differently.
func (t *Table[E]) TryExpand(size int) (grew bool, err error) {
	return t.expand(size)
}

// ExpandIfNeeded is called automatically on insertion, but less eagerly if
// the resize policy is ResizeAvoid (ResizeForbid uses the same fill limit as
// ResizeAllow). After restoring the
// resize policy to ResizeAllow, callers may want to call this explicitly.
func (t *Table[E]) ExpandIfNeeded() (grew bool, err error) {
	minCapacity := t.used[0] + t.used[1] + 1
	table := 0
	if t.IsRehashing() {
		table = 1
	}
	currentCapacity := numBuckets(t.bucketExp[table]) * elementsPerBucket
	maxFillPercent := maxFillPercentSoft
	if resizePolicy == ResizeAvoid {
		maxFillPercent = maxFillPercentHard
	}
	if minCapacity*100 <= currentCapacity*maxFillPercent {
		return false, nil
	}
	return t.resize(minCapacity)
}

// ShrinkIfNeeded is called automatically on deletion, but less eagerly if
// the resize policy is ResizeAvoid, and not at all if it is ResizeForbid.
func (t *Table[E]) ShrinkIfNeeded() (grew bool, err error) {
	if t.IsRehashing() || resizePolicy == ResizeForbid {
		return false, nil
	}
	currentCapacity := numBuckets(t.bucketExp[0]) * elementsPerBucket
	minFillPercent := minFillPercentSoft
	if resizePolicy == ResizeAvoid {
		minFillPercent = minFillPercentHard
	}
	if t.used[0]*100 > currentCapacity*minFillPercent {
		return false, nil
	}
	return t.resize(t.used[0])
}

func (t *Table[E]) expandIfNeeded() {
	_, _ = t.ExpandIfNeeded()
}

func (t *Table[E]) shrinkIfNeeded() {
	if t.pauseAutoShrink > 0 {
		return
	}
	_, _ = t.ShrinkIfNeeded()
}
