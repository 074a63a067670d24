package hashtab

// PauseAutoShrink pauses automatic shrinking. Call this before deleting many
// elements, to avoid triggering shrink-driven resizes repeatedly, then call
// ResumeAutoShrink afterward to restore automatic shrinking (which will
// itself trigger a shrink check).
func (t *Table[E]) PauseAutoShrink() {
	t.pauseAutoShrink++
}

// ResumeAutoShrink re-enables automatic shrinking after it has been paused.
func (t *Table[E]) ResumeAutoShrink() {
	t.pauseAutoShrink--
	if t.pauseAutoShrink == 0 {
		t.shrinkIfNeeded()
	}
}

// PauseRehashing pauses incremental rehashing.
func (t *Table[E]) PauseRehashing() {
	t.pauseRehash++
}

// ResumeRehashing resumes incremental rehashing after it has been paused.
func (t *Table[E]) ResumeRehashing() {
	t.pauseRehash--
}

// IsRehashingPaused reports whether incremental rehashing is currently
// paused.
func (t *Table[E]) IsRehashingPaused() bool {
	return t.pauseRehash > 0
}

// IsRehashing reports whether incremental rehashing is in progress.
func (t *Table[E]) IsRehashing() bool {
	return t.rehashIdx != -1
}

// RehashingInfo returns the old and new table capacities during rehashing.
// It panics if rehashing is not in progress. It is intended for use from
// Type[E].RehashingStarted and Type[E].RehashingCompleted callbacks.
func (t *Table[E]) RehashingInfo() (fromSize, toSize int) {
	assertf(t.IsRehashing(), "RehashingInfo called while not rehashing")
	fromSize = int(numBuckets(t.bucketExp[0])) * elementsPerBucket
	toSize = int(numBuckets(t.bucketExp[1])) * elementsPerBucket
	return
}
