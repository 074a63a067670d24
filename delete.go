package hashtab

// Pop removes the element matching key and returns it, without calling the
// element destructor. Returns the element and true if found, the zero value
// and false otherwise.
func (t *Table[E]) Pop(key any) (popped E, found bool) {
	if t.Size() == 0 {
		return popped, false
	}
	t.rehashStepOnWriteIfNeeded()
	hash := t.ty.hashKey(key)
	bucketIndex, pos, tableIndex, ok := findBucket(t, hash, key)
	if !ok {
		return popped, false
	}
	b := &t.tables[tableIndex][bucketIndex]
	popped = b.elements[pos]
	b.presence &^= 1 << pos
	t.used[tableIndex]--
	t.shrinkIfNeeded()
	return popped, true
}

// Delete removes the element matching key, calling its Type.ElementDestructor
// if one is set. Returns true if an element was removed.
func (t *Table[E]) Delete(key any) bool {
	elem, ok := t.Pop(key)
	if !ok {
		return false
	}
	t.ty.destroyElement(elem)
	return true
}

// TwoPhasePopFind looks up the element matching key without removing it, and
// pauses rehashing. If found, call TwoPhasePopDelete with the returned
// Position to complete the removal and resume rehashing; the table must not
// be otherwise accessed between the two calls.
//
// Two-phase pop is an optimized equivalent of Find followed by Delete: the
// first call finds the element without removing it, and the second removes
// it without searching the table again.
func (t *Table[E]) TwoPhasePopFind(key any) (found E, pos Position, ok bool) {
	if t.Size() == 0 {
		return found, Position{}, false
	}
	hash := t.ty.hashKey(key)
	bucketIndex, bpos, tableIndex, match := findBucket(t, hash, key)
	if !match {
		return found, Position{}, false
	}
	t.PauseRehashing()
	found = t.tables[tableIndex][bucketIndex].elements[bpos]
	return found, encodePosition(bucketIndex, bpos, tableIndex), true
}

// TwoPhasePopDelete removes the element at pos (as returned by
// TwoPhasePopFind), calling its Type.ElementDestructor if one is set, and
// resumes rehashing.
func (t *Table[E]) TwoPhasePopDelete(pos Position) {
	bucketIndex, posInBucket, tableIndex := decodePosition(pos)
	b := &t.tables[tableIndex][bucketIndex]
	assertf(b.presence&(1<<posInBucket) != 0, "TwoPhasePopDelete: slot already empty")
	t.ty.destroyElement(b.elements[posInBucket])
	b.presence &^= 1 << posInBucket
	t.used[tableIndex]--
	t.shrinkIfNeeded()
	t.ResumeRehashing()
}
