package hashtab

// findBucketForInsert finds an empty slot for an element with the given
// hash, expanding/rehashing as needed by the caller beforehand. It never
// fails: probing always finds an empty slot in a table that hasn't
// overflowed its capacity.
func findBucketForInsert[E any](t *Table[E], hash uint64) (bucketIndex uint64, posInBucket, tableIndex int) {
	tableIndex = 0
	if t.IsRehashing() {
		tableIndex = 1
	}
	assertf(t.tables[tableIndex] != nil, "findBucketForInsert: table %d not allocated", tableIndex)
	mask := expToMask(t.bucketExp[tableIndex])
	bucketIndex = hash & mask
	for {
		bk := &t.tables[tableIndex][bucketIndex]
		if pos, ok := bk.firstEmptySlot(); ok {
			return bucketIndex, pos, tableIndex
		}
		bucketIndex = nextCursor(bucketIndex, mask)
	}
}

// insert places elem, whose key is assumed not to already be in the table,
// into whichever table is currently receiving writes.
func (t *Table[E]) insert(hash uint64, elem E) {
	t.expandIfNeeded()
	t.rehashStepOnWriteIfNeeded()
	bucketIndex, pos, tableIndex := findBucketForInsert(t, hash)
	b := &t.tables[tableIndex][bucketIndex]
	b.elements[pos] = elem
	b.presence |= 1 << pos
	b.fingerprints[pos] = highBits(hash)
	if bucketIsFull(b) {
		b.everfull = true
	}
	t.used[tableIndex]++
}

// Find looks up the element whose key matches key. Returns the element and
// true if found, the zero value and false otherwise.
func (t *Table[E]) Find(key any) (elem E, found bool) {
	if t.Size() == 0 {
		return elem, false
	}
	hash := t.ty.hashKey(key)
	bucketIndex, pos, tableIndex, ok := findBucket(t, hash, key)
	if !ok {
		return elem, false
	}
	return t.tables[tableIndex][bucketIndex].elements[pos], true
}

// Has reports whether an element with the given key is present.
func (t *Table[E]) Has(key any) bool {
	_, ok := t.Find(key)
	return ok
}

// Add inserts elem. Returns true on success, false if an element with the
// same key already exists (in which case elem is not inserted).
func (t *Table[E]) Add(elem E) bool {
	inserted, _ := t.AddOrFind(elem)
	return inserted
}

// AddOrFind inserts elem and returns (true, zero value) on success, or
// (false, existingElement) if an element with the same key already exists.
func (t *Table[E]) AddOrFind(elem E) (inserted bool, existing E) {
	key := t.ty.elementKey(elem)
	hash := t.ty.hashKey(key)
	bucketIndex, pos, tableIndex, ok := findBucket(t, hash, key)
	if ok {
		return false, t.tables[tableIndex][bucketIndex].elements[pos]
	}
	t.insert(hash, elem)
	return true, existing
}

// Replace inserts elem, overwriting (and destroying, via
// Type.ElementDestructor) any existing element with the same key. Returns
// true if a new element was inserted, false if an existing element was
// overwritten.
func (t *Table[E]) Replace(elem E) bool {
	key := t.ty.elementKey(elem)
	hash := t.ty.hashKey(key)
	bucketIndex, pos, tableIndex, ok := findBucket(t, hash, key)
	if ok {
		b := &t.tables[tableIndex][bucketIndex]
		t.ty.destroyElement(b.elements[pos])
		b.elements[pos] = elem
		return false
	}
	t.insert(hash, elem)
	return true
}
