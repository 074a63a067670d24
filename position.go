package hashtab

// Position is an opaque encoded location within a Table, returned by
// FindPositionForInsert or TwoPhasePopFind and consumed by InsertAtPosition
// or TwoPhasePopDelete. The zero value is an invalid position and is never
// returned to mean "found a location" — it's what FindPositionForInsert
// returns alongside an existing element, so callers can check IsValid
// instead of relying on a pointer happening to be nil.
//
// Between acquiring a Position and consuming it, the table must not be
// accessed in any way — even a Find can trigger incremental rehashing and
// move elements in memory, invalidating the position.
type Position struct {
	encoded uint64
}

// IsValid reports whether p refers to an actual location. An invalid
// Position is returned when the key was already present.
func (p Position) IsValid() bool {
	return p.encoded != 0
}

func encodePosition(bucketIndex uint64, posInBucket, tableIndex int) Position {
	encoded := bucketIndex
	encoded <<= bitsForPosInBucket
	encoded |= uint64(posInBucket)
	encoded <<= 1
	encoded |= uint64(tableIndex)
	encoded++ // Ensure the encoding of a real position is never zero.
	return Position{encoded: encoded}
}

func decodePosition(p Position) (bucketIndex uint64, posInBucket, tableIndex int) {
	encoded := p.encoded
	encoded--
	tableIndex = int(encoded & 1)
	encoded >>= 1
	posInBucket = int(encoded & (1<<bitsForPosInBucket - 1))
	encoded >>= bitsForPosInBucket
	bucketIndex = encoded
	return bucketIndex, posInBucket, tableIndex
}

// FindPositionForInsert finds the position where an element with the given
// key should be inserted using InsertAtPosition. This is the first phase of
// a two-phase insert, useful for avoiding construction of an element before
// knowing whether its key already exists, without a separate lookup.
//
// If an element with the given key already exists, FindPositionForInsert
// returns it as existing and an invalid Position. Otherwise it returns a
// valid Position and the zero value.
func (t *Table[E]) FindPositionForInsert(key any) (pos Position, existing E, found bool) {
	hash := t.ty.hashKey(key)
	foundBucketIndex, bpos, foundTableIndex, ok := findBucket(t, hash, key)
	if ok {
		return Position{}, t.tables[foundTableIndex][foundBucketIndex].elements[bpos], true
	}

	t.expandIfNeeded()
	t.rehashStepOnWriteIfNeeded()
	bucketIndex, bpos, tableIndex := findBucketForInsert(t, hash)
	b := &t.tables[tableIndex][bucketIndex]
	assertf(b.presence&(1<<bpos) == 0, "findBucketForInsert returned an occupied slot")

	// Store the fingerprint now, so InsertAtPosition doesn't need to
	// recompute the hash.
	b.fingerprints[bpos] = highBits(hash)

	return encodePosition(bucketIndex, bpos, tableIndex), existing, false
}

// InsertAtPosition inserts elem at the position previously returned by
// FindPositionForInsert. elem's key must match the key passed to
// FindPositionForInsert, and the table must not have been accessed in any
// way between the two calls.
func (t *Table[E]) InsertAtPosition(elem E, pos Position) {
	assertf(pos.IsValid(), "InsertAtPosition called with an invalid Position")
	bucketIndex, posInBucket, tableIndex := decodePosition(pos)
	b := &t.tables[tableIndex][bucketIndex]
	assertf(b.presence&(1<<posInBucket) == 0, "InsertAtPosition: slot already occupied")
	b.presence |= 1 << posInBucket
	b.elements[posInBucket] = elem
	// Fingerprint was already set by FindPositionForInsert.
	if bucketIsFull(b) {
		b.everfull = true
	}
	t.used[tableIndex]++
}
