package hashtab

import "unsafe"

// Table is an open addressing hash table containing elements of type E, with
// buckets close to one cache line in size and incremental rehashing. The zero value is not
// usable; create one with NewTable.
//
// A Table is not safe for concurrent use. Callers must serialize access,
// typically with the same lock that serializes whatever larger structure the
// table backs.
type Table[E any] struct {
	ty        *Type[E]
	rehashIdx int64       // -1 = rehashing not in progress.
	tables    [2][]bucket[E]
	used      [2]int       // Number of elements in each table.
	bucketExp [2]int8      // Exponent for num buckets (num = 1 << exp); -1 = no table.
	pauseRehash     int16 // Non-zero = rehashing is paused.
	pauseAutoShrink int16 // Non-zero = automatic shrinking disallowed.
	metadata        []byte

	initialCapacity int // Set by WithInitialCapacity; consumed once in NewTable.
}

// NewTable creates a table for the given Type. opts can override defaults
// such as the initial capacity.
//
// NewTable panics if E is wider than a machine word: the bucket layout
// assumes a pointer-sized element, the same assumption the original made
// with void* elements, here checked at the first call to NewTable[E] for a
// given E since Go generics have no compile-time equivalent of
// static_assert over a type parameter.
func NewTable[E any](ty *Type[E], opts ...Option[E]) *Table[E] {
	assertf(ty != nil, "NewTable requires a non-nil Type")
	var zero E
	assertf(unsafe.Sizeof(zero) <= unsafe.Sizeof(uintptr(0)),
		"hashtab: element type is %d bytes, wider than a machine word; "+
			"store a pointer to your data instead of the data itself", unsafe.Sizeof(zero))

	t := &Table[E]{
		ty:        ty,
		rehashIdx: -1,
	}
	resetTable(t, 0)
	resetTable(t, 1)
	if ty.GetMetadataSize != nil {
		if n := ty.GetMetadataSize(); n > 0 {
			t.metadata = make([]byte, n)
		}
	}
	for _, opt := range opts {
		opt.apply(t)
	}
	if t.initialCapacity > 0 {
		_, _ = t.expand(t.initialCapacity)
	}
	return t
}

func resetTable[E any](t *Table[E], tableIdx int) {
	t.tables[tableIdx] = nil
	t.used[tableIdx] = 0
	t.bucketExp[tableIdx] = -1
}

func numBuckets(exp int8) int {
	if exp == -1 {
		return 0
	}
	return 1 << exp
}

// expToMask returns the bitmask for masking a hash value to a bucket index.
func expToMask(exp int8) uint64 {
	if exp == -1 {
		return 0
	}
	return uint64(numBuckets(exp)) - 1
}

// Type returns the Type this table was created with.
func (t *Table[E]) Type() *Type[E] {
	return t.ty
}

// Metadata returns the table's caller-reserved metadata bytes, sized by
// Type.GetMetadataSize. Returns nil if GetMetadataSize was nil or returned 0.
func (t *Table[E]) Metadata() []byte {
	return t.metadata
}

// Size returns the number of elements stored in the table.
func (t *Table[E]) Size() int {
	return t.used[0] + t.used[1]
}

// MemUsage returns an estimate, in bytes, of the memory used by the table's
// internal structures — buckets and metadata — not including any memory
// referenced by the elements themselves.
func (t *Table[E]) MemUsage() int {
	var b bucket[E]
	bucketSize := int(unsafe.Sizeof(b))
	n := numBuckets(t.bucketExp[0]) + numBuckets(t.bucketExp[1])
	return bucketSize*n + len(t.metadata)
}

// Empty deletes all elements, calling the element destructor (if any) for
// each one. If progress is non-nil and the Type has an ElementDestructor,
// progress is called once every 65536 buckets while the destructors run;
// without a destructor the buckets are not walked and progress is not
// called.
func (t *Table[E]) Empty(progress func(*Table[E])) {
	if t.IsRehashing() {
		if t.ty.RehashingCompleted != nil {
			t.ty.RehashingCompleted(t)
		}
		t.rehashIdx = -1
	}
	for tableIdx := 0; tableIdx <= 1; tableIdx++ {
		if t.bucketExp[tableIdx] < 0 {
			continue
		}
		if t.ty.ElementDestructor != nil {
			n := numBuckets(t.bucketExp[tableIdx])
			for idx := 0; idx < n; idx++ {
				if progress != nil && idx&65535 == 0 {
					progress(t)
				}
				b := &t.tables[tableIdx][idx]
				if b.presence == 0 {
					continue
				}
				for pos := 0; pos < elementsPerBucket; pos++ {
					if b.presence&(1<<pos) != 0 {
						t.ty.destroyElement(b.elements[pos])
					}
				}
			}
		}
		resetTable(t, tableIdx)
	}
}

// Release deletes all elements (see Empty) and releases the table's
// internal storage. The Table must not be used afterward.
func (t *Table[E]) Release() {
	t.Empty(nil)
}
