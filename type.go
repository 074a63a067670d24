package hashtab

// Type describes how a Table should treat the elements stored in it: how to
// extract a key from an element, how to compare two keys, how to hash a key,
// and (optionally) how to destroy an element and how much caller-reserved
// metadata to carve out of the table. It is the Go realization of the
// original's callback-struct collaborator.
//
// A Type value is typically created once per element type and shared by
// every Table of that type; it must not be mutated after a Table has been
// created with it.
type Type[E any] struct {
	// ElementGetKey extracts the key from an element. If nil, the element
	// itself (boxed as any) is used as the key, which is appropriate when E
	// is already a key-shaped, word-sized type such as an integer.
	ElementGetKey func(elem E) any

	// KeyCompare reports whether two keys are equal. If nil, Go's built-in
	// == is used, the analogue of the original's pointer-identity
	// comparison. Callers whose key type isn't comparable with == must
	// supply this.
	KeyCompare func(a, b any) bool

	// HashFunction computes a 64-bit hash of a key. If nil, DefaultHash is
	// used, which hashes the pointer identity of the key.
	HashFunction func(key any) uint64

	// ElementDestructor is called when an element is removed from the table
	// via Delete, TwoPhasePopDelete, Replace (on the replaced element), or
	// Release/Empty. It is never called for Pop or TwoPhasePopFind, which
	// return the element to the caller instead.
	ElementDestructor func(elem E)

	// GetMetadataSize, if non-nil, reserves that many bytes of
	// caller-defined metadata per Table, accessible via Table.Metadata.
	GetMetadataSize func() int

	// RehashingStarted, if non-nil, is called right after a resize begins a
	// new incremental rehash (before any buckets have moved). RehashingInfo
	// can be called from within this callback.
	RehashingStarted func(t *Table[E])

	// RehashingCompleted, if non-nil, is called right before the old table
	// is discarded at the end of a rehash. RehashingInfo can still be called
	// from within this callback.
	RehashingCompleted func(t *Table[E])

	// InstantRehashing, if true, causes a resize to immediately
	// fast-forward the rehash to completion instead of spreading it across
	// subsequent reads/writes. Useful for tests and for small tables where
	// incremental rehashing adds latency without saving meaningful work.
	InstantRehashing bool
}

func (ty *Type[E]) elementKey(elem E) any {
	if ty.ElementGetKey != nil {
		return ty.ElementGetKey(elem)
	}
	return elem
}

func (ty *Type[E]) compareKeys(a, b any) bool {
	if ty.KeyCompare != nil {
		return ty.KeyCompare(a, b)
	}
	return a == b
}

func (ty *Type[E]) hashKey(key any) uint64 {
	if ty.HashFunction != nil {
		return ty.HashFunction(key)
	}
	return DefaultHash(key)
}

func (ty *Type[E]) hashElement(elem E) uint64 {
	return ty.hashKey(ty.elementKey(elem))
}

func (ty *Type[E]) destroyElement(elem E) {
	if ty.ElementDestructor != nil {
		ty.ElementDestructor(elem)
	}
}
