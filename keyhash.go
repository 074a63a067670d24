package hashtab

import "github.com/dolthub/maphash"

// NewContentHash returns a Type.HashFunction that hashes a key's content via
// maphash.Hasher[K], for Types whose keys are compared by value rather than
// pointer identity (the common case once elements are pointers, as required
// by NewTable's word-size check). Grounded on
// homier-stablemap/hash.go's MakeDefaultHashFunc, adapted to the teacher's
// dolthub/maphash instead of the standard library's hash/maphash.
//
// The returned function panics if called with a key whose dynamic type
// isn't K.
func NewContentHash[K comparable]() func(key any) uint64 {
	hasher := maphash.NewHasher[K]()
	return func(key any) uint64 {
		return hasher.Hash(key.(K))
	}
}

// NewContentCompare returns a Type.KeyCompare that compares keys of type K
// with ==. Pair with NewContentHash for a Type whose keys are compared (and
// hashed) by content.
func NewContentCompare[K comparable]() func(a, b any) bool {
	return func(a, b any) bool {
		return a.(K) == b.(K)
	}
}
