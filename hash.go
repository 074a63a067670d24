package hashtab

import (
	"encoding/binary"
	"unsafe"

	"github.com/dolthub/maphash"
)

// --- Hash function API ---
//
// The default hash function hashes the pointer identity of the key — the
// direct analogue of the original's "elements are void*, and the default
// hash is over the pointer bits" contract. Tables whose keys carry their
// own equality (strings, structs, anything compared by content rather than
// identity) should supply Type.HashFunction and Type.KeyCompare — see
// keyhash.go's NewContentHash/NewContentCompare for the common case.

var (
	hashFunctionSeed [16]byte
	defaultHasher    = maphash.NewHasher[uintptr]()
)

// SetHashFunctionSeed sets the process-wide seed XORed into the pointer
// bits before DefaultHash hashes them, and draws a fresh random seed for
// the underlying maphash.Hasher. Typically called once at startup from a
// source of real randomness, to defend against algorithmic-complexity
// attacks that rely on predicting hash collisions for attacker-supplied
// keys.
//
// maphash.NewSeed has no way to derive its seed from caller-supplied bytes
// (hash/maphash deliberately exposes no deterministic seeding, to keep its
// collision resistance unpredictable), so only the XOR mix is reproducible
// from seed: calling SetHashFunctionSeed twice with the same bytes, in the
// same process or different ones, does not make DefaultHash produce the
// same digests.
func SetHashFunctionSeed(seed [16]byte) {
	hashFunctionSeed = seed
	defaultHasher = maphash.NewSeed(defaultHasher)
}

// GetHashFunctionSeed returns the bytes last passed to SetHashFunctionSeed.
// It does not capture the random maphash seed drawn alongside them, so it
// is not sufficient on its own to reproduce DefaultHash's output.
func GetHashFunctionSeed() [16]byte {
	return hashFunctionSeed
}

// DefaultHash is the hash function used when a Type doesn't supply its own
// HashFunction. It hashes the pointer identity of key, which must be a
// pointer-shaped value (a pointer, a map, a chan, a func, or an interface
// whose dynamic value is one of those) for the hash to be meaningful;
// content-keyed tables should supply an explicit Type.HashFunction instead.
func DefaultHash(key any) uint64 {
	mixed := uintptr(pointerIdentity(key)) ^ uintptr(seedMix())
	return defaultHasher.Hash(mixed)
}

func seedMix() uint64 {
	return binary.LittleEndian.Uint64(hashFunctionSeed[:8]) ^ binary.LittleEndian.Uint64(hashFunctionSeed[8:])
}

// eface is the runtime layout of a non-empty `any` value: a pointer to type
// metadata and a data word. The same technique the teacher uses
// (mapiface/hmap) to reach into a map header, here aimed at an interface
// header instead.
type eface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// pointerIdentity extracts the data word of an interface value. For a
// pointer-shaped dynamic value this is the pointer itself; for any other
// dynamic value it's the address of the (heap-allocated, once boxed) copy
// the runtime made to store it in the interface — still a valid identity,
// just not a meaningful one to hash.
func pointerIdentity(key any) unsafe.Pointer {
	e := (*eface)(unsafe.Pointer(&key))
	return e.data
}
