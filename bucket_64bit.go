//go:build amd64 || arm64 || arm64be || ppc64 || ppc64le || mips64 || mips64le || riscv64 || s390x || wasm || loong64

package hashtab

// On 64-bit hosts a bucket holds 7 elements. With pointer-sized elements the
// bucket struct is 72 bytes, one word more than a 64-byte cache line:
// everfull (1 byte), presence (2 bytes) and the 7 fingerprint bytes are
// padded to 16 bytes ahead of the 56 bytes of elements.
const (
	elementsPerBucket = 7

	// Selecting the number of buckets.
	//
	// When resizing the table we want to pick a bucket count without an
	// expensive division. Division by a power of two is cheap, so we choose
	// bucketFactor/bucketDivisor such that
	//
	//     numBuckets = ceil(numElements * bucketFactor / bucketDivisor)
	//
	// gives a fill factor of at most maxFillPercentSoft.
	bucketFactor  = 3
	bucketDivisor = 16
	// Resulting worst-case fill on expand: 16/3/7 = 76.19%.

	bitsForPosInBucket = 3
)
