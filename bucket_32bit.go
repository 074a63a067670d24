//go:build 386 || arm || mips || mipsle || mips64p32 || mips64p32le

package hashtab

// On 32-bit hosts a bucket holds 12 elements, with some unused bits left
// over in the metadata and padding area.
const (
	elementsPerBucket = 12
	bucketFactor      = 7
	bucketDivisor     = 64
	// Resulting worst-case fill on expand: 64/7/12 = 76.19%.

	bitsForPosInBucket = 4
)
