package hashtab

import "math/bits"

// Reverse-bit cursor arithmetic.
//
// Ported from the reverse-bits trick at
// https://graphics.stanford.edu/~seander/bithacks.html#ReverseParallel,
// adapted to use a byte-swap as the original implementation does. It
// underlies probing order, rehashing order, and Scan's stateless cursor, all
// of which must agree so that a cursor value comparison tells you whether a
// bucket has already been rehashed or already been scanned.

func rev(v uint64) uint64 {
	v = ((v >> 1) & 0x5555555555555555) | ((v & 0x5555555555555555) << 1)
	v = ((v >> 2) & 0x3333333333333333) | ((v & 0x3333333333333333) << 2)
	v = ((v >> 4) & 0x0F0F0F0F0F0F0F0F) | ((v & 0x0F0F0F0F0F0F0F0F) << 4)
	return bits.ReverseBytes64(v)
}

// nextCursor advances a scan cursor to the next value. It increments the
// reverse-bit representation of the masked bits of v. This algorithm was
// invented by Pieter Noordhuis.
func nextCursor(v, mask uint64) uint64 {
	v |= ^mask // Set the unmasked (high) bits.
	v = rev(v) // Reverse. The unmasked bits are now the low bits.
	v++        // Increment the reversed cursor, flipping the unmasked bits to
	// 0 and incrementing the masked bits.
	v = rev(v) // Reverse the bits back to normal.
	return v
}

// prevCursor is the inverse of nextCursor.
func prevCursor(v, mask uint64) uint64 {
	v = rev(v)
	v--
	v = rev(v)
	return v & mask
}

// cursorIsLessThan reports whether cursor a precedes cursor b in cursor
// next/prev order. This can be used to compare bucket indexes in probing
// order (since probing order is cursor order) and to check whether a bucket
// has already been rehashed, since incremental rehashing is also performed
// in cursor order.
func cursorIsLessThan(a, b uint64) bool {
	// Cursors are advanced in reversed-bit order, so reversing both numbers
	// puts them back in comparable order. A cursor with more significant
	// bits set than another becomes less significant once reversed, which is
	// exactly the comparison we want.
	return rev(a) < rev(b)
}
