// Package feedback implements the G map COFB uses to advance its Y state
// between absorbed blocks: swap the upper and lower 64-bit halves, then
// rotate the new lower half (the old upper half) left by one bit.
package feedback

import "math/bits"

// G applies the feedback map to the four big-endian 32-bit words of y.
func G(y [4]uint32) [4]uint32 {
	hi := uint64(y[0])<<32 | uint64(y[1])
	hi = bits.RotateLeft64(hi, 1)

	return [4]uint32{y[2], y[3], uint32(hi >> 32), uint32(hi)}
}
