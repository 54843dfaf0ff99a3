// Package gf64 implements multiplication by α and α+1 in GF(2⁶⁴) under the
// reduction polynomial f(x) = x⁶⁴+x⁴+x³+x+1, as used by GIFT-COFB to evolve
// its 64-bit mask between absorbed blocks.
package gf64

// reduction holds the two possible XOR terms applied when doubling L: 0 when
// the top bit of L is clear, and the reduction polynomial's low-order terms
// (0b11011 = 0x1B) when it is set. Indexing by the top bit instead of
// branching keeps MulAlpha constant-time.
var reduction = [2]uint64{0, 0x1B}

// MulAlpha multiplies the 64-bit mask l (big-endian halves l[0]:l[1]) by α,
// the field's primitive element, returning the updated halves.
func MulAlpha(l [2]uint32) [2]uint32 {
	x := uint64(l[0])<<32 | uint64(l[1])
	top := x >> 63
	x = (x << 1) ^ reduction[top]
	return [2]uint32{uint32(x >> 32), uint32(x)}
}

// MulAlphaPlus1 multiplies l by α+1, i.e. MulAlpha(l) XOR l.
func MulAlphaPlus1(l [2]uint32) [2]uint32 {
	d := MulAlpha(l)
	return [2]uint32{d[0] ^ l[0], d[1] ^ l[1]}
}
