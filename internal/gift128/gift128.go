// Package gift128 implements the GIFT-128 block cipher as specified for
// GIFT-COFB: a 40-round substitution-permutation network operating on a
// 128-bit block under a 128-bit key.
//
// State layout follows the GIFT-COFB specification exactly: the cipher block
// is four big-endian 32-bit words (word 0 holds the most significant bits),
// and the key state is eight big-endian 16-bit words (word 0 holds the most
// significant bits).
package gift128

import "math/bits"

// Rounds is the number of rounds GIFT-COFB requires for production use.
const Rounds = 40

// roundConstants are the 40 six-bit round constants generated by GIFT-128's
// affine LFSR, one injected per round into bit positions 0-5 of cipher word 3.
var roundConstants = [Rounds]uint32{
	0x01, 0x03, 0x07, 0x0F, 0x1F, 0x3E, 0x3D, 0x3B, 0x37, 0x2F,
	0x1E, 0x3C, 0x39, 0x33, 0x27, 0x0E, 0x1D, 0x3A, 0x35, 0x2B,
	0x16, 0x2C, 0x18, 0x30, 0x21, 0x02, 0x05, 0x0B, 0x17, 0x2E,
	0x1C, 0x38, 0x31, 0x23, 0x06, 0x0D, 0x1B, 0x36, 0x2D, 0x1A,
}

// State is the GIFT-128 cipher and key state, fully determined by a sequence
// of public operations starting from a known (key, plaintext-block) pair.
type State struct {
	Cipher [4]uint32
	Key    [8]uint16
}

// Initialize loads a 16-byte block and a 16-byte key into st, big-endian.
func Initialize(st *State, block, key *[16]byte) {
	for i := 0; i < 4; i++ {
		st.Cipher[i] = uint32(block[i*4])<<24 | uint32(block[i*4+1])<<16 |
			uint32(block[i*4+2])<<8 | uint32(block[i*4+3])
	}
	loadKey(st, key)
}

// InitializeWords loads an already word-packed 128-bit block — as produced
// by the COFB block-processing loop, which XOR-masks blocks while they're
// still in word form — and a 16-byte key into st.
func InitializeWords(st *State, block *[4]uint32, key *[16]byte) {
	st.Cipher = *block
	loadKey(st, key)
}

func loadKey(st *State, key *[16]byte) {
	for i := 0; i < 8; i++ {
		st.Key[i] = uint16(key[i*2])<<8 | uint16(key[i*2+1])
	}
}

// Permute applies r rounds of the GIFT-128 round function to st, mutating
// both the cipher and key state. Production use calls Permute(st, Rounds);
// fewer rounds are accepted only to support round-reduced analysis.
func Permute(st *State, r int) {
	for i := 0; i < r; i++ {
		subCells(&st.Cipher)
		st.Cipher = permBits(st.Cipher)
		addRoundKeyAndConstant(st, i)
		updateKeyState(&st.Key)
	}
}

// PermuteFull applies the full 40-round GIFT-128 permutation, the only round
// count GIFT-COFB uses in production; Permute itself stays open to round
// counts below Rounds for round-reduced cryptanalysis.
func PermuteFull(st *State) {
	Permute(st, Rounds)
}

// subCells applies GIFT-128's 4-bit S-box bitsliced across the four cipher
// words, branch-free.
func subCells(c *[4]uint32) {
	c0, c1, c2, c3 := c[0], c[1], c[2], c[3]

	c1 ^= c0 & c2
	c0 ^= c1 & c3
	c2 ^= c0 | c1
	c3 ^= c2
	c1 ^= c3
	c3 = ^c3
	c2 ^= c0 & c1
	c0, c3 = c3, c0

	c[0], c[1], c[2], c[3] = c0, c1, c2, c3
}

// addRoundKeyAndConstant XORs the round key material derived from the key
// state and the round constant (with the fixed bit-31 marker) into the
// cipher state.
func addRoundKeyAndConstant(st *State, round int) {
	u := uint32(st.Key[2])<<16 | uint32(st.Key[3])
	v := uint32(st.Key[6])<<16 | uint32(st.Key[7])

	st.Cipher[2] ^= u
	st.Cipher[1] ^= v
	st.Cipher[3] ^= (1 << 31) | roundConstants[round]
}

// updateKeyState advances the 8-word key schedule by rotating two new words
// in from rotated copies of the old key[6] and key[7].
func updateKeyState(key *[8]uint16) {
	t0 := bits.RotateLeft16(key[6], -2)
	t1 := bits.RotateLeft16(key[7], -12)

	key[7], key[6], key[5], key[4], key[3], key[2] = key[5], key[4], key[3], key[2], key[1], key[0]
	key[0], key[1] = t0, t1
}
