// Package cofb implements the COFB (COmbined FeedBack) authenticated
// encryption mode as instantiated over the GIFT-128 block cipher by
// GIFT-COFB: it absorbs associated data, then processes the message,
// producing ciphertext of the same length as the plaintext plus a 128-bit
// tag, and the corresponding decrypt-and-verify operation.
package cofb

import (
	"crypto/subtle"

	"github.com/itzmeanjan/gift-cofb/internal/feedback"
	"github.com/itzmeanjan/gift-cofb/internal/gf64"
	"github.com/itzmeanjan/gift-cofb/internal/gift128"
	"github.com/itzmeanjan/gift-cofb/internal/mem"
)

const blockSize = 16

// TagSize is the number of bytes in a GIFT-COFB authentication tag.
const TagSize = blockSize

// state carries the (Y, L) pair COFB threads through AD absorption and
// message processing, plus the key both phases re-key GIFT-128 with.
type state struct {
	key *[16]byte
	y   [4]uint32
	l   [2]uint32
}

// newState derives the initial (Y, L) pair by permuting GIFT-128 keyed with key
// and loaded with nonce, per GIFT-COFB's initialization step.
func newState(key, nonce *[16]byte) *state {
	var st gift128.State
	gift128.Initialize(&st, nonce, key)
	gift128.PermuteFull(&st)

	return &state{
		key: key,
		y:   st.Cipher,
		l:   [2]uint32{st.Cipher[0], st.Cipher[1]},
	}
}

// absorb masks block with Feedback(Y) and L, then re-keys and re-permutes
// GIFT-128 with the masked block to advance Y. block is mutated in place to
// become the masked input the cipher is re-initialized with.
func (s *state) absorb(block [4]uint32) {
	f := feedback.G(s.y)
	block[0] ^= f[0] ^ s.l[0]
	block[1] ^= f[1] ^ s.l[1]
	block[2] ^= f[2]
	block[3] ^= f[3]

	var st gift128.State
	gift128.InitializeWords(&st, &block, s.key)
	gift128.PermuteFull(&st)
	s.y = st.Cipher
}

// absorbAD processes the associated data phase: every full 16-byte block
// except the last is absorbed after doubling L by α; the last block (which
// may be empty, full, or partial) is absorbed after doubling L by α+1 once
// or twice depending on its length, with two further α+1 doublings if the
// message is empty (domain-separating an AD-only call from one followed by
// a message phase).
func (s *state) absorbAD(ad []byte, msgLen int) {
	dlen := len(ad)
	full := dlen / blockSize
	rem := dlen % blockSize
	hasFinal := dlen == 0 || rem != 0
	total := full
	if hasFinal {
		total++
	}

	off := 0
	for i := 0; i < total-1; i++ {
		s.l = gf64.MulAlpha(s.l)
		s.absorb(wordsFromBytes(ad[off : off+blockSize]))
		off += blockSize
	}

	if dlen > 0 && rem == 0 {
		s.l = gf64.MulAlphaPlus1(s.l)
	} else {
		s.l = gf64.MulAlphaPlus1(s.l)
		s.l = gf64.MulAlphaPlus1(s.l)
	}
	if msgLen == 0 {
		s.l = gf64.MulAlphaPlus1(s.l)
		s.l = gf64.MulAlphaPlus1(s.l)
	}

	finalBlock := padBlock(ad, off)
	s.absorb(wordsFromBytes(finalBlock[:]))
}

// Encrypt computes the ciphertext and tag for plaintext under (key, nonce),
// authenticating ad alongside it. len(ciphertext) == len(plaintext).
func Encrypt(key, nonce *[16]byte, ad, plaintext []byte) (ciphertext []byte, tag [blockSize]byte) {
	s := newState(key, nonce)
	s.absorbAD(ad, len(plaintext))

	ciphertext = make([]byte, len(plaintext))
	if len(plaintext) > 0 {
		s.encryptMessage(plaintext, ciphertext)
	}

	tag = bytesFromWords(s.y)
	return ciphertext, tag
}

// Decrypt recovers the plaintext for ciphertext under (key, nonce, ad) and
// reports whether it matches tag. If ok is false, plaintext must be treated
// as forged by the caller.
func Decrypt(key, nonce *[16]byte, tag *[blockSize]byte, ad, ciphertext []byte) (plaintext []byte, ok bool) {
	s := newState(key, nonce)
	s.absorbAD(ad, len(ciphertext))

	plaintext = make([]byte, len(ciphertext))
	if len(ciphertext) > 0 {
		s.decryptMessage(ciphertext, plaintext)
	}

	got := bytesFromWords(s.y)
	return plaintext, subtle.ConstantTimeCompare(got[:], tag[:]) == 1
}

// encryptMessage processes the message phase of encryption: every full
// 16-byte block except the last is enciphered as Ci = Pi XOR Y and absorbed
// (masked by Feedback(Y) and L, doubling L by α first); the last block's
// mask doubles L by α+1 once if the message is an exact multiple of 16
// bytes, twice otherwise, and only the actual mlen%16 (or 16) ciphertext
// bytes produced are emitted.
func (s *state) encryptMessage(plaintext, ciphertext []byte) {
	mlen := len(plaintext)
	full := mlen / blockSize
	rem := mlen % blockSize
	total := full
	if rem != 0 {
		total++
	}

	off := 0
	for i := 0; i < total-1; i++ {
		s.l = gf64.MulAlpha(s.l)

		p := wordsFromBytes(plaintext[off : off+blockSize])
		ks := bytesFromWords(s.y)
		mem.XOR(ciphertext[off:off+blockSize], plaintext[off:off+blockSize], ks[:])

		s.absorb(p)
		off += blockSize
	}

	if rem == 0 {
		s.l = gf64.MulAlphaPlus1(s.l)
	} else {
		s.l = gf64.MulAlphaPlus1(s.l)
		s.l = gf64.MulAlphaPlus1(s.l)
	}

	padded := padBlock(plaintext, off)
	p := wordsFromBytes(padded[:])
	ks := bytesFromWords(s.y)
	mem.XOR(ciphertext[off:], plaintext[off:], ks[:mlen-off])

	s.absorb(p)
}

// decryptMessage mirrors encryptMessage: each ciphertext block is first
// decrypted to Pi = Ci XOR Y, which is both the emitted plaintext and the
// value absorbed to advance state. The final block's absorbed input is the
// padded *plaintext* (not ciphertext) block — GIFT-COFB's "line 25"
// truncation-and-pad requirement for correct tag recovery.
func (s *state) decryptMessage(ciphertext, plaintext []byte) {
	mlen := len(ciphertext)
	full := mlen / blockSize
	rem := mlen % blockSize
	total := full
	if rem != 0 {
		total++
	}

	off := 0
	for i := 0; i < total-1; i++ {
		s.l = gf64.MulAlpha(s.l)

		ks := bytesFromWords(s.y)
		mem.XOR(plaintext[off:off+blockSize], ciphertext[off:off+blockSize], ks[:])
		p := wordsFromBytes(plaintext[off : off+blockSize])

		s.absorb(p)
		off += blockSize
	}

	if rem == 0 {
		s.l = gf64.MulAlphaPlus1(s.l)
	} else {
		s.l = gf64.MulAlphaPlus1(s.l)
		s.l = gf64.MulAlphaPlus1(s.l)
	}

	remaining := mlen - off
	ks := bytesFromWords(s.y)
	mem.XOR(plaintext[off:], ciphertext[off:], ks[:remaining])

	padded := padBlock(plaintext, off)
	s.absorb(wordsFromBytes(padded[:]))
}
