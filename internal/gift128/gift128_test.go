package gift128

import (
	"math/rand"
	"testing"
)

func TestPermBitsCompliance(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		var s [4]uint32
		for j := range s {
			s[j] = rng.Uint32()
		}

		got := permBitsFast(s)
		want := permBitsTable(s)
		if got != want {
			t.Fatalf("iteration %d: permBitsFast(%#v) = %#v, want %#v", i, s, got, want)
		}
	}
}

func TestPermuteNotIdentity(t *testing.T) {
	var st State
	block := [16]byte{}
	key := [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

	Initialize(&st, &block, &key)
	before := st.Cipher
	Permute(&st, Rounds)

	if st.Cipher == before {
		t.Fatalf("Permute(Rounds) with a nonzero key must not be the identity")
	}
}

func TestPermuteDeterministic(t *testing.T) {
	block := [16]byte{0xAA, 0xBB}
	key := [16]byte{0x11, 0x22, 0x33}

	var a, b State
	Initialize(&a, &block, &key)
	Initialize(&b, &block, &key)
	Permute(&a, Rounds)
	Permute(&b, Rounds)

	if a != b {
		t.Fatalf("Permute must be deterministic: got %#v and %#v", a, b)
	}
}

func TestPermuteFullMatchesExplicitRoundCount(t *testing.T) {
	block := [16]byte{0xAA, 0xBB}
	key := [16]byte{0x11, 0x22, 0x33}

	var a, b State
	Initialize(&a, &block, &key)
	Initialize(&b, &block, &key)
	Permute(&a, Rounds)
	PermuteFull(&b)

	if a != b {
		t.Fatalf("PermuteFull = %#v, want Permute(st, Rounds) = %#v", b, a)
	}
}

func TestKeyUpdateRotation(t *testing.T) {
	key := [8]uint16{0, 1, 2, 3, 4, 5, 6, 7}
	updateKeyState(&key)

	want := [8]uint16{
		rotr16(6, 2), rotr16(7, 12),
		0, 1, 2, 3, 4, 5,
	}
	if key != want {
		t.Fatalf("updateKeyState = %v, want %v", key, want)
	}
}

func rotr16(x uint16, n uint) uint16 {
	return (x >> n) | (x << (16 - n))
}
