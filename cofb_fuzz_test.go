package giftcofb_test

import (
	"bytes"
	"testing"

	"github.com/itzmeanjan/gift-cofb"
	fuzz "github.com/trailofbits/go-fuzz-utils"
)

// FuzzSealOpenRoundTrip carves a fuzz corpus entry into (key, nonce, ad,
// plaintext) and checks that Open recovers exactly what Seal produced,
// across whatever length classes the carved AD and plaintext happen to
// land in.
func FuzzSealOpenRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add(bytes.Repeat([]byte{0x00}, 64))
	f.Add(bytes.Repeat([]byte{0xFF}, 96))

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		keyRaw, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}
		nonceRaw, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}
		ad, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}
		plaintext, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}

		key := fitTo(keyRaw, giftcofb.KeySize)
		nonce := fitTo(nonceRaw, giftcofb.NonceSize)

		a, err := giftcofb.New(key)
		if err != nil {
			t.Fatal(err)
		}

		ciphertext := a.Seal(nil, nonce, plaintext, ad)
		if len(ciphertext) != len(plaintext)+giftcofb.TagSize {
			t.Fatalf("len(ciphertext) = %d, want %d", len(ciphertext), len(plaintext)+giftcofb.TagSize)
		}

		got, err := a.Open(nil, nonce, ciphertext, ad)
		if err != nil {
			t.Fatalf("Open failed after Seal: %v", err)
		}
		if !bytes.Equal(got, plaintext) {
			t.Fatalf("round trip mismatch: got %x, want %x", got, plaintext)
		}
	})
}

// FuzzOpenRejectsTamperedCiphertext checks that flipping any single byte of
// a sealed message's ciphertext-and-tag causes Open to fail.
func FuzzOpenRejectsTamperedCiphertext(f *testing.F) {
	f.Add([]byte{}, uint8(0))
	f.Add(bytes.Repeat([]byte{0x01}, 40), uint8(5))

	f.Fuzz(func(t *testing.T, msg []byte, flipByte uint8) {
		a, err := giftcofb.New(fitTo(nil, giftcofb.KeySize))
		if err != nil {
			t.Fatal(err)
		}
		nonce := fitTo(nil, giftcofb.NonceSize)

		ciphertext := a.Seal(nil, nonce, msg, nil)
		idx := int(flipByte) % len(ciphertext)
		ciphertext[idx] ^= 0x01

		if _, err := a.Open(nil, nonce, ciphertext, nil); err == nil {
			t.Fatalf("Open accepted a tampered ciphertext (flipped byte %d of %d)", idx, len(ciphertext))
		}
	})
}

func fitTo(b []byte, n int) []byte {
	out := make([]byte, n)
	copy(out, b)
	return out
}
