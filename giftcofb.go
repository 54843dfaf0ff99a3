// Package giftcofb implements GIFT-COFB, a NIST Lightweight Cryptography
// finalist for authenticated encryption with associated data. It combines
// the GIFT-128 block cipher with the COFB (COmbined FeedBack) mode to
// produce a 128-bit authentication tag and ciphertext the same length as
// the plaintext, matching the GIFT-COFB specification and its NIST LWC KAT
// vectors bit-for-bit.
//
// GIFT-COFB provides no key agreement, key derivation, or nonce management:
// the caller is responsible for supplying a 16-byte key and a 16-byte nonce
// that is never reused with the same key. There is no streaming API; Seal
// and Open operate on the whole message at once.
package giftcofb

import (
	"crypto/cipher"
	"errors"

	"github.com/itzmeanjan/gift-cofb/internal/cofb"
	"github.com/itzmeanjan/gift-cofb/internal/mem"
)

const (
	// KeySize is the required length, in bytes, of a GIFT-COFB key.
	KeySize = 16
	// NonceSize is the required length, in bytes, of a GIFT-COFB nonce.
	NonceSize = 16
	// TagSize is the number of bytes Seal appends to the plaintext.
	TagSize = 16
)

// ErrAuthenticationFailed is returned by Open when the ciphertext, tag, or
// associated data have been tampered with, or decrypted under the wrong
// key or nonce.
var ErrAuthenticationFailed = errors.New("gift-cofb: message authentication failed")

// New returns a cipher.AEAD that seals and opens messages using GIFT-COFB
// under the given 16-byte key.
func New(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, errors.New("gift-cofb: key must be 16 bytes")
	}
	a := &aead{}
	copy(a.key[:], key)
	return a, nil
}

type aead struct {
	key [KeySize]byte
}

func (a *aead) NonceSize() int { return NonceSize }

func (a *aead) Overhead() int { return TagSize }

// Seal encrypts and authenticates plaintext, authenticates additionalData,
// and appends the result to dst, returning the updated slice. nonce must be
// NonceSize bytes and must never be reused with the same key.
func (a *aead) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != NonceSize {
		panic("gift-cofb: invalid nonce size")
	}

	var n [NonceSize]byte
	copy(n[:], nonce)

	ciphertext, tag := cofb.Encrypt(&a.key, &n, additionalData, plaintext)

	ret, out := mem.SliceForAppend(dst, len(ciphertext)+TagSize)
	copy(out, ciphertext)
	copy(out[len(ciphertext):], tag[:])
	return ret
}

// Open decrypts and authenticates ciphertext, authenticates additionalData,
// and, if successful, appends the resulting plaintext to dst and returns
// the updated slice. If the message was tampered with, Open returns
// ErrAuthenticationFailed and the caller must not use any returned data.
func (a *aead) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		panic("gift-cofb: invalid nonce size")
	}
	if len(ciphertext) < TagSize {
		return nil, ErrAuthenticationFailed
	}

	var n [NonceSize]byte
	copy(n[:], nonce)

	ct, tag := ciphertext[:len(ciphertext)-TagSize], ciphertext[len(ciphertext)-TagSize:]
	var t [TagSize]byte
	copy(t[:], tag)

	plaintext, ok := cofb.Decrypt(&a.key, &n, &t, additionalData, ct)
	if !ok {
		clear(plaintext)
		return nil, ErrAuthenticationFailed
	}

	ret, out := mem.SliceForAppend(dst, len(plaintext))
	copy(out, plaintext)
	return ret, nil
}

var _ cipher.AEAD = (*aead)(nil)
