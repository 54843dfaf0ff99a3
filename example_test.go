package giftcofb_test

import (
	"fmt"

	"github.com/itzmeanjan/gift-cofb"
)

func Example() {
	key := make([]byte, giftcofb.KeySize)
	nonce := make([]byte, giftcofb.NonceSize)
	ad := []byte("header fields authenticated but not encrypted")
	plaintext := []byte("a secret message")

	a, err := giftcofb.New(key)
	if err != nil {
		panic(err)
	}

	ciphertext := a.Seal(nil, nonce, plaintext, ad)
	fmt.Printf("ciphertext length = %d\n", len(ciphertext))

	decrypted, err := a.Open(nil, nonce, ciphertext, ad)
	if err != nil {
		panic(err)
	}
	fmt.Printf("plaintext = %s\n", decrypted)

	// Output:
	// ciphertext length = 32
	// plaintext = a secret message
}
