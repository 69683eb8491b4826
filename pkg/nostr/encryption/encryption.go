// Package encryption implements the AES-256-CBC symmetric cipher with
// PKCS7 padding used with ECDH shared secrets for direct message payloads.
//
// The scheme carries no authentication tag, so a tampered ciphertext is
// only detected when the padding happens to break. Callers needing
// integrity must layer it on top.
package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
)

const (
	// KeySize is the AES-256 key length.
	KeySize = 32
	// IVSize is the AES block and initialization vector length.
	IVSize = 16
)

// ErrInvalidPadding is returned by Decrypt when the trailing PKCS7 padding
// is malformed, which covers truncated ciphertexts, wrong keys and wrong
// IVs alike.
var ErrInvalidPadding = errors.New("invalid PKCS7 padding")

// Encrypt pads the plaintext to a whole number of blocks with PKCS7 and
// encrypts it under AES-256 in CBC mode. Identical inputs produce
// identical outputs, so the IV must be fresh per message.
func Encrypt(key [KeySize]byte, iv [IVSize]byte, plaintext []byte) (ciphertext []byte) {
	// the key length is fixed by the array type so NewCipher cannot fail.
	blk, _ := aes.NewCipher(key[:])
	padded := pad(plaintext)
	ciphertext = make([]byte, len(padded))
	cipher.NewCBCEncrypter(blk, iv[:]).CryptBlocks(ciphertext, padded)
	return
}

// Decrypt reverses Encrypt. The ciphertext must be a nonzero multiple of
// the block size and end in valid PKCS7 padding.
func Decrypt(key [KeySize]byte, iv [IVSize]byte, ciphertext []byte) (plaintext []byte, err error) {
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, ErrInvalidPadding
	}
	blk, _ := aes.NewCipher(key[:])
	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(blk, iv[:]).CryptBlocks(padded, ciphertext)
	return unpad(padded)
}

// pad appends 1..16 bytes, each holding the pad count. A plaintext already
// block aligned gains a full extra block, so padding is always present and
// unambiguous to strip.
func pad(b []byte) []byte {
	n := aes.BlockSize - len(b)%aes.BlockSize
	p := make([]byte, len(b)+n)
	copy(p, b)
	for i := len(b); i < len(p); i++ {
		p[i] = byte(n)
	}
	return p
}

func unpad(b []byte) ([]byte, error) {
	n := int(b[len(b)-1])
	if n == 0 || n > aes.BlockSize || n > len(b) {
		return nil, ErrInvalidPadding
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, ErrInvalidPadding
		}
	}
	return b[:len(b)-n], nil
}
