package encryption

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"testing"

	"lukechampine.com/frand"
)

var plaintext = []byte("hello world! this is my plaintext.")

func fixedKey() (key [KeySize]byte, iv [IVSize]byte) {
	for i := range key {
		key[i] = 0x42
	}
	for i := range iv {
		iv[i] = 0x24
	}
	return
}

func TestEncryptFixedKey(t *testing.T) {
	key, iv := fixedKey()
	want, _ := hex.DecodeString(
		"1718b1dfc1f147fdf82f6ed08445c4512c861b013c808c928851c3c771b5df35" +
			"0620bcec613c8e336963859970e876bf")
	got := Encrypt(key, iv, plaintext)
	if !bytes.Equal(got, want) {
		t.Fatalf("ciphertext mismatch: got %x want %x", got, want)
	}
	var back []byte
	var err error
	if back, err = Decrypt(key, iv, got); err != nil {
		t.Fatalf("decrypt failed: %s", err)
	}
	if !bytes.Equal(back, plaintext) {
		t.Fatalf("plaintext mismatch: got %q want %q", back, plaintext)
	}
}

func TestEncryptSharedSecret(t *testing.T) {
	var key [KeySize]byte
	var iv [IVSize]byte
	kb, _ := hex.DecodeString(
		"a2c2394b2e37d7fa70184ec34d1a89a27e3b318312e2534d812be2dc2543a44b")
	copy(key[:], kb)
	ib, err := base64.StdEncoding.DecodeString("xbJan2ZwvllmnWlORG7VjA==")
	if err != nil {
		t.Fatal(err)
	}
	copy(iv[:], ib)
	want, err := base64.StdEncoding.DecodeString(
		"Sttp6Sv7aui5Q3DnJl2Rb7geyKSY+8BFDvAfm/iBievSa5NndvPYBMuMk2fwI9Sq")
	if err != nil {
		t.Fatal(err)
	}
	got := Encrypt(key, iv, plaintext)
	if !bytes.Equal(got, want) {
		t.Fatalf("ciphertext mismatch: got %x want %x", got, want)
	}
	var back []byte
	if back, err = Decrypt(key, iv, got); err != nil {
		t.Fatalf("decrypt failed: %s", err)
	}
	if !bytes.Equal(back, plaintext) {
		t.Fatalf("plaintext mismatch: got %q want %q", back, plaintext)
	}
}

func TestRoundTripRandom(t *testing.T) {
	var key [KeySize]byte
	var iv [IVSize]byte
	for i := 0; i < 100; i++ {
		frand.Read(key[:])
		frand.Read(iv[:])
		// cover every padding amount including the full extra block.
		msg := frand.Bytes(i)
		ct := Encrypt(key, iv, msg)
		if len(ct)%IVSize != 0 || len(ct) <= len(msg) {
			t.Fatalf("bad ciphertext length %d for message length %d",
				len(ct), len(msg))
		}
		pt, err := Decrypt(key, iv, ct)
		if err != nil {
			t.Fatalf("decrypt failed: %s", err)
		}
		if !bytes.Equal(pt, msg) {
			t.Fatalf("round trip mismatch at length %d", i)
		}
	}
}

func TestDecryptRejectsMalformed(t *testing.T) {
	key, iv := fixedKey()
	for _, ct := range [][]byte{
		nil,
		{0x01},
		make([]byte, 17),
	} {
		if _, err := Decrypt(key, iv, ct); !errors.Is(err, ErrInvalidPadding) {
			t.Fatalf("expected ErrInvalidPadding for length %d, got %v",
				len(ct), err)
		}
	}
	// dropping the final block of this ciphertext leaves a decryption
	// ending in a zero byte, which is never a valid pad count.
	ct := Encrypt(key, iv, make([]byte, 32))
	if _, err := Decrypt(key, iv, ct[:32]); !errors.Is(err, ErrInvalidPadding) {
		t.Fatalf("expected ErrInvalidPadding on truncated ciphertext, got %v",
			err)
	}
}
