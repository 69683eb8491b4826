package mnemonic

import (
	"errors"
	"strings"
	"testing"

	"github.com/nostrust/nostrust/pkg/nostr/keys"
)

const phrase = "mule south voice warrior garage broken body dolphin rent " +
	"pool liar father cost fire prosper scale aspect rack bomb essay " +
	"ancient vault zero cherry"

func TestToSecretKey(t *testing.T) {
	var err error
	var sk *keys.SecretKey
	if sk, err = ToSecretKey(phrase); err != nil {
		t.Fatalf("error deriving secret key: '%s'", err)
	}
	want := "05ce64598abaddb659dd4d9ca5098261fd3e9c97d33d2c4b014354dbe029ff07"
	if got := sk.Hex(); got != want {
		t.Fatalf("derived key mismatch: got %s want %s", got, want)
	}
	// the derivation is a pure function of the phrase.
	var again *keys.SecretKey
	if again, err = ToSecretKey(phrase); err != nil {
		t.Fatal(err)
	}
	if again.Hex() != sk.Hex() {
		t.Fatal("derivation is not deterministic")
	}
}

func TestToPair(t *testing.T) {
	var err error
	var p *keys.Pair
	if p, err = ToPair(phrase); err != nil {
		t.Fatalf("error deriving pair: '%s'", err)
	}
	if !p.CanSign() {
		t.Fatal("derived pair cannot sign")
	}
	if p.PublicKey().Hex() != p.SecretKey().Pub().Hex() {
		t.Fatal("derived pair public key does not match its secret key")
	}
}

func TestInvalidMnemonic(t *testing.T) {
	for _, bad := range []string{
		"",
		"mule south voice",
		strings.Replace(phrase, "mule", "notaword", 1),
		// valid words with a bad checksum; the valid form ends in "art".
		strings.TrimSpace(strings.Repeat("abandon ", 24)),
	} {
		if _, err := ToSecretKey(bad); !errors.Is(err, ErrInvalidMnemonic) {
			t.Fatalf("expected ErrInvalidMnemonic for %q, got %v", bad, err)
		}
	}
}

func TestGenerate(t *testing.T) {
	var err error
	var m string
	if m, err = Generate(); err != nil {
		t.Fatalf("error generating mnemonic: '%s'", err)
	}
	if got := len(strings.Fields(m)); got != 24 {
		t.Fatalf("expected 24 words, got %d", got)
	}
	// a fresh mnemonic must derive cleanly.
	if _, err = ToSecretKey(m); err != nil {
		t.Fatalf("generated mnemonic does not derive: '%s'", err)
	}
}
