package bech32encoding

import (
	"errors"
	"testing"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/nostrust/nostrust/pkg/hex"
	"github.com/nostrust/nostrust/pkg/nostr/keys"
)

func TestNpubVector(t *testing.T) {
	var err error
	var npub string
	pubHex := "3bf0c63fcb93463407af97a5e5ee64fa883d107ef9e558472c4eb9aaaefa459d"
	want := "npub180cvv07tjdrrgpa0j7j7tmnyl2yr6yr7l8j4s3evf6u64th6gkwsyjh6w6"
	if npub, err = HexToNpub(pubHex); err != nil {
		t.Fatalf("error converting key to npub: '%s'", err)
	}
	if npub != want {
		t.Fatalf("npub mismatch: got %s want %s", npub, want)
	}
	var pk *keys.PublicKey
	if pk, err = NpubToPublicKey(npub); err != nil {
		t.Fatalf("error npub back to public key: '%s'", err)
	}
	if pk.Hex() != pubHex {
		t.Fatalf("did not recover same key: got %s want %s", pk.Hex(), pubHex)
	}
}

func TestNsecVector(t *testing.T) {
	var err error
	var sk *keys.SecretKey
	nsec := "nsec1pu2zjemwmu0l3ew2sgpvsaquk62lc08zfmp6ms8u7g6pzmcglpysymcg0m"
	want := "0f1429676edf1ff8e5ca8202c8741cb695fc3ce24ec3adc0fcf234116f08f849"
	if sk, err = NsecToSecretKey(nsec); err != nil {
		t.Fatalf("error nsec back to secret key: '%s'", err)
	}
	if sk.Hex() != want {
		t.Fatalf("secret key mismatch: got %s want %s", sk.Hex(), want)
	}
	var reNsec string
	if reNsec, err = SecretKeyToNsec(sk); err != nil {
		t.Fatalf("error converting key to nsec: '%s'", err)
	}
	if reNsec != nsec {
		t.Fatalf("recovered secret key did not regenerate nsec: got %s want %s",
			reNsec, nsec)
	}
}

func TestKeyRoundTrips(t *testing.T) {
	var err error
	var p *keys.Pair
	var npub, nsec string
	for i := 0; i < 100; i++ {
		if p, err = keys.Generate(); err != nil {
			t.Fatalf("error generating key: '%s'", err)
		}
		if npub, err = PublicKeyToNpub(p.PublicKey()); err != nil {
			t.Fatalf("error converting key to npub: '%s'", err)
		}
		var rePub *keys.PublicKey
		if rePub, err = NpubToPublicKey(npub); err != nil {
			t.Fatalf("error npub back to public key: '%s'", err)
		}
		if !rePub.Equal(p.PublicKey()) {
			t.Fatalf("did not recover same public key from %s", npub)
		}
		if nsec, err = SecretKeyToNsec(p.SecretKey()); err != nil {
			t.Fatalf("error converting key to nsec: '%s'", err)
		}
		var reSec *keys.SecretKey
		if reSec, err = NsecToSecretKey(nsec); err != nil {
			t.Fatalf("error nsec back to secret key: '%s'", err)
		}
		if reSec.Hex() != p.SecretKey().Hex() {
			t.Fatalf("did not recover same secret key from %s", nsec)
		}
	}
}

func TestDecodeWrongPrefix(t *testing.T) {
	nsec := "nsec1pu2zjemwmu0l3ew2sgpvsaquk62lc08zfmp6ms8u7g6pzmcglpysymcg0m"
	_, err := NpubToPublicKey(nsec)
	var wrongPrefix WrongPrefixError
	if !errors.As(err, &wrongPrefix) {
		t.Fatalf("expected WrongPrefixError, got %v", err)
	}
	if wrongPrefix.Want != NpubHRP || wrongPrefix.Got != NsecHRP {
		t.Fatalf("prefix error fields wrong: %+v", wrongPrefix)
	}
}

func TestDecodeRejectsBech32m(t *testing.T) {
	var err error
	var b []byte
	if b, err = hex.Dec(
		"3bf0c63fcb93463407af97a5e5ee64fa883d107ef9e558472c4eb9aaaefa459d",
	); err != nil {
		t.Fatal(err)
	}
	var b5 []byte
	if b5, err = bech32.ConvertBits(b, 8, 5, true); err != nil {
		t.Fatal(err)
	}
	var s string
	if s, err = bech32.EncodeM(NpubHRP, b5); err != nil {
		t.Fatal(err)
	}
	if _, err = NpubToPublicKey(s); !errors.Is(err, ErrWrongVariant) {
		t.Fatalf("expected ErrWrongVariant, got %v", err)
	}
}

func TestDecodeRejectsMangledChecksum(t *testing.T) {
	npub := "npub180cvv07tjdrrgpa0j7j7tmnyl2yr6yr7l8j4s3evf6u64th6gkwsyjh6w6"
	mangled := npub[:len(npub)-1] + "7"
	if _, err := NpubToPublicKey(mangled); err == nil {
		t.Fatal("expected checksum error")
	}
}
