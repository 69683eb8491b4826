// Package keys implements the secp256k1 key material of the nostr protocol:
// secret and public keys, the signing pair, and the shared secret derivation
// used for encrypted direct messages.
//
// Public keys use the x-only representation of BIP-340: 32 bytes, with the
// y coordinate normalized to even parity whenever a key is reconstructed
// from its serial form.
package keys

import (
	"errors"
	"os"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/nostrust/nostrust/pkg/hex"
	"github.com/nostrust/nostrust/pkg/nostr/signature"
	"github.com/nostrust/nostrust/pkg/slog"
)

var log, chk = slog.New(os.Stderr)

const (
	// KeyLen is the length of serialized secret and x-only public keys.
	KeyLen = 32
	// HexKeyLen is the length of the hexadecimal form of a key.
	HexKeyLen = KeyLen * 2
	// SecHRP is the bech32 human readable prefix of a secret key.
	SecHRP = "nsec"
)

var (
	// ErrNoSecretKey is returned by Pair.Sign when the pair was constructed
	// from a public key alone.
	ErrNoSecretKey = errors.New("no secret key in the key pair")
	// ErrInvalidSignature is returned by Verify when the signature does not
	// validate for the message and public key.
	ErrInvalidSignature = errors.New("signature verification failed")
)

// SecretKey is a secp256k1 scalar.
type SecretKey struct {
	k *btcec.PrivateKey
}

// PublicKey is a secp256k1 point, handled in its x-only form.
type PublicKey struct {
	k *btcec.PublicKey
}

// Pair holds an optional secret key and a mandatory public key. A pair
// constructed from a public key alone cannot sign.
type Pair struct {
	sec *SecretKey
	pub *PublicKey
}

// Generate produces a fresh uniformly random secret key and its derived
// public key.
func Generate() (p *Pair, err error) {
	var sk *btcec.PrivateKey
	if sk, err = btcec.NewPrivateKey(); chk.E(err) {
		return
	}
	sec := &SecretKey{k: sk}
	p = FromSecretKey(sec)
	return
}

// FromSecretKey builds a signing pair, deriving the public key.
func FromSecretKey(sec *SecretKey) (p *Pair) {
	return &Pair{sec: sec, pub: sec.Pub()}
}

// FromPublicKey builds a verify-only pair.
func FromPublicKey(pub *PublicKey) (p *Pair) {
	return &Pair{pub: pub}
}

// SecretKey returns the secret key of the pair, nil if it has none.
func (p *Pair) SecretKey() *SecretKey { return p.sec }

// PublicKey returns the public key of the pair.
func (p *Pair) PublicKey() *PublicKey { return p.pub }

// CanSign reports whether the pair holds a secret key.
func (p *Pair) CanSign() bool { return p.sec != nil }

// Sign produces a schnorr signature over the 32 byte message. It fails with
// ErrNoSecretKey on a verify-only pair.
func (p *Pair) Sign(data []byte) (sig *signature.T, err error) {
	if p.sec == nil {
		err = ErrNoSecretKey
		return
	}
	var ss *schnorr.Signature
	if ss, err = schnorr.Sign(p.sec.k, data); chk.D(err) {
		return
	}
	sig = signature.New(ss)
	return
}

// Verify checks a schnorr signature over a 32 byte message against a public
// key. A cryptographic mismatch returns ErrInvalidSignature; malformed
// encodings never reach this function, they fail in the parsers.
func Verify(sig *signature.T, data []byte, pub *PublicKey) (err error) {
	if !sig.Verify(data, pub.k) {
		return ErrInvalidSignature
	}
	return
}

// DeriveSharedSecret computes the shared secret between our secret key and
// their public key and returns it as a fresh signing pair.
//
// The public key's parity does not affect the x coordinate of the result
// but both parties must fix it the same way before combining, so the key is
// first normalized to even parity through its x-only serial form. Only the
// 32 byte x coordinate of the product is kept (RFC5903 section 9).
func DeriveSharedSecret(our *SecretKey, their *PublicKey) (p *Pair, err error) {
	var even *btcec.PublicKey
	if even, err = schnorr.ParsePubKey(their.Serialize()); chk.D(err) {
		return
	}
	shared := btcec.GenerateSharedSecret(our.k, even)
	var sec *SecretKey
	if sec, err = SecretKeyFromBytes(shared); chk.D(err) {
		return
	}
	p = FromSecretKey(sec)
	return
}

// SecretKeyFromBytes parses a 32 byte secret key.
func SecretKeyFromBytes(b []byte) (sk *SecretKey, err error) {
	if len(b) != KeyLen {
		err = log.E.Err("secret key invalid length: got %d expect %d",
			len(b), KeyLen)
		return
	}
	k, _ := btcec.PrivKeyFromBytes(b)
	if k.Key.IsZero() {
		err = log.E.Err("secret key is the zero scalar")
		return
	}
	sk = &SecretKey{k: k}
	return
}

// SecretKeyFromHex parses the 64 character hexadecimal form of a secret
// key.
func SecretKeyFromHex(s string) (sk *SecretKey, err error) {
	if len(s) != HexKeyLen {
		err = log.E.Err("secret key invalid length: got %d expect %d",
			len(s), HexKeyLen)
		return
	}
	var b []byte
	if b, err = hex.Dec(s); chk.D(err) {
		return
	}
	return SecretKeyFromBytes(b)
}

// Serialize returns the 32 byte form of the secret key.
func (sk *SecretKey) Serialize() []byte { return sk.k.Serialize() }

// Hex returns the 64 character hexadecimal form of the secret key.
func (sk *SecretKey) Hex() string { return hex.Enc(sk.Serialize()) }

// Pub derives the public key of the secret key.
func (sk *SecretKey) Pub() *PublicKey { return &PublicKey{k: sk.k.PubKey()} }

// Nsec returns the bech32 encoded secret key under the nsec human readable
// prefix. The encoding of a valid key never fails.
func (sk *SecretKey) Nsec() (nsec string) {
	var err error
	var b5 []byte
	if b5, err = bech32.ConvertBits(sk.Serialize(), 8, 5, true); chk.E(err) {
		return
	}
	if nsec, err = bech32.Encode(SecHRP, b5); chk.E(err) {
		return
	}
	return
}

// PublicKeyFromBytes parses a 32 byte x-only public key, normalizing it to
// the even parity point.
func PublicKeyFromBytes(b []byte) (pk *PublicKey, err error) {
	var k *btcec.PublicKey
	if k, err = schnorr.ParsePubKey(b); chk.D(err) {
		return
	}
	pk = &PublicKey{k: k}
	return
}

// PublicKeyFromHex parses the 64 character hexadecimal form of an x-only
// public key.
func PublicKeyFromHex(s string) (pk *PublicKey, err error) {
	if len(s) != HexKeyLen {
		err = log.E.Err("public key invalid length: got %d expect %d",
			len(s), HexKeyLen)
		return
	}
	var b []byte
	if b, err = hex.Dec(s); chk.D(err) {
		return
	}
	return PublicKeyFromBytes(b)
}

// Serialize returns the 32 byte x-only form of the public key.
func (pk *PublicKey) Serialize() []byte { return schnorr.SerializePubKey(pk.k) }

// Hex returns the 64 character hexadecimal form of the x-only public key.
func (pk *PublicKey) Hex() string { return hex.Enc(pk.Serialize()) }

// ECPub exposes the underlying curve point for signature verification.
func (pk *PublicKey) ECPub() *btcec.PublicKey { return pk.k }

// Equal reports whether two public keys have the same x coordinate.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return string(pk.Serialize()) == string(other.Serialize())
}
