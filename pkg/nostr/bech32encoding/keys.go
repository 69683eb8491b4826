package bech32encoding

import (
	"github.com/nostrust/nostrust/pkg/hex"
	"github.com/nostrust/nostrust/pkg/nostr/bech32encoding/tlv"
	"github.com/nostrust/nostrust/pkg/nostr/keys"
)

// PublicKeyToNpub renders a public key as its npub bech32 form.
func PublicKeyToNpub(pk *keys.PublicKey) (s string, err error) {
	return Encode(NpubHRP, pk.Serialize())
}

// HexToNpub converts a 64 character hexadecimal x-only public key to its
// npub bech32 form.
func HexToNpub(pubHex string) (s string, err error) {
	var b []byte
	if b, err = hex.Dec(pubHex); chk.D(err) {
		return "", log.E.Err("invalid public key hex '%s': %w", pubHex, err)
	}
	if len(b) != keys.KeyLen {
		return "", tlv.InvalidLengthError{Want: keys.KeyLen, Got: len(b)}
	}
	return Encode(NpubHRP, b)
}

// NpubToPublicKey decodes an npub back to a public key. The payload must
// be exactly 32 bytes and must parse as a valid x-only secp256k1 point.
func NpubToPublicKey(npub string) (pk *keys.PublicKey, err error) {
	var b []byte
	if b, err = Decode(NpubHRP, npub); chk.D(err) {
		return
	}
	if len(b) != keys.KeyLen {
		return nil, tlv.InvalidLengthError{Want: keys.KeyLen, Got: len(b)}
	}
	return keys.PublicKeyFromBytes(b)
}

// SecretKeyToNsec renders a secret key as its nsec bech32 form.
func SecretKeyToNsec(sk *keys.SecretKey) (s string, err error) {
	return Encode(NsecHRP, sk.Serialize())
}

// NsecToSecretKey decodes an nsec back to a secret key. The payload must
// be exactly 32 bytes and must be a valid nonzero scalar.
func NsecToSecretKey(nsec string) (sk *keys.SecretKey, err error) {
	var b []byte
	if b, err = Decode(NsecHRP, nsec); chk.D(err) {
		return
	}
	if len(b) != keys.KeyLen {
		return nil, tlv.InvalidLengthError{Want: keys.KeyLen, Got: len(b)}
	}
	return keys.SecretKeyFromBytes(b)
}
