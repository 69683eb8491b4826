// Package signature wraps the 64 byte BIP-340 schnorr signature carried in
// the `sig` field of nostr events, and its 128 character hexadecimal form.
package signature

import (
	"os"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/nostrust/nostrust/pkg/hex"
	"github.com/nostrust/nostrust/pkg/slog"
)

var log, chk = slog.New(os.Stderr)

// HexLen is the length of the hexadecimal form, 64 bytes as 128 characters.
const HexLen = schnorr.SignatureSize * 2

// T is a schnorr signature over a 32 byte message.
type T struct {
	sig *schnorr.Signature
}

// New wraps an already parsed schnorr signature.
func New(sig *schnorr.Signature) *T { return &T{sig: sig} }

// FromBytes parses the canonical 64 byte serial form.
func FromBytes(b []byte) (s *T, err error) {
	var sig *schnorr.Signature
	if sig, err = schnorr.ParseSignature(b); chk.D(err) {
		return
	}
	s = &T{sig: sig}
	return
}

// FromHex parses the 128 character hexadecimal form.
func FromHex(sh string) (s *T, err error) {
	if len(sh) != HexLen {
		err = log.E.Err("signature invalid length: got %d expect %d",
			len(sh), HexLen)
		return
	}
	var b []byte
	if b, err = hex.Dec(sh); chk.D(err) {
		return
	}
	return FromBytes(b)
}

// Serialize returns the 64 byte serial form.
func (s *T) Serialize() []byte { return s.sig.Serialize() }

// Hex returns the 128 character hexadecimal form.
func (s *T) Hex() string { return hex.Enc(s.Serialize()) }

func (s *T) String() string { return s.Hex() }

// Verify reports whether the signature is valid for the 32 byte message
// under the given public key.
func (s *T) Verify(msg []byte, pk *btcec.PublicKey) bool {
	return s.sig.Verify(msg, pk)
}
