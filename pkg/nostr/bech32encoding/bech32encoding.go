// Package bech32encoding implements the NIP-19 bech32 entity encodings of
// nostr: bare keys (npub, nsec) and the TLV-structured shareable
// identifiers (nevent, nprofile).
package bech32encoding

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/nostrust/nostrust/pkg/slog"
)

var log, chk = slog.New(os.Stderr)

// The human readable prefixes of the NIP-19 entities.
const (
	NpubHRP     = "npub"
	NsecHRP     = "nsec"
	NeventHRP   = "nevent"
	NprofileHRP = "nprofile"
)

// ErrWrongVariant is returned when a string carries a valid bech32m
// checksum. NIP-19 mandates the original bech32 variant, so a bech32m
// string for the right payload is still not a valid identifier.
var ErrWrongVariant = errors.New("bech32m checksum where bech32 is required")

// WrongPrefixError is returned when a well-formed bech32 string carries a
// human readable prefix other than the one the decoder expects.
type WrongPrefixError struct {
	Want, Got string
}

func (e WrongPrefixError) Error() string {
	return fmt.Sprintf("wrong bech32 prefix: got '%s' expect '%s'",
		e.Got, e.Want)
}

// Encode packs data into a bech32 string under the given human readable
// prefix, regrouping the bytes into the 5 bit alphabet.
func Encode(hrp string, data []byte) (s string, err error) {
	var b5 []byte
	if b5, err = bech32.ConvertBits(data, 8, 5, true); chk.D(err) {
		return
	}
	if s, err = bech32.Encode(hrp, b5); chk.D(err) {
		return
	}
	return
}

// Decode unpacks a bech32 string, requiring the given human readable
// prefix and the original (non-m) checksum variant. The BIP-173 90
// character cap is not applied as NIP-19 identifiers routinely exceed it.
func Decode(hrp, s string) (data []byte, err error) {
	var gotHRP string
	var b5 []byte
	if gotHRP, b5, err = bech32.DecodeNoLimit(s); chk.D(err) {
		return
	}
	// DecodeNoLimit accepts either checksum variant; re-encode with the
	// original variant and compare to detect a bech32m checksum without
	// reimposing the 90 character cap.
	var reenc string
	if reenc, err = bech32.Encode(gotHRP, b5); chk.D(err) {
		return
	}
	if reenc != strings.ToLower(s) {
		return nil, ErrWrongVariant
	}
	if gotHRP != hrp {
		return nil, WrongPrefixError{Want: hrp, Got: gotHRP}
	}
	if data, err = bech32.ConvertBits(b5, 5, 8, false); chk.D(err) {
		return
	}
	return
}
