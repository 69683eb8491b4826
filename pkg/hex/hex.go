// Package hex provides short-form aliases for the standard hexadecimal
// codec, which is used on almost every identifier in the nostr wire format
// (event IDs, public keys, signatures).
package hex

import (
	"encoding/hex"
)

var (
	Enc      = hex.EncodeToString
	EncBytes = hex.Encode
	Dec      = hex.DecodeString
	DecBytes = hex.Decode
	EncLen   = hex.EncodedLen
	DecLen   = hex.DecodedLen
)

type InvalidByteError = hex.InvalidByteError
