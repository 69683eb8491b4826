// Package eventid implements the event identifier type, the SHA256 hash of
// the canonical form of an event in hexadecimal.
package eventid

import (
	"os"

	"github.com/nostrust/nostrust/pkg/hex"
	"github.com/nostrust/nostrust/pkg/nostr/wire/text"
	"github.com/nostrust/nostrust/pkg/slog"
)

var log, chk = slog.New(os.Stderr)

// T is the SHA256 hash in hexadecimal of the canonical form of an event.
type T string

func (ei T) String() string { return string(ei) }

// Bytes returns the raw 32 byte hash, or nil if the string is not valid
// hexadecimal.
func (ei T) Bytes() (b []byte) {
	var err error
	if b, err = hex.Dec(string(ei)); chk.E(err) {
		return nil
	}
	return
}

func (ei T) MarshalJSON() (b []byte, err error) {
	return text.EscapeString(nil, string(ei)), nil
}

func (ei *T) UnmarshalJSON(b []byte) (err error) {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return log.E.Err("event ID must be a JSON string: %s", b)
	}
	*ei = T(b[1 : len(b)-1])
	return
}

// New inspects a string and ensures it is a valid, 64 character long
// hexadecimal string, returning the string coerced to the type.
func New(s string) (ei T, err error) {
	ei = T(s)
	if err = ei.Validate(); chk.D(err) {
		// clear the result since it failed.
		ei = ei[:0]
		return
	}
	return
}

// NewFromBytes encodes a raw 32 byte hash as an event ID.
func NewFromBytes(b []byte) (ei T, err error) {
	if len(b) != 32 {
		err = log.E.Err("event ID invalid length: got %d expect 32", len(b))
		return
	}
	ei = T(hex.Enc(b))
	return
}

// Validate checks the T string is valid hex and 64 characters long.
func (ei T) Validate() (err error) {
	// Check the string decodes as valid hexadecimal.
	if _, err = hex.Dec(string(ei)); err != nil {
		return
	}
	// An event ID is the hash of the canonical representation of the event
	// and thus must be 64 hexadecimal characters.
	if len(ei) != 64 {
		return log.E.Err("event ID invalid length: got %d expect 64", len(ei))
	}
	return
}
