// Package tlv implements the Type Length Value layout embedded in nostr
// NIP-19 bech32 entities: a sequence of [type:u8][length:u8][value:length]
// entries. The format is generic and suits any TLV use case where fields
// are shorter than 256 bytes.
//
// One cursor serves every TLV consumer so the bounds checking lives in one
// place. Decoding is strict: a type byte with no length following it, or a
// length that overruns the remaining buffer, is an error, never silently
// tolerated, because NIP-19 identifiers must be unambiguous between
// wallets and clients exchanging them.
package tlv

import (
	"errors"
	"fmt"
)

// The TLV type bytes of NIP-19.
const (
	// Special is the mandatory leading entry; its semantics depend on the
	// identifier kind (event ID for nevent, public key for nprofile).
	Special byte = 0x00
	// Relay is a UTF-8 relay URL entry, repeatable, order preserving.
	Relay byte = 0x01
)

var (
	// ErrMissingLength is returned when the buffer ends after a type byte,
	// before its length byte.
	ErrMissingLength = errors.New("missing TLV length byte")
	// ErrUnexpectedData is returned when the declared length overruns the
	// remaining buffer, leaving a trailing fragment after the last valid
	// entry.
	ErrUnexpectedData = errors.New("unexpected trailing data in TLV stream")
	// ErrValueTooLong is returned by Writer.WriteEntry for values that do
	// not fit the one byte length field.
	ErrValueTooLong = errors.New("TLV value exceeds 255 bytes")
)

// InvalidTypeError is returned by the identifier codecs when an entry
// carries a type byte they do not define.
type InvalidTypeError byte

func (e InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid TLV type byte 0x%02x", byte(e))
}

// InvalidLengthError is returned when a fixed-size entry has the wrong
// length.
type InvalidLengthError struct {
	Want, Got int
}

func (e InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid TLV value length: got %d expect %d",
		e.Got, e.Want)
}

// Reader is a cursor over a decoded TLV byte buffer.
type Reader struct {
	buf []byte
	pos int
}

func NewReader(b []byte) *Reader { return &Reader{buf: b} }

// Done reports whether the cursor has consumed the whole buffer.
func (r *Reader) Done() bool { return r.pos >= len(r.buf) }

// Remaining returns the count of bytes not yet consumed.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

// ReadEntry consumes one [type][length][value] entry and returns its type
// byte and value. The value aliases the underlying buffer.
func (r *Reader) ReadEntry() (typ byte, value []byte, err error) {
	typ = r.buf[r.pos]
	r.pos++
	if r.Done() {
		err = ErrMissingLength
		return
	}
	length := int(r.buf[r.pos])
	r.pos++
	if r.Remaining() < length {
		err = ErrUnexpectedData
		return
	}
	value = r.buf[r.pos : r.pos+length]
	r.pos += length
	return
}

// Writer accumulates TLV entries.
type Writer struct {
	buf []byte
}

// WriteEntry appends one entry. Values longer than 255 bytes do not fit
// the length byte and are rejected with ErrValueTooLong.
func (w *Writer) WriteEntry(typ byte, value []byte) error {
	if len(value) > 0xff {
		return ErrValueTooLong
	}
	w.buf = append(w.buf, typ, byte(len(value)))
	w.buf = append(w.buf, value...)
	return nil
}

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte { return w.buf }
