// Package tag implements the tag element of nostr events.
package tag

import (
	"github.com/nostrust/nostrust/pkg/nostr/wire/text"
)

// The tag position meanings so they are clear when reading.
const (
	Key = iota
	Value
)

// Discriminators for the first element of reference tags.
const (
	Event   = "e"
	Profile = "p"
)

// T is a list of strings with a literal ordering.
//
// Not a set, there can be repeating elements.
type T []string

// Clone returns a copy that shares no backing storage with the original.
func (t T) Clone() (c T) {
	c = make(T, len(t))
	copy(c, t)
	return
}

// GetKey returns the first element of the tag, the discriminator.
func (t T) GetKey() string {
	if len(t) > Key {
		return t[Key]
	}
	return ""
}

// GetValue returns the second element of the tag.
func (t T) GetValue() string {
	if len(t) > Value {
		return t[Value]
	}
	return ""
}

// MarshalTo appends the JSON form of the tag to dst. String escaping is as
// per RFC8259 so the output can be part of a canonical hash preimage.
func (t T) MarshalTo(dst []byte) []byte {
	dst = append(dst, '[')
	for i, s := range t {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = text.EscapeString(dst, s)
	}
	dst = append(dst, ']')
	return dst
}

func (t T) String() string { return string(t.MarshalTo(nil)) }
