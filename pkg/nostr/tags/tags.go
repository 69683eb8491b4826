// Package tags implements the list of tags of a nostr event.
package tags

import (
	"github.com/nostrust/nostrust/pkg/nostr/tag"
)

// T is the ordered list of tags of an event. Order is significant, it is
// part of the canonical form that is hashed into the event ID.
type T []tag.T

// GetFirst returns the first tag whose discriminator matches key, or nil.
func (t T) GetFirst(key string) tag.T {
	for _, v := range t {
		if v.GetKey() == key {
			return v
		}
	}
	return nil
}

// AppendUnique appends a tag unless an equal tag is already present.
func (t T) AppendUnique(n tag.T) T {
	for _, v := range t {
		if equal(v, n) {
			return t
		}
	}
	return append(t, n)
}

func equal(a, b tag.T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// MarshalTo appends the JSON form of the tag list to dst.
func (t T) MarshalTo(dst []byte) []byte {
	dst = append(dst, '[')
	for i, v := range t {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = v.MarshalTo(dst)
	}
	dst = append(dst, ']')
	return dst
}

func (t T) String() string { return string(t.MarshalTo(nil)) }
